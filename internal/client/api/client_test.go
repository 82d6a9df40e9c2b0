package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlosdaniiel07/identity-service/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_OK(t *testing.T) {
	var got signUpRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := New(ts.URL)
	err := c.SignUp(context.Background(), "Ana", "ana@x.com", []byte("secret123"))
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "secret123", got.Password)
}

func TestSignUp_Conflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer ts.Close()

	err := New(ts.URL).SignUp(context.Background(), "Ana", "ana@x.com", []byte("p"))
	assert.True(t, errors.Is(err, common.ErrorEmailTaken))
}

func TestLogin_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth", r.URL.Path)
		_ = json.NewEncoder(w).Encode(loginResponse{AccessToken: "tok-123"})
	}))
	defer ts.Close()

	token, err := New(ts.URL).Login(context.Background(), "ana@x.com", []byte("secret123"))
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Login(context.Background(), "ana@x.com", []byte("wrong"))
	assert.True(t, errors.Is(err, common.ErrorInvalidCredentials))
}

func TestLogin_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Login(context.Background(), "ana@x.com", []byte("p"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
