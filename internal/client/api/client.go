// Package api is a small HTTP client for the identity service, used by the
// terminal client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/carlosdaniiel07/identity-service/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, name, email string, password []byte) error {
	resp, err := c.postJSON(ctx, "/api/signup", signUpRequest{Name: name, Email: email, Password: string(password)})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return common.ErrorEmailTaken
	default:
		return responseError(resp)
	}
}

// Login authenticates and returns the issued access token.
func (c *Client) Login(ctx context.Context, email string, password []byte) (string, error) {
	resp, err := c.postJSON(ctx, "/api/auth", loginRequest{Email: email, Password: string(password)})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("error decoding response: %w", err)
		}
		return out.AccessToken, nil
	case http.StatusNotFound:
		return "", common.ErrorInvalidCredentials
	default:
		return "", responseError(resp)
	}
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

func responseError(resp *http.Response) error {
	b, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("server error: %s; body: %s", resp.Status, string(b))
}
