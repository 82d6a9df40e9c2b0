// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, identity lookup, and profile
// photo uploads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/carlosdaniiel07/identity-service/internal/common"
	"github.com/carlosdaniiel07/identity-service/internal/dbx"
	"github.com/carlosdaniiel07/identity-service/internal/server/auth"
	"github.com/carlosdaniiel07/identity-service/internal/server/blobstore"
	"github.com/carlosdaniiel07/identity-service/internal/server/config"
	"github.com/carlosdaniiel07/identity-service/internal/server/hashing"
	"github.com/carlosdaniiel07/identity-service/internal/server/models"
	"github.com/carlosdaniiel07/identity-service/internal/server/repositories/repomanager"
	"github.com/carlosdaniiel07/identity-service/internal/server/uploads"
	"github.com/google/uuid"
)

// profilePhotoContainer is the logical container profile images live under.
const profilePhotoContainer = "users"

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so a login miss costs the same as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides the account operations:
//   - SignUp: uniqueness check, hash, persist
//   - Login: lookup, verify, issue token
//   - GetByID / LoggedUserID: identity lookup
//   - UpdateProfilePhoto: validate, upload, report result
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        hashing.Hasher
	store         blobstore.ObjectStore
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService from its collaborators and config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h hashing.Hasher, store blobstore.ObjectStore, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		hasher:        h,
		store:         store,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// SignUp registers a new account. The plaintext password is passed separately
// from the entity and only its hash is ever stored. IsActive and LastLogin
// are forced regardless of what the caller put on the candidate. The insert
// runs inside one transaction: a failed commit leaves no visible user.
func (s *UserService) SignUp(ctx context.Context, user *models.User, password string) error {
	if err := validateCandidate(user, password); err != nil {
		return err
	}

	email := user.Email

	repo := s.repomanager.Users(s.db)
	exists, err := repo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return common.ErrorEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = hash
	user.IsActive = true
	user.LastLogin = nil

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Users(tx)
		if _, err := repoTx.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
}

// Login verifies the presented credentials and returns a signed session
// token. An unknown email and a wrong password yield the same
// common.ErrorInvalidCredentials so callers cannot tell which one failed.
// On success the user's last-login timestamp is updated.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Compare(dummyHash, password)
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", common.ErrorInvalidCredentials
	}

	if err := repo.SetLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("error updating last login: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID returns the full user record. The caller is responsible for
// redacting the password hash before any external exposure.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}

// LoggedUserID extracts the caller's identity from an already-verified
// claims set. No persistence access.
func (s *UserService) LoggedUserID(claims *auth.Claims) (string, error) {
	return auth.UserIDFromClaims(claims)
}

// UpdateProfilePhoto validates the content type, uploads the image under a
// fresh object name, and returns the stored object's URI. Client-supplied
// filenames are never used. Nothing is written to the database.
func (s *UserService) UpdateProfilePhoto(ctx context.Context, file io.Reader, contentType string) (*models.ProfilePhoto, error) {
	if !uploads.IsValidImage(contentType) {
		return nil, common.ErrorInvalidFileType
	}

	extension, err := uploads.ExtensionByContentType(contentType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s.%s", profilePhotoContainer, uuid.New(), extension)

	uri, err := s.store.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("error uploading photo: %w", err)
	}

	return &models.ProfilePhoto{URI: uri, CreatedAt: time.Now().UTC()}, nil
}

func validateCandidate(user *models.User, password string) error {
	switch {
	case user.Name == "" || len(user.Name) > 50:
		return fmt.Errorf("%w: name is required and must not exceed 50 characters", common.ErrorValidation)
	case user.Email == "" || len(user.Email) > 100:
		return fmt.Errorf("%w: email is required and must not exceed 100 characters", common.ErrorValidation)
	case password == "":
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}
