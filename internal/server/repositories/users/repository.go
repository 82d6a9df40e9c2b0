// Package users declares the persistence contract for user accounts.
package users

import (
	"context"
	"time"

	"github.com/carlosdaniiel07/identity-service/internal/server/models"
)

// Repository defines the operations the account service needs from storage.
// Soft-deleted rows are invisible to every method.
type Repository interface {
	// Create inserts the user and returns it with the generated id and
	// creation timestamp filled in.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns the user with the given primary key.
	// Implementations return common.ErrorNotFound when the row is absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail returns the user with exactly the given email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailExists reports whether any live user has exactly the given email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// SetLastLogin records a successful login time on the user row.
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
