package repositories

import "carbontrack/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create stores a new user with the next sequential ID and the current
	// timestamp. Returns models.ErrDuplicateEmail if the email already
	// exists (exact, case-sensitive match).
	Create(email, passwordHash string) (*models.User, error)

	// GetByEmail returns the user with the given email, or
	// models.ErrNotFound.
	GetByEmail(email string) (*models.User, error)
}
