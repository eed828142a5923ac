package repositories

import (
	"taskboard/internal/domain/entities"
)

type UserRepository interface {
	// Create persists a new user and returns the stored row. A duplicate
	// username yields a domain.ConflictError.
	Create(user *entities.ValidatedUser) (*entities.User, error)

	// FindByUsername returns (nil, nil) when no such user exists.
	FindByUsername(username string) (*entities.User, error)

	// FindById returns (nil, nil) when no such user exists.
	FindById(id int64) (*entities.User, error)
}
