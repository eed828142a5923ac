package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/domain"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := UserModel{
		CreatedAt: userEntity.CreatedAt,
		Username:  userEntity.Username,
		Password:  userEntity.Password,
	}

	if err := r.db.Create(&userModel).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("Username already exists")
		}
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(userModel.Id)
}

func (r *UserRepository) FindById(id int64) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		Username:  userModel.Username,
		Password:  userModel.Password,
	}
}

// isUniqueViolation covers both drivers: gorm's translated error for
// postgres, the raw sqlite and postgres message texts otherwise.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
