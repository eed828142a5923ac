package services

import (
	"context"
	"log"

	"taskboard/internal/application/command"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/application/mapper"
	"taskboard/internal/application/query"
	"taskboard/internal/domain"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
	"taskboard/internal/infrastructure"
)

type AuthService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	profileCache *infrastructure.ProfileCache
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	profileCache *infrastructure.ProfileCache,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		profileCache: profileCache,
	}
}

func (s *AuthService) Register(registerCommand *command.RegisterCommand) (*command.RegisterCommandResult, error) {
	if registerCommand.Username == "" || registerCommand.Password == "" {
		return nil, domain.NewValidationError("Username and password required")
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.NewConflictError("Username already exists")
	}

	newUser := entities.NewUser(registerCommand.Username, registerCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// The repository still reports a conflict here when a concurrent
	// register won the race between the lookup above and this insert.
	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(createdUser.Id, createdUser.Username)
	if err != nil {
		return nil, err
	}

	return &command.RegisterCommandResult{Token: token}, nil
}

func (s *AuthService) Login(loginCommand *command.LoginCommand) (*command.LoginCommandResult, error) {
	if loginCommand.Username == "" || loginCommand.Password == "" {
		return nil, domain.NewValidationError("Username and password required")
	}

	user, err := s.userRepo.FindByUsername(loginCommand.Username)
	if err != nil {
		return nil, err
	}
	// A missing user and a wrong password produce the same answer.
	if user == nil {
		return nil, domain.NewAuthError("Invalid credentials")
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.NewAuthError("Invalid credentials")
	}

	token, err := s.jwtService.GenerateToken(user.Id, user.Username)
	if err != nil {
		return nil, err
	}

	return &command.LoginCommandResult{Token: token}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userId int64) (*query.UserQueryResult, error) {
	// Try the cache first; any cache error falls through to the store.
	cachedUser, err := s.profileCache.Get(ctx, userId)
	if err == nil && cachedUser != nil {
		return &query.UserQueryResult{
			Result: mapper.NewUserResultFromEntity(cachedUser),
		}, nil
	}

	user, err := s.userRepo.FindById(userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	if err := s.profileCache.Set(ctx, user); err != nil {
		log.Printf("failed to cache profile %d: %v", userId, err)
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
