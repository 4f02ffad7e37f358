package usecases

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/pkg/crypto"
	"gdpr-store.backend/pkg/jwt"
	"gdpr-store.backend/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthUsecase handles registration, login and profile reads against the
// KV user bucket.
type AuthUsecase struct {
	users         repositories.UserStore
	registrations repositories.RegistrationRepository
	jwtService    *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	users repositories.UserStore,
	registrations repositories.RegistrationRepository,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		users:         users,
		registrations: registrations,
		jwtService:    jwtService,
	}
}

func validateRegisterInput(input *entities.RegisterInput) []domainerrors.FieldError {
	var fields []domainerrors.FieldError
	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		fields = append(fields, domainerrors.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(input.Password) < 6 {
		fields = append(fields, domainerrors.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if strings.TrimSpace(input.FirstName) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "firstName", Message: "must not be empty"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "lastName", Message: "must not be empty"})
	}
	return fields
}

// Register creates a new user document keyed by email
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	if fields := validateRegisterInput(input); len(fields) > 0 {
		return nil, domainerrors.Validation(fields)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	key := entities.UserKey(email)

	// Existence probe; a miss is the happy path
	_, err := u.users.Get(ctx, key)
	if err == nil {
		return nil, domainerrors.Conflict("User already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entities.User{
		Type:      "user",
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      entities.UserRoleCustomer,
		IsActive:  true,
		Profile: entities.UserProfile{
			Addresses:   []entities.Address{},
			Preferences: map[string]interface{}{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.users.Insert(ctx, key, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("User already exists")
		}
		return nil, err
	}

	// Projection write for compliance range counts. The canonical
	// document is already stored, so a failure here must not undo the
	// registration.
	if err := u.registrations.Create(ctx, &entities.UserRegistration{Email: email}); err != nil {
		logger.Warn(ctx, "failed to record registration projection",
			zap.String("email", email),
			zap.Error(err))
	}

	token, err := u.jwtService.GenerateToken(key)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user.Summary(key)}, nil
}

// Login verifies credentials and issues a fresh token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}
	key := entities.UserKey(email)

	user, err := u.users.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !crypto.CheckPassword(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = null.TimeFrom(now)
	user.UpdatedAt = now
	if err := u.users.Upsert(ctx, key, user); err != nil {
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(key)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user.Summary(key)}, nil
}

// Profile returns the authenticated user's document without the hash
func (u *AuthUsecase) Profile(ctx context.Context, userKey string) (*entities.UserProfileView, error) {
	user, err := u.users.Get(ctx, userKey)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.NotFound("User not found")
	}

	return &entities.UserProfileView{
		ID:        userKey,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Profile:   user.Profile,
		CreatedAt: user.CreatedAt,
	}, nil
}
