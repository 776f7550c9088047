package usecase

import (
	"context"
	"errors"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// loginFailedMessage is shared by the unknown-username and wrong-password
// paths so callers cannot tell the two apart.
const loginFailedMessage = "Invalid username or password"

type authUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates a new account. Duplicate usernames (exact, case-sensitive
// match) are rejected with no row created. Registration does not log the
// user in.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Pre-check for a friendlier error; the unique index on username is the
	// real guard and maps to the same conflict
	existing, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the matching user.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, apperror.BadRequest("Username and password are required")
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized(loginFailedMessage)
		}
		return nil, apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.Unauthorized(loginFailedMessage)
	}

	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
