package usecase_test

import (
	"context"
	"testing"

	"go-internship-backend/internal/domain"
	"go-internship-backend/internal/usecase"
	"go-internship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		Username:        "employer_one",
		FirstName:       "Elena",
		LastName:        "Marsh",
		Email:           "elena@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "employer",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create user with hashed password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUsername", ctx, "employer_one").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEmpty(t, u.ID)
			assert.Equal(t, "employer", u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
		})

		user, err := uc.Register(ctx, validRegisterInput())
		assert.NoError(t, err)
		assert.Equal(t, "employer_one", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate username with no new record", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUsername", ctx, "employer_one").Return(&domain.User{Username: "employer_one"}, nil)

		_, err := uc.Register(ctx, validRegisterInput())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject mismatched confirm password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidate())

		input := validRegisterInput()
		input.ConfirmPassword = "different"

		_, err := uc.Register(ctx, input)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject invalid role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidate())

		input := validRegisterInput()
		input.Role = "admin"

		_, err := uc.Register(ctx, input)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &domain.User{
		ID:           "user-1",
		Username:     "intern_one",
		PasswordHash: string(hash),
		Role:         "intern",
	}

	t.Run("Should return user on correct credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUsername", ctx, "intern_one").Return(stored, nil)

		user, err := uc.Login(ctx, "intern_one", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("Should not distinguish unknown username from wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByUsername", ctx, "intern_one").Return(stored, nil)

		_, errUnknown := uc.Login(ctx, "ghost", "secret123")
		_, errWrongPw := uc.Login(ctx, "intern_one", "not-the-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}
