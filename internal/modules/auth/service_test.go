package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"imobsite/internal/domain"
)

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{ token string }

func (s stubJWT) GenerateToken(int64, string) (string, error) { return s.token, nil }

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
}

func TestService_LoginSuccess(t *testing.T) {
	users := new(MockUserReader)
	users.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(adminUser(t, "secret123"), nil)

	svc := NewService(users, stubJWT{token: "tok"})

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  ADMIN@example.com ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, int64(1), result.User.ID)
	users.AssertExpectations(t)
}

func TestService_LoginWrongPassword(t *testing.T) {
	users := new(MockUserReader)
	users.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(adminUser(t, "secret123"), nil)

	svc := NewService(users, stubJWT{token: "tok"})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginUnknownEmailSameError(t *testing.T) {
	users := new(MockUserReader)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, stubJWT{token: "tok"})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
