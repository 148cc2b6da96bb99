package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"imobsite/internal/domain"
)

type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepo) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	listing.ID = 7
	return args.Error(0)
}

func (m *MockListingRepo) Update(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func listingRequest() ListingRequest {
	return ListingRequest{
		Title:        "Casa com Piscina no Jardim América",
		Purpose:      "sale",
		Status:       "published",
		InternalCode: "REF-001",
		City:         "Goiânia",
		Price:        450000,
	}
}

func TestService_CreateListingGeneratesSlug(t *testing.T) {
	listings := new(MockListingRepo)
	listings.On("GetBySlug", mock.Anything, "casa-com-piscina-no-jardim-america").
		Return(nil, gorm.ErrRecordNotFound)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(listings, nil, nil, nil)

	listing, err := svc.CreateListing(context.Background(), listingRequest())

	assert.NoError(t, err)
	assert.Equal(t, "casa-com-piscina-no-jardim-america", listing.Slug)
	assert.Equal(t, domain.PurposeSale, listing.Purpose)
	assert.Equal(t, domain.StatusPublished, listing.Status)
	listings.AssertExpectations(t)
}

func TestService_CreateListingSuffixesTakenSlug(t *testing.T) {
	listings := new(MockListingRepo)
	listings.On("GetBySlug", mock.Anything, "casa-com-piscina-no-jardim-america").
		Return(&domain.Listing{ID: 3, Slug: "casa-com-piscina-no-jardim-america"}, nil)
	listings.On("GetBySlug", mock.Anything, "casa-com-piscina-no-jardim-america-2").
		Return(nil, gorm.ErrRecordNotFound)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(listings, nil, nil, nil)

	listing, err := svc.CreateListing(context.Background(), listingRequest())

	assert.NoError(t, err)
	assert.Equal(t, "casa-com-piscina-no-jardim-america-2", listing.Slug)
}

func TestService_UpdateListingKeepsOwnSlug(t *testing.T) {
	existing := &domain.Listing{ID: 5, Slug: "casa-com-piscina-no-jardim-america"}

	listings := new(MockListingRepo)
	listings.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	listings.On("GetBySlug", mock.Anything, "casa-com-piscina-no-jardim-america").
		Return(existing, nil)
	listings.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(listings, nil, nil, nil)

	listing, err := svc.UpdateListing(context.Background(), 5, listingRequest())

	assert.NoError(t, err)
	assert.Equal(t, "casa-com-piscina-no-jardim-america", listing.Slug)
}

func TestService_UpdateListingNotFound(t *testing.T) {
	listings := new(MockListingRepo)
	listings.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(listings, nil, nil, nil)

	_, err := svc.UpdateListing(context.Background(), 99, listingRequest())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_CreateListingDuplicateCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"postgres", &pgconn.PgError{Code: "23505", ConstraintName: "idx_listings_internal_code"}},
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: listings.internal_code (2067)")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings := new(MockListingRepo)
			listings.On("GetBySlug", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
			listings.On("Create", mock.Anything, mock.Anything).Return(tt.err)

			svc := NewService(listings, nil, nil, nil)

			_, err := svc.CreateListing(context.Background(), listingRequest())
			assert.ErrorIs(t, err, ErrCodeTaken)
		})
	}
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	user.ID = 2
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateUserRejectsDuplicateEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&domain.User{ID: 1, Email: "admin@example.com"}, nil)

	svc := NewService(nil, nil, users, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "Admin@Example.com",
		Password: "secret123",
		Name:     "Second Admin",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_CreateUserHashesPassword(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "editor@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(nil, nil, users, nil)

	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "editor@example.com",
		Password: "secret123",
		Name:     "Editor",
		Role:     "editor",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
	assert.Equal(t, domain.RoleEditor, user.Role)
}

func TestService_DeleteUserCannotDeleteSelf(t *testing.T) {
	svc := NewService(nil, nil, new(MockUserRepo), nil)
	err := svc.DeleteUser(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)
}
