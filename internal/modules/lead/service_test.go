package lead

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"imobsite/internal/domain"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	if lead != nil && args.Error(0) == nil {
		lead.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListRecent(ctx context.Context, limit int) ([]domain.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.LeadStatus]int64), args.Error(1)
}

type recordingFeed struct {
	published []domain.Lead
}

func (f *recordingFeed) Publish(lead domain.Lead) {
	f.published = append(f.published, lead)
}

func validRequest() *SubmitLeadRequest {
	return &SubmitLeadRequest{
		Name:    "Maria Santos",
		Email:   "maria@example.com",
		Phone:   "+55 19 99999-0000",
		Message: "I would like to know more about this property.",
		Origin:  "contact",
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := new(MockLeadRepository)
	feed := &recordingFeed{}
	svc := NewService(repo, feed)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, fields, err := svc.Submit(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Nil(t, fields)
	assert.Equal(t, int64(42), lead.ID)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, domain.OriginContact, lead.Origin)

	// the persisted lead reached the feed
	assert.Len(t, feed.published, 1)
	assert.Equal(t, int64(42), feed.published[0].ID)

	repo.AssertExpectations(t)
}

func TestSubmit_MessageBoundary(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, &recordingFeed{})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// exactly 10 characters is accepted
	req := validRequest()
	req.Message = "1234567890"
	_, fields, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Nil(t, fields)

	// 9 characters is rejected with a field error on message
	req = validRequest()
	req.Message = "123456789"
	lead, fields, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Nil(t, lead)
	assert.Contains(t, fields, "message")

	// accented text counts characters, not bytes: 5 characters in
	// 10 UTF-8 bytes is still too short
	req = validRequest()
	req.Message = "ééééé"
	_, fields, _ = svc.Submit(context.Background(), req)
	assert.Contains(t, fields, "message")

	// and 10 accented characters is accepted
	req = validRequest()
	req.Message = "éééééééééé"
	_, fields, _ = svc.Submit(context.Background(), req)
	assert.Nil(t, fields)

	// nothing was persisted for the rejected submissions
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestSubmit_MessageUpperBoundPerOrigin(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, &recordingFeed{})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	long := strings.Repeat("a", 1500)

	// 1500 chars is too long for the contact form
	req := validRequest()
	req.Message = long
	_, fields, _ := svc.Submit(context.Background(), req)
	assert.Contains(t, fields, "message")

	// but fine for the advertise form, which allows up to 2000
	req = validRequest()
	req.Origin = "advertise"
	req.Message = long
	_, fields, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Nil(t, fields)

	// exactly 1000 accented characters (2000 bytes) still fits the
	// contact bound
	req = validRequest()
	req.Message = strings.Repeat("ã", 1000)
	_, fields, _ = svc.Submit(context.Background(), req)
	assert.Nil(t, fields)
}

func TestSubmit_FieldValidation(t *testing.T) {
	svc := NewService(new(MockLeadRepository), &recordingFeed{})

	tests := []struct {
		name    string
		mutate  func(*SubmitLeadRequest)
		wantKey string
	}{
		{"short name", func(r *SubmitLeadRequest) { r.Name = "A" }, "name"},
		{"bad email", func(r *SubmitLeadRequest) { r.Email = "not-an-email" }, "email"},
		{"short phone", func(r *SubmitLeadRequest) { r.Phone = "12345" }, "phone"},
		{"long phone", func(r *SubmitLeadRequest) { r.Phone = strings.Repeat("9", 21) }, "phone"},
		{"unknown origin", func(r *SubmitLeadRequest) { r.Origin = "newsletter" }, "origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			fields := svc.Validate(req)
			assert.Contains(t, fields, tt.wantKey)
		})
	}
}

func TestSubmit_StoreFailure_NoFeedPublish(t *testing.T) {
	repo := new(MockLeadRepository)
	feed := &recordingFeed{}
	svc := NewService(repo, feed)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	lead, fields, err := svc.Submit(context.Background(), validRequest())

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.Nil(t, fields)
	assert.Empty(t, feed.published)
}

func TestSubmit_ListingBackRefOnlyForListingOrigin(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, &recordingFeed{})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	listingID := int64(7)

	req := validRequest()
	req.Origin = "listing"
	req.ListingID = &listingID
	lead, _, _ := svc.Submit(context.Background(), req)
	assert.NotNil(t, lead.ListingID)
	assert.Equal(t, int64(7), *lead.ListingID)

	// a contact lead never carries a listing reference
	req = validRequest()
	req.ListingID = &listingID
	lead, _, _ = svc.Submit(context.Background(), req)
	assert.Nil(t, lead.ListingID)
}

func TestUpdateStatus_FreeTransitionGraph(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, &recordingFeed{})

	transitions := []domain.LeadStatus{
		domain.LeadStatusInContact,
		domain.LeadStatusClosed,
		domain.LeadStatusNew, // closed leads may be reopened
	}
	for _, status := range transitions {
		repo.On("UpdateStatus", mock.Anything, int64(1), status).Return(nil).Once()
		assert.NoError(t, svc.UpdateStatus(context.Background(), 1, string(status)))
	}

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, "archived"), ErrInvalidStatus)
	repo.AssertExpectations(t)
}
