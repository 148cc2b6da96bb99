package lead

import (
	"context"
	"fmt"
	"unicode/utf8"

	"imobsite/internal/domain"
	"imobsite/internal/pkg/validator"
)

// Service handles lead intake and admin workflow.
type Service struct {
	repo Repository
	feed CreationFeed
}

func NewService(repo Repository, feed CreationFeed) *Service {
	return &Service{
		repo: repo,
		feed: feed,
	}
}

// Validate checks a submission against the intake contract. It returns a
// field-keyed map of messages (the first failing rule per field), or nil
// when the request is acceptable. Nothing is persisted on failure.
func (s *Service) Validate(req *SubmitLeadRequest) map[string]string {
	fields := validator.Validate(req)
	add := func(key, msg string) {
		if fields == nil {
			fields = make(map[string]string)
		}
		if _, seen := fields[key]; !seen {
			fields[key] = msg
		}
	}

	origin, ok := domain.ParseLeadOrigin(req.Origin)
	if !ok {
		add("origin", "Unknown origin")
		return fields
	}

	max := messageMaxContact
	if origin == domain.OriginAdvertise {
		max = messageMaxAdvertise
	}

	// Bounds count characters, not bytes, so accented text is not
	// penalized for its UTF-8 encoding.
	switch length := utf8.RuneCountInString(req.Message); {
	case length < messageMin:
		add("message", fmt.Sprintf("Must be at least %d characters", messageMin))
	case length > max:
		add("message", fmt.Sprintf("Must be at most %d characters", max))
	}

	return fields
}

// Submit validates and persists a new lead, then announces it on the
// creation feed. The feed is only notified after the store write
// succeeds, so subscribers never see a lead that was not persisted.
func (s *Service) Submit(ctx context.Context, req *SubmitLeadRequest) (*domain.Lead, map[string]string, error) {
	if fields := s.Validate(req); fields != nil {
		return nil, fields, nil
	}

	origin, _ := domain.ParseLeadOrigin(req.Origin)

	lead := &domain.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Origin:  origin,
		Status:  domain.LeadStatusNew,
	}
	if origin == domain.OriginListing {
		lead.ListingID = req.ListingID
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, nil, err
	}

	if s.feed != nil {
		s.feed.Publish(*lead)
	}

	return lead, nil, nil
}

// UpdateStatus sets any of the three workflow states; the graph is free,
// so closed leads may be reopened.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	parsed, ok := domain.ParseLeadStatus(status)
	if !ok {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}

// ListRecent returns the newest leads, capped at limit.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Lead, error) {
	return s.repo.ListRecent(ctx, limit)
}

// List returns leads for the admin table, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]domain.Lead, int64, error) {
	var filter *domain.LeadStatus
	if parsed, ok := domain.ParseLeadStatus(status); ok {
		filter = &parsed
	}
	return s.repo.List(ctx, filter, limit, offset)
}

// Stats returns lead counts by workflow status.
func (s *Service) Stats(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	return s.repo.CountByStatus(ctx)
}
