package dashboard

import (
	"context"
	"time"

	"imobsite/internal/domain"
)

// Periods the activity chart can be asked for, in days.
var allowedPeriods = map[int]bool{7: true, 30: true, 90: true}

const DefaultPeriod = 30

// Stats is the counter row at the top of the admin dashboard.
type Stats struct {
	TotalListings     int64 `json:"total_listings"`
	PublishedListings int64 `json:"published_listings"`
	DraftListings     int64 `json:"draft_listings"`
	TotalLeads        int64 `json:"total_leads"`
	NewLeads          int64 `json:"new_leads"`
	TotalCategories   int64 `json:"total_categories"`
}

// ActivityPoint is one day of the activity chart.
type ActivityPoint struct {
	Date     string `json:"date"`
	Leads    int    `json:"leads"`
	Listings int    `json:"listings"`
}

type Service struct {
	listings   ListingStatsReader
	leads      LeadStatsReader
	categories CategoryCounter
	now        func() time.Time
}

func NewService(listings ListingStatsReader, leads LeadStatsReader, categories CategoryCounter) *Service {
	return &Service{
		listings:   listings,
		leads:      leads,
		categories: categories,
		now:        time.Now,
	}
}

// NormalizePeriod clamps a requested chart window to a supported one.
func NormalizePeriod(days int) int {
	if allowedPeriods[days] {
		return days
	}
	return DefaultPeriod
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	listingCounts, err := s.listings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	leadCounts, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	categoryCount, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		PublishedListings: listingCounts[domain.StatusPublished],
		DraftListings:     listingCounts[domain.StatusDraft],
		NewLeads:          leadCounts[domain.LeadStatusNew],
		TotalCategories:   categoryCount,
	}
	for _, n := range listingCounts {
		stats.TotalListings += n
	}
	for _, n := range leadCounts {
		stats.TotalLeads += n
	}
	return stats, nil
}

// Activity builds the per-day lead and listing creation series for the
// last N days, today included. Every day of the window appears even
// when nothing happened on it.
func (s *Service) Activity(ctx context.Context, days int) ([]ActivityPoint, error) {
	days = NormalizePeriod(days)

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	leads, err := s.leads.ListCreatedSince(ctx, start)
	if err != nil {
		return nil, err
	}
	listings, err := s.listings.ListCreatedSince(ctx, start)
	if err != nil {
		return nil, err
	}

	points := make([]ActivityPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = ActivityPoint{Date: date}
		index[date] = i
	}

	for _, l := range leads {
		if i, ok := index[l.CreatedAt.In(now.Location()).Format("2006-01-02")]; ok {
			points[i].Leads++
		}
	}
	for _, l := range listings {
		if i, ok := index[l.CreatedAt.In(now.Location()).Format("2006-01-02")]; ok {
			points[i].Listings++
		}
	}
	return points, nil
}
