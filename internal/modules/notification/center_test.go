package notification

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"imobsite/internal/domain"
)

func lead(id int64, status domain.LeadStatus) domain.Lead {
	return domain.Lead{
		ID:        id,
		Name:      fmt.Sprintf("Lead %d", id),
		Email:     fmt.Sprintf("lead%d@example.com", id),
		Phone:     "11999990000",
		Message:   "I would like more information",
		Origin:    domain.OriginContact,
		Status:    status,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
	}
}

func TestCenter_LoadDerivesReadFromStatus(t *testing.T) {
	leads := []domain.Lead{
		lead(10, domain.LeadStatusNew),
		lead(9, domain.LeadStatusInContact),
		lead(8, domain.LeadStatusNew),
		lead(7, domain.LeadStatusClosed),
		lead(6, domain.LeadStatusNew),
		lead(5, domain.LeadStatusClosed),
		lead(4, domain.LeadStatusInContact),
		lead(3, domain.LeadStatusClosed),
		lead(2, domain.LeadStatusInContact),
		lead(1, domain.LeadStatusClosed),
	}

	c := NewCenter()
	c.Load(leads)

	items := c.Items()
	assert.Len(t, items, 10)
	assert.Equal(t, 3, c.UnreadCount())
	assert.Equal(t, "3", c.Badge())

	assert.False(t, items[0].Read)
	assert.True(t, items[1].Read)
	assert.False(t, items[2].Read)
}

func TestCenter_LoadTruncatesToCapacity(t *testing.T) {
	var leads []domain.Lead
	for id := int64(15); id >= 1; id-- {
		leads = append(leads, lead(id, domain.LeadStatusNew))
	}

	c := NewCenter()
	c.Load(leads)

	items := c.Items()
	assert.Len(t, items, Capacity)
	assert.Equal(t, int64(15), items[0].LeadID)
	assert.Equal(t, int64(6), items[9].LeadID)
}

func TestCenter_AddCapsAtCapacityNewestFirst(t *testing.T) {
	c := NewCenter()

	for id := int64(1); id <= 12; id++ {
		c.Add(lead(id, domain.LeadStatusNew))
	}

	items := c.Items()
	assert.Len(t, items, Capacity)
	assert.Equal(t, int64(12), items[0].LeadID)
	assert.Equal(t, int64(3), items[9].LeadID)
	for _, n := range items {
		assert.False(t, n.Read)
	}
	assert.Equal(t, Capacity, c.UnreadCount())
	assert.Equal(t, "9+", c.Badge())
}

func TestCenter_BadgeRendering(t *testing.T) {
	c := NewCenter()
	assert.Equal(t, "", c.Badge())

	c.Add(lead(1, domain.LeadStatusNew))
	assert.Equal(t, "1", c.Badge())

	for id := int64(2); id <= 9; id++ {
		c.Add(lead(id, domain.LeadStatusNew))
	}
	assert.Equal(t, "9", c.Badge())

	c.Add(lead(10, domain.LeadStatusNew))
	assert.Equal(t, "9+", c.Badge())
}

func TestCenter_MarkReadIsLocalOnly(t *testing.T) {
	original := lead(1, domain.LeadStatusNew)

	c := NewCenter()
	c.Add(original)
	c.MarkRead(1)

	items := c.Items()
	assert.True(t, items[0].Read)
	// The lead itself keeps its workflow status untouched.
	assert.Equal(t, domain.LeadStatusNew, items[0].Lead.Status)
	assert.Equal(t, domain.LeadStatusNew, original.Status)
	assert.Equal(t, 0, c.UnreadCount())

	// A fresh session derives read state from status again.
	fresh := NewCenter()
	fresh.Load([]domain.Lead{original})
	assert.Equal(t, 1, fresh.UnreadCount())
}

func TestCenter_MarkReadUnknownIDIsNoop(t *testing.T) {
	c := NewCenter()
	c.Add(lead(1, domain.LeadStatusNew))

	c.MarkRead(99)
	assert.Equal(t, 1, c.UnreadCount())
}

func TestCenter_MarkAllRead(t *testing.T) {
	c := NewCenter()
	for id := int64(1); id <= 5; id++ {
		c.Add(lead(id, domain.LeadStatusNew))
	}

	c.MarkAllRead()

	assert.Equal(t, 0, c.UnreadCount())
	assert.Equal(t, "", c.Badge())
	for _, n := range c.Items() {
		assert.True(t, n.Read)
	}
}

func TestCenter_ToastShowsAndDismisses(t *testing.T) {
	c := NewCenter()
	assert.Nil(t, c.ActiveToast())

	c.Add(lead(1, domain.LeadStatusNew))
	toast := c.ActiveToast()
	if assert.NotNil(t, toast) {
		assert.Equal(t, int64(1), toast.ID)
	}

	c.DismissToast()
	assert.Nil(t, c.ActiveToast())
}

func TestCenter_ToastAutoDismissAfterTimeout(t *testing.T) {
	c := NewCenter()
	c.toastTTL = 20 * time.Millisecond

	c.Add(lead(1, domain.LeadStatusNew))
	assert.NotNil(t, c.ActiveToast())

	assert.Eventually(t, func() bool {
		return c.ActiveToast() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestCenter_NewLeadReplacesToast(t *testing.T) {
	c := NewCenter()

	c.Add(lead(1, domain.LeadStatusNew))
	c.Add(lead(2, domain.LeadStatusNew))

	toast := c.ActiveToast()
	if assert.NotNil(t, toast) {
		assert.Equal(t, int64(2), toast.ID)
	}
}

func TestCenter_DuplicateLeadIsNotDeduplicated(t *testing.T) {
	c := NewCenter()
	c.Load([]domain.Lead{lead(1, domain.LeadStatusNew)})
	c.Add(lead(1, domain.LeadStatusNew))

	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.UnreadCount())
}
