package notification

import (
	"strconv"
	"sync"
	"time"

	"imobsite/internal/domain"
)

const (
	// Capacity is how many notifications an admin session keeps.
	Capacity = 10

	// ToastDuration is how long the new-lead toast stays up before it
	// dismisses itself.
	ToastDuration = 5 * time.Second

	badgeCap = 9
)

// Notification wraps a lead for the admin bell/toast UI.
type Notification struct {
	LeadID    int64       `json:"lead_id"`
	Lead      domain.Lead `json:"lead"`
	Read      bool        `json:"read"`
	CreatedAt time.Time   `json:"created_at"`
}

// Center is the in-memory notification list of one admin session.
//
// Read state is session-local only: marking a notification read never
// writes back to the lead, and on the next session load the flag is
// derived again from the lead's workflow status.
type Center struct {
	mu       sync.Mutex
	items    []Notification
	toast    *domain.Lead
	timer    *time.Timer
	toastTTL time.Duration
}

func NewCenter() *Center {
	return &Center{toastTTL: ToastDuration}
}

// Load materializes the session's initial list from the most recent
// leads, newest first. A lead that has already been worked
// (status != new) loads as read.
func (c *Center) Load(leads []domain.Lead) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Notification, 0, Capacity)
	for _, lead := range leads {
		if len(items) == Capacity {
			break
		}
		items = append(items, Notification{
			LeadID:    lead.ID,
			Lead:      lead,
			Read:      !lead.IsNew(),
			CreatedAt: lead.CreatedAt,
		})
	}
	c.items = items
}

// Add prepends an unread notification for a freshly created lead,
// truncates the list to capacity and raises the toast. Leads already in
// the list are not de-duplicated; the list mirrors event arrival.
func (c *Center) Add(lead domain.Lead) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Notification, 0, Capacity)
	items = append(items, Notification{
		LeadID:    lead.ID,
		Lead:      lead,
		Read:      false,
		CreatedAt: lead.CreatedAt,
	})
	for _, n := range c.items {
		if len(items) == Capacity {
			break
		}
		items = append(items, n)
	}
	c.items = items

	c.showToastLocked(lead)
}

func (c *Center) showToastLocked(lead domain.Lead) {
	if c.timer != nil {
		c.timer.Stop()
	}
	l := lead
	c.toast = &l
	c.timer = time.AfterFunc(c.toastTTL, func() {
		c.DismissToast()
	})
}

// ActiveToast returns the lead currently shown as a toast, or nil.
func (c *Center) ActiveToast() *domain.Lead {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toast
}

// DismissToast hides the toast early; the auto-dismiss timer is stopped.
func (c *Center) DismissToast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.toast = nil
}

// MarkRead marks one notification read, in memory only.
func (c *Center) MarkRead(leadID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].LeadID == leadID {
			c.items[i].Read = true
		}
	}
}

// MarkAllRead marks every notification read, in memory only.
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		c.items[i].Read = true
	}
}

// Items returns a copy of the current list, newest first.
func (c *Center) Items() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// UnreadCount counts the notifications still unread.
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, n := range c.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Badge renders the unread count for the bell badge, capped at "9+".
// An empty string means no badge.
func (c *Center) Badge() string {
	count := c.UnreadCount()
	switch {
	case count == 0:
		return ""
	case count > badgeCap:
		return "9+"
	default:
		return strconv.Itoa(count)
	}
}
