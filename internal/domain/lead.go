package domain

import "time"

// LeadOrigin is the public form a lead came from.
type LeadOrigin string

const (
	OriginContact   LeadOrigin = "contact"   // general contact form
	OriginAdvertise LeadOrigin = "advertise" // advertise-your-property form
	OriginListing   LeadOrigin = "listing"   // inquiry on a specific listing
)

func ParseLeadOrigin(s string) (LeadOrigin, bool) {
	switch LeadOrigin(s) {
	case OriginContact, OriginAdvertise, OriginListing:
		return LeadOrigin(s), true
	}
	return "", false
}

// LeadStatus is the workflow state of a lead. The workflow is a free
// graph: any admin action may set any status at any time, including
// reopening a closed lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusInContact LeadStatus = "in_contact"
	LeadStatusClosed    LeadStatus = "closed"
)

func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusInContact, LeadStatusClosed:
		return LeadStatus(s), true
	}
	return "", false
}

type Lead struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message,omitempty"`
	Origin    LeadOrigin `json:"origin"`
	ListingID *int64     `json:"listing_id,omitempty"`
	Status    LeadStatus `json:"status" gorm:"index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty"`
}

// IsNew reports whether the lead has not been worked yet.
func (l *Lead) IsNew() bool {
	return l.Status == LeadStatusNew
}
