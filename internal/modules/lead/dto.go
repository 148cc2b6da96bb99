package lead

import "imobsite/internal/domain"

// Message length bounds per origin. The advertise form concatenates the
// property details into the message, so it gets more room.
const (
	messageMin          = 10
	messageMaxContact   = 1000
	messageMaxAdvertise = 2000
)

// SubmitLeadRequest is a public lead submission from any of the three
// site forms.
type SubmitLeadRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=10,max=20"`
	Message   string `json:"message"`
	Origin    string `json:"origin" validate:"required"`
	ListingID *int64 `json:"listing_id,omitempty"`
}

// UpdateLeadStatusRequest sets a lead's workflow status. Any of the three
// states may be set at any time.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_contact closed"`
}

// LeadListResponse is the paginated admin list.
type LeadListResponse struct {
	Leads []domain.Lead `json:"leads"`
	Total int64         `json:"total"`
}
