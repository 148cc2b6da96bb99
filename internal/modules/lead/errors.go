package lead

import "errors"

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("invalid lead status")
)
