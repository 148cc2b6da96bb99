package admin

import "errors"

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already exists")
	ErrCodeTaken        = errors.New("internal code already exists")
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
)
