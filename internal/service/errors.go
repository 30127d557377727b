package service

import "errors"

// Business-rule failures are sentinel values so controllers can map them to
// HTTP statuses with errors.Is. Anything else bubbling out of a service is an
// internal store failure.
var (
	ErrNotFound                = errors.New("resource not found")
	ErrAlreadyAttempted        = errors.New("test already attempted")
	ErrNoAttemptYet            = errors.New("no attempt exists for this test")
	ErrDuplicatePendingRequest = errors.New("a pending re-attempt request already exists")
	ErrAlreadyResolved         = errors.New("re-attempt request already resolved")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrAccountNotApproved      = errors.New("account is not approved")
	ErrInvalidTransition       = errors.New("invalid status transition")
)
