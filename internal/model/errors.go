package model

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("duplicate username")

	// Session errors
	ErrNotLoggedIn = errors.New("no account is logged in")

	// Action rejections. These are logged, never shown to the user.
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidCredentials = errors.New("invalid username or pin")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrSameAccount        = errors.New("source and destination accounts must be different")
	ErrLoanNotCovered     = errors.New("no movement covers 10% of the requested loan")
)
