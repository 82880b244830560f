package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUserExists      = errors.New("User already exists")
	ErrUserNotFound    = errors.New("User not found")
	ErrBadCreds        = errors.New("Invalid credentials")
	ErrBookNotFound    = errors.New("Book not found")
	ErrNotOwner        = errors.New("Not authorized: you are not the owner of this book")
	ErrNotBorrower     = errors.New("You are not currently borrowing this book")
	ErrNotAvailable    = errors.New("Book is not available")
	ErrOwnBook         = errors.New("You cannot borrow your own book")
	ErrAlreadyReview   = errors.New("Book already reviewed")
	ErrNotReturned     = errors.New("This book has not been marked as returned")
	ErrNoUpi           = errors.New("Book owner does not have a payment method set up")
	ErrBadSignature    = errors.New("Invalid payment signature")
	ErrDuplicateTicket = errors.New("duplicate ticket id")
	ErrForbidden       = errors.New("Access denied")
	ErrAdminOnly       = errors.New("Access denied. Admin privileges required.")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
