package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Checkout errors
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidCoupon     = errors.New("invalid coupon")
	ErrEmptyCart         = errors.New("empty cart")
)

// ErrUpstream marks a failure of an external collaborator (blob store,
// webhook) rather than of this service.
var ErrUpstream = errors.New("upstream service failure")

func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
