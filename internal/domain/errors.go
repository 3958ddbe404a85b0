// Package domain holds the entities shared across services and the
// sentinel errors handlers translate into HTTP statuses. Repositories
// map store-level failures (unique violations, missing rows) onto
// these values so that callers never inspect driver errors directly.
package domain

import "errors"

// ErrSeatTaken is returned when a booking already holds the requested
// (flight code, flight date, seat) triple. Handlers translate it into
// an HTTP 409 response.
var ErrSeatTaken = errors.New("seat already booked")

// ErrEmailTaken is returned when registering an email that is already
// present. Handlers translate it into an HTTP 409 response.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials covers both an unknown email and a password
// digest mismatch; callers cannot tell which. HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is returned by the user repository when no row
// matches. The account service folds it into ErrInvalidCredentials.
var ErrUserNotFound = errors.New("user not found")
