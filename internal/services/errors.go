package services

import "errors"

var (
	// ErrNotFound is returned when a referenced question, answer or
	// notification does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned by signup when the email is already registered.
	ErrEmailTaken = errors.New("account already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
