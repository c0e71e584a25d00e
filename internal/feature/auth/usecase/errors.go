// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSessionNotFound is returned when a session cannot be found by token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases are deliberately
	// indistinguishable to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrFieldsRequired is returned when a required registration field is empty.
	ErrFieldsRequired = errors.New("all fields are required")

	// ErrEmailPasswordRequired is returned on login when email or password is empty.
	ErrEmailPasswordRequired = errors.New("email and password are required")

	// ErrInvalidEmail is returned when the email fails the format check.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrPasswordTooShort is returned when the password is shorter than the minimum length.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
