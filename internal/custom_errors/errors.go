package custom_errors

import "errors"

// Not found
var (
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
)

// Validation
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAuthorNotFound = errors.New("author does not exist")
	ErrNoUpdateFields = errors.New("no fields to update")
)

// Conflict
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Auth
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// Internal
var (
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")
	ErrContentRender = errors.New("content render failed")
	ErrPasswordHash  = errors.New("password hashing failed")
	ErrSessionStore  = errors.New("session store failed")
	ErrExternalAPI   = errors.New("external api request failed")
)

// Admin dashboard
var (
	ErrDeleteInFlight  = errors.New("delete already in progress")
	ErrUpdateInFlight  = errors.New("update already in progress")
	ErrDeleteCancelled = errors.New("delete cancelled")
)
