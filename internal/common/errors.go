package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Post errors
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyContent = errors.New("content must not be empty")

	// Content store errors
	ErrStoreUnavailable = errors.New("content store unavailable")

	// Engagement errors
	ErrAlreadyReposted = errors.New("post already reposted")
	ErrCommentNotFound = errors.New("comment not found")

	// Subscription errors
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")

	// Message errors
	ErrMessageNotFound = errors.New("message not found")
	ErrSelfMessage     = errors.New("cannot message yourself")

	// Verification errors
	ErrAlreadyVerified  = errors.New("user already verified")
	ErrAlreadyRequested = errors.New("verification already requested")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
