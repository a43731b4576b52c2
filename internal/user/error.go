package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMissingOpenID   = errors.New("user openId is required for upsert")
	ErrInvalidAuthCode = errors.New("invalid authorization code")
)
