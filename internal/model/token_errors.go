package model

import "errors"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenNotRegistered is returned when a refresh token verifies but has
	// no live ledger record, because it was rotated away or never saved.
	ErrTokenNotRegistered = errors.New("refresh token not registered")
)
