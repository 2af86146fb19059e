package store

import "errors"

var (
	ErrUserExists     = errors.New("user already exists")
	ErrRecordNotFound = errors.New("record not found")
	ErrStoreClosed    = errors.New("store is closed")
)
