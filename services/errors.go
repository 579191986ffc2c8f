package services

import "errors"

var (
	ErrDuplicate         = errors.New("record already exists with this email or mobile number")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidCredential = errors.New("invalid password")
	ErrBureauIDExhausted = errors.New("could not allocate an unused bureauId")
)
