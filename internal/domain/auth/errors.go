package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid terminal code or secret")
	ErrTerminalNotFound   = errors.New("terminal not found")
)
