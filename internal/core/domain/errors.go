package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserInactive       = errors.New("user not found or inactive")
	ErrEmailTaken         = errors.New("email already registered")

	ErrUserNotFound    = errors.New("user not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrEntryNotFound   = errors.New("financial entry not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrBoardNotFound   = errors.New("board not found")
	ErrReportNotFound  = errors.New("report not found")
)
