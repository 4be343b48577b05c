package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrRoleNotAllowed          = errors.New("role is not allowed to perform this action")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
