package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 3-50 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidEmail     = errors.New("email is not a valid address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")

	ErrInvalidTaskLength  = errors.New("task must be 3-100 characters")
	ErrInvalidTaskCharset = errors.New("task may contain only letters, digits and spaces")
	ErrInvalidTodoID      = errors.New("todo id is required")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")

	ErrInvalidSkip      = errors.New("skip must be non-negative")
	ErrInvalidLimit     = errors.New("limit must be in range 0..100")
	ErrInvalidSortOrder = errors.New("order must be 'asc' or 'desc'")
)
