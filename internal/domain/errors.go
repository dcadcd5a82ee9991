package domain

import "errors"

var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidSlug    = errors.New("custom link contains no usable characters")
	ErrSlugTaken      = errors.New("custom link is already taken")
	ErrOrderNotFound  = errors.New("order not found")
	ErrAlreadySettled = errors.New("order already settled")
)
