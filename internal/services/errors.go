package services

import (
	"errors"

	"portfolio/internal/repository"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = repository.ErrNotFound
	ErrConflict     = repository.ErrConflict
	ErrUnauthorized = errors.New("invalid credentials")
)
