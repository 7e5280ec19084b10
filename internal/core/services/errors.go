package services

import (
	"fmt"

	"github.com/srgjo27/campus_event/internal/core/domain"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

func dependency(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrDependency, what, err)
}
