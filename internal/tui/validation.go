package tui

import (
	"errors"
	"strings"

	"github.com/quantmind-br/repoclone/internal/utils"
)

// Validation error messages
var (
	ErrRequired = errors.New("this field is required")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateSourceURL ensures the input is a usable clone source
func ValidateSourceURL(s string) error {
	if err := ValidateRequired(s); err != nil {
		return err
	}
	return utils.ValidateSource(s)
}
