package valueobjects

import (
	"fmt"

	"resolveit/internal/shared/validation"
)

// Username represents an account display name, alphanumeric 3-20 characters.
type Username struct {
	value string
}

func NewUsername(value string) (*Username, error) {
	if value == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	if !validation.IsValidUsername(value) {
		return nil, fmt.Errorf("username must be alphanumeric with 3-20 characters")
	}

	return &Username{value: value}, nil
}

func (u *Username) String() string {
	return u.value
}

func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}
