package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/Kariqs/vastra-api/store"
)

var (
	ErrNotFound            = store.ErrNotFound
	ErrEmptyCart           = errors.New("cart is empty")
	ErrUnauthorized        = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("user already exists with this email")
	ErrOrderCreationFailed = errors.New("order creation failed")
)

// ValidationError carries per-field messages keyed by the request's json field names.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PasswordPolicyError lists every rule a rejected password broke.
type PasswordPolicyError struct {
	Problems []string
}

func (e *PasswordPolicyError) Error() string {
	return strings.Join(e.Problems, ", ")
}
