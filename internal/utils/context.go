// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HMAC hashing,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key used to store the authenticated operator
// identity (the admin token's subject) in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "ops@vaultguard")
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext retrieves the operator identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok
}
