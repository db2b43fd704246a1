// Package kernel contains shared value objects used across aggregates.
// It currently provides the UUID identity type that wraps github.com/google/uuid
// with domain-specific validation and immutability guarantees.
package kernel
