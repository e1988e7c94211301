package types

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
)

type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
)

// GetRequestID returns the request ID from the context, if set.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxRequestID, id)
}

// GenerateUUID returns a k-sortable unique identifier.
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier with a
// given prefix, e.g. req_01h9...
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return prefix + "_" + GenerateUUID()
}

const (
	// UUIDPrefixRequest is prepended to generated request IDs.
	UUIDPrefixRequest = "req"
)
