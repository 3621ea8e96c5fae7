// Package net carries request scoped ids across transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyOwnerID ctxKey = "owner_id"

// WithRequestID stores reqID where chi's GetReqID finds it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithOwner stores the authenticated owner id
func WithOwner(ctx context.Context, ownerID string) context.Context {
	if ownerID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyOwnerID, ownerID)
}

// RequestID returns the request id, if any
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// OwnerID returns the authenticated owner id, if any
func OwnerID(ctx context.Context) string {
	s, _ := ctx.Value(keyOwnerID).(string)
	return s
}
