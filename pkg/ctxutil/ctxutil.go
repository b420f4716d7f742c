package ctxutil

import "context"

type ctxKey string

const (
	subjectKey   ctxKey = "subject"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

const roleAdmin = "admin"

// WithPrincipal stores the authenticated subject and its role in the context.
func WithPrincipal(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, subjectKey, subject)
	return context.WithValue(ctx, roleKey, role)
}

// SubjectFromCtx extracts the authenticated subject from the context.
// Returns "" and false if the request is anonymous.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// IsAdminCtx reports whether the context carries an admin principal.
func IsAdminCtx(ctx context.Context) bool {
	role, _ := ctx.Value(roleKey).(string)
	return role == roleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
