package interfaces

import "context"

// INotifier runs detached best-effort tasks. Dispatch never blocks the caller
// and task failures are only logged.
type INotifier interface {
	Dispatch(name string, task func(ctx context.Context) error)
}

// IEventLedger remembers processed billing event ids so side effects of a
// redelivered event are not repeated.
type IEventLedger interface {
	MarkProcessed(ctx context.Context, eventID string) (first bool, err error)
}

// ITokenIssuer issues and verifies bearer credentials for tenants.
type ITokenIssuer interface {
	Issue(tenantID string) (string, error)
	Verify(token string) (tenantID string, err error)
}
