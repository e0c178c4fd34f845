package ports

import "context"

// Notifier sends out-of-band messages to users, e.g. account status mail.
type Notifier interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
