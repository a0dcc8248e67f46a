package ports

import "context"

// Mailer define a interface para envio de emails transacionais
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
