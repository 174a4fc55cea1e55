package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string // optional: "tenclub"
	From     string // required: "no-reply@tenclub.in"

	To []string

	Subject  string
	TextBody string

	Headers map[string]string // optional extra headers
}
