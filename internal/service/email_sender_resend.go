package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers one-time codes through the Resend API. The raw
// code goes out in the mail body; only its hash is ever persisted.
type ResendEmailSender struct {
	client *resend.Client
	from   string
}

func NewResendEmailSender(apiKey string, from string) (*ResendEmailSender, error) {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return nil, errors.New("resend api key and sender address are required")
	}
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}, nil
}

func (s *ResendEmailSender) SendVerificationCode(ctx context.Context, email string, username string, code string) error {
	subject := "Verify your account"
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>. It expires in 15 minutes.</p>",
		username, code,
	)
	text := fmt.Sprintf("Hi %s, your verification code is %s. It expires in 15 minutes.", username, code)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendPasswordResetCode(ctx context.Context, email string, username string, code string) error {
	subject := "Reset your password"
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your password reset code is <strong>%s</strong>. It expires in 15 minutes.</p><p>If you did not request this, you can ignore this email.</p>",
		username, code,
	)
	text := fmt.Sprintf("Hi %s, your password reset code is %s. It expires in 15 minutes.", username, code)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) send(ctx context.Context, to string, subject string, html string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	return err
}
