package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type resendProvider struct {
	client *resend.Client
}

func NewResendProvider(apiKey string) Provider {
	if apiKey == "" {
		return &resendProvider{}
	}

	return &resendProvider{
		client: resend.NewClient(apiKey),
	}
}

func (p *resendProvider) Name() string {
	return "resend"
}

func (p *resendProvider) Configured() bool {
	return p.client != nil
}

func (p *resendProvider) Send(ctx context.Context, msg Message) error {
	if p.client == nil {
		return fmt.Errorf("resend client not initialized")
	}

	_, err := p.client.Emails.Send(&resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	return nil
}
