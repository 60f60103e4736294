package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog"
)

type sesProvider struct {
	client *sesv2.Client
}

// NewSESProvider loads the default aws configuration for region. A provider
// that failed to load is registered as not configured.
func NewSESProvider(ctx context.Context, region string, log zerolog.Logger) Provider {
	if region == "" {
		return &sesProvider{}
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load aws config, ses will be unavailable")
		return &sesProvider{}
	}

	return &sesProvider{
		client: sesv2.NewFromConfig(cfg),
	}
}

func (p *sesProvider) Name() string {
	return "ses"
}

func (p *sesProvider) Configured() bool {
	return p.client != nil
}

func (p *sesProvider) Send(ctx context.Context, msg Message) error {
	if p.client == nil {
		return fmt.Errorf("ses client not initialized")
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &msg.From,
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &msg.Subject},
				Body: &types.Body{
					Text: &types.Content{Data: &msg.Body},
				},
			},
		},
	}

	if _, err := p.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}

	return nil
}
