package mail

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer delivers through AWS SES.
type SESMailer struct {
	client *ses.Client
	sender string
}

func NewSESMailer(ctx context.Context, region, sender string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

func (s *SESMailer) Send(ctx context.Context, m Message) error {
	charset := "UTF-8"
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: &s.sender,
		Destination: &types.Destination{
			ToAddresses: []string{m.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &m.Subject, Charset: &charset},
			Body: &types.Body{
				Text: &types.Content{Data: &m.Body, Charset: &charset},
			},
		},
	})
	return err
}
