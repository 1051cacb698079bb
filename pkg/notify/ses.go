package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the part of the SESv2 client the email sink uses.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type EmailSink struct {
	client SESAPI
	from   string
}

func NewEmailSink(client SESAPI, from string) *EmailSink {
	return &EmailSink{client: client, from: from}
}

func (s *EmailSink) Name() string { return "ses" }

func (s *EmailSink) Accepts(to Recipient) bool { return strings.Contains(to.Email, "@") }

func (s *EmailSink) Send(ctx context.Context, m Message) error {
	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &sestypes.Destination{ToAddresses: []string{m.To.Email}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(m.Subject)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(m.HTML)},
					Text: &sestypes.Content{Data: aws.String(m.Text)},
				},
			},
		},
	}
	if _, err := s.client.SendEmail(ctx, in); err != nil {
		return fmt.Errorf("ses send to %s: %w", m.To.Email, err)
	}
	return nil
}
