package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSAPI is the part of the SNS client the SMS sink uses.
type SNSAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SMSSink struct {
	client      SNSAPI
	countryCode string
}

// NewSMSSink sends to the recipient's phone prefixed with countryCode
// (e.g. "+91") to form an E.164 number.
func NewSMSSink(client SNSAPI, countryCode string) *SMSSink {
	return &SMSSink{client: client, countryCode: countryCode}
}

func (s *SMSSink) Name() string { return "sns" }

func (s *SMSSink) Accepts(to Recipient) bool { return len(to.Phone) == 10 }

func (s *SMSSink) Send(ctx context.Context, m Message) error {
	number := s.countryCode + m.To.Phone
	in := &sns.PublishInput{
		Message:     aws.String(m.Subject + "\n" + m.Text),
		PhoneNumber: aws.String(number),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	}
	if _, err := s.client.Publish(ctx, in); err != nil {
		return fmt.Errorf("sns publish to %s: %w", number, err)
	}
	return nil
}
