package notify

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"farmhub/config"
	"farmhub/pkg/logging"
)

// FromConfig builds the dispatcher for the enabled channels. AWS
// credentials come from the default provider chain. With no channel
// enabled, or when AWS cannot be configured, messages go to the log.
func FromConfig(ctx context.Context, cfg config.AppConfig) *Dispatcher {
	entry := logging.Component("notify")
	var sinks []Sink
	if cfg.NotifyEmail || cfg.NotifySMS {
		opts := []func(*awsconfig.LoadOptions) error{}
		if cfg.AWSRegion != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			entry.WithError(err).Warn("aws config unavailable, notifications go to the log")
		} else {
			if cfg.NotifyEmail {
				if cfg.SESFromEmail == "" {
					entry.Warn("NOTIFY_EMAIL set without SES_FROM_EMAIL, email disabled")
				} else {
					sinks = append(sinks, NewEmailSink(sesv2.NewFromConfig(awsCfg), cfg.SESFromEmail))
				}
			}
			if cfg.NotifySMS {
				sinks = append(sinks, NewSMSSink(sns.NewFromConfig(awsCfg), cfg.PhoneCountryCode))
			}
		}
	}
	if len(sinks) == 0 {
		sinks = append(sinks, LogSink{})
	}
	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name())
	}
	entry.Infof("sinks: %v", names)
	return NewDispatcher(sinks...)
}
