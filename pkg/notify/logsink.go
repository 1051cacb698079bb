package notify

import (
	"context"

	log "github.com/sirupsen/logrus"

	"farmhub/pkg/logging"
)

// LogSink writes messages to the log. It stands in when no delivery
// channel is configured.
type LogSink struct{}

func (LogSink) Name() string { return "log" }

func (LogSink) Accepts(to Recipient) bool { return to.Email != "" || to.Phone != "" }

func (LogSink) Send(_ context.Context, m Message) error {
	logging.Component("notify").WithFields(log.Fields{
		"kind":     m.Kind,
		"to_email": m.To.Email,
		"to_phone": m.To.Phone,
		"subject":  m.Subject,
	}).Info(m.Text)
	return nil
}
