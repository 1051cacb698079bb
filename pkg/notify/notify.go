// Package notify delivers order notifications to customers and the farm
// admin. Delivery is fire-and-forget: failures are logged and counted, never
// returned to the caller.
package notify

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"farmhub/pkg/logging"
	"farmhub/pkg/metrics"
)

type Kind string

const (
	KindNewOrderAdmin     Kind = "new_order_admin"
	KindOrderConfirmation Kind = "order_confirmation"
	KindOrderStatusUpdate Kind = "order_status_update"
	KindPaymentReceipt    Kind = "payment_receipt"
)

type Recipient struct {
	Name  string
	Email string
	Phone string // 10-digit national number
}

type Line struct {
	Variety  string
	Quantity float64
	Unit     string
	Subtotal float64
}

// Payload is the order snapshot a message is rendered from.
type Payload struct {
	OrderID         uint
	CustomerName    string
	CustomerPhone   string
	OrderDate       string
	DeliveryDate    string
	DeliveryAddress string
	DeliveryStatus  string
	PaymentStatus   string
	PaymentMethod   string
	PaymentDate     string
	Notes           string
	Items           []Line
	Total           float64
}

type Message struct {
	Kind    Kind
	To      Recipient
	Subject string
	HTML    string
	Text    string
}

// Sink is one delivery channel.
type Sink interface {
	Name() string
	Accepts(to Recipient) bool
	Send(ctx context.Context, m Message) error
}

type Dispatcher struct {
	sinks   []Sink
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks, timeout: 15 * time.Second}
}

// Notify renders the message and hands it to every sink that can reach the
// recipient. It returns immediately; sends run on their own goroutines and
// outlive the caller's request context.
func (d *Dispatcher) Notify(ctx context.Context, kind Kind, to Recipient, p Payload) {
	entry := logging.Component("notify").WithFields(log.Fields{"kind": kind, "order_id": p.OrderID})
	m, err := Render(kind, to, p)
	if err != nil {
		entry.WithError(err).Warn("render failed")
		metrics.NotificationSent(string(kind), "render", err)
		return
	}

	sent := false
	for _, s := range d.sinks {
		if !s.Accepts(to) {
			continue
		}
		sent = true
		d.wg.Add(1)
		go func(s Sink) {
			defer d.wg.Done()
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
			defer cancel()
			err := s.Send(sctx, m)
			metrics.NotificationSent(string(kind), s.Name(), err)
			if err != nil {
				entry.WithField("sink", s.Name()).WithError(err).Warn("send failed")
				return
			}
			entry.WithField("sink", s.Name()).Debug("sent")
		}(s)
	}
	if !sent {
		entry.Debug("no sink accepts recipient")
	}
}

// Wait blocks until in-flight sends finish.
func (d *Dispatcher) Wait() { d.wg.Wait() }
