package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/config"
)

type fakeSES struct {
	mu   sync.Mutex
	sent []*sesv2.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return &sesv2.SendEmailOutput{}, f.err
}

type fakeSNS struct {
	mu   sync.Mutex
	sent []*sns.PublishInput
	err  error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, f.err
}

func samplePayload() Payload {
	return Payload{
		OrderID:         42,
		CustomerName:    "Asha <Farm>",
		CustomerPhone:   "9845012345",
		DeliveryDate:    "2024-03-20",
		DeliveryAddress: "12 Market Rd",
		DeliveryStatus:  "packed",
		PaymentMethod:   "upi",
		PaymentDate:     "2024-03-21",
		Items: []Line{
			{Variety: "Methi", Quantity: 5, Unit: "bunches", Subtotal: 100},
			{Variety: "Basil", Quantity: 250, Unit: "grams", Subtotal: 125},
		},
		Total: 225,
	}
}

func TestRenderAllKinds(t *testing.T) {
	for _, k := range []Kind{KindNewOrderAdmin, KindOrderConfirmation, KindOrderStatusUpdate, KindPaymentReceipt} {
		m, err := Render(k, Recipient{Email: "a@b.c"}, samplePayload())
		require.NoError(t, err, k)
		assert.NotEmpty(t, m.Subject)
		assert.Contains(t, m.Subject, "42")
		assert.NotContains(t, m.HTML, "<Farm>", "names are escaped")
	}

	m, err := Render(KindNewOrderAdmin, Recipient{}, samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "New order #42 from Asha <Farm>", m.Subject)
	assert.Contains(t, m.Text, "Methi\t5 bunches\tRs. 100.00")
	assert.Contains(t, m.Text, "Basil\t250 grams\tRs. 125.00")
	assert.Contains(t, m.Text, "Total: Rs. 225.00")

	m, err = Render(KindOrderStatusUpdate, Recipient{}, samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "Order #42 is now packed", m.Subject)

	_, err = Render(Kind("birthday"), Recipient{}, samplePayload())
	assert.Error(t, err)
}

func TestDispatcherRoutesBySinkAcceptance(t *testing.T) {
	ses := &fakeSES{}
	smsc := &fakeSNS{}
	d := NewDispatcher(NewEmailSink(ses, "farm@example.com"), NewSMSSink(smsc, "+91"))

	d.Notify(context.Background(), KindOrderConfirmation, Recipient{Phone: "9845012345"}, samplePayload())
	d.Notify(context.Background(), KindPaymentReceipt, Recipient{Email: "asha@example.com", Phone: "9845012345"}, samplePayload())
	d.Wait()

	require.Len(t, ses.sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, ses.sent[0].Destination.ToAddresses)
	assert.Equal(t, "farm@example.com", *ses.sent[0].FromEmailAddress)
	assert.NotNil(t, ses.sent[0].Content.Simple.Body.Text)

	require.Len(t, smsc.sent, 2)
	for _, in := range smsc.sent {
		assert.Equal(t, "+919845012345", *in.PhoneNumber)
	}
}

func TestDispatcherSwallowsSinkErrors(t *testing.T) {
	ses := &fakeSES{err: errors.New("throttled")}
	d := NewDispatcher(NewEmailSink(ses, "farm@example.com"), LogSink{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // caller's request is already gone
	assert.NotPanics(t, func() {
		d.Notify(ctx, KindNewOrderAdmin, Recipient{Email: "admin@example.com"}, samplePayload())
		d.Wait()
	})
	assert.Len(t, ses.sent, 1)
}

func TestFromConfigFallsBackToLog(t *testing.T) {
	d := FromConfig(context.Background(), config.AppConfig{})
	require.Len(t, d.sinks, 1)
	assert.Equal(t, "log", d.sinks[0].Name())
}
