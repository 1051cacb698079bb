package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var subjects = map[Kind]string{
	KindNewOrderAdmin:     "New order #%d from %s",
	KindOrderConfirmation: "We received your order #%d",
	KindOrderStatusUpdate: "Order #%d is now %s",
	KindPaymentReceipt:    "Payment received for order #%d",
}

const layout = `{{define "items"}}<table>
<tr><th>Variety</th><th>Qty</th><th>Amount</th></tr>
{{range .Items}}<tr><td>{{.Variety}}</td><td>{{qty .Quantity}} {{.Unit}}</td><td>{{money .Subtotal}}</td></tr>
{{end}}</table>
<p>Total: {{money .Total}}</p>{{end}}`

var bodies = map[Kind]string{
	KindNewOrderAdmin: `<h1>New order #{{.OrderID}}</h1>
<p>{{.CustomerName}} ({{.CustomerPhone}}) ordered for delivery on {{or .DeliveryDate "an open date"}}.</p>
<p>Address: {{.DeliveryAddress}}</p>
{{template "items" .}}
{{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}`,

	KindOrderConfirmation: `<h1>Thank you, {{.CustomerName}}</h1>
<p>Your order #{{.OrderID}} has been received and will be confirmed shortly.</p>
{{template "items" .}}`,

	KindOrderStatusUpdate: `<h1>Order #{{.OrderID}}</h1>
<p>Hello {{.CustomerName}}, your order is now <b>{{.DeliveryStatus}}</b>.</p>
{{if .DeliveryDate}}<p>Delivery date: {{.DeliveryDate}}</p>{{end}}`,

	KindPaymentReceipt: `<h1>Payment receipt</h1>
<p>Hello {{.CustomerName}}, we received {{money .Total}} for order #{{.OrderID}}
{{if .PaymentMethod}}by {{.PaymentMethod}} {{end}}on {{.PaymentDate}}.</p>
{{template "items" .}}`,
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("Rs. %.2f", v) },
	"qty": func(v float64) string {
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
	},
}

var templates = func() map[Kind]*template.Template {
	out := make(map[Kind]*template.Template, len(bodies))
	for k, body := range bodies {
		t := template.Must(template.New("layout").Funcs(funcs).Parse(layout))
		out[k] = template.Must(t.New(string(k)).Parse(body))
	}
	return out
}()

// Render builds the subject, HTML body and plain-text alternative.
func Render(kind Kind, to Recipient, p Payload) (Message, error) {
	t, ok := templates[kind]
	if !ok {
		return Message{}, fmt.Errorf("unknown notification kind %q", kind)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, string(kind), p); err != nil {
		return Message{}, err
	}
	html := "<html><body>" + buf.String() + "</body></html>"
	text, err := htmlToText(html)
	if err != nil {
		return Message{}, err
	}

	var subject string
	switch kind {
	case KindNewOrderAdmin:
		subject = fmt.Sprintf(subjects[kind], p.OrderID, p.CustomerName)
	case KindOrderStatusUpdate:
		subject = fmt.Sprintf(subjects[kind], p.OrderID, p.DeliveryStatus)
	default:
		subject = fmt.Sprintf(subjects[kind], p.OrderID)
	}
	return Message{Kind: kind, To: to, Subject: subject, HTML: html, Text: text}, nil
}

// htmlToText flattens the rendered body: one line per heading, paragraph or
// table row, cells separated by tabs.
func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	var parts []string
	doc.Find("h1,p,tr").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "tr" {
			var cells []string
			s.Children().Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(td.Text()))
			})
			parts = append(parts, strings.Join(cells, "\t"))
			return
		}
		if t := strings.Join(strings.Fields(s.Text()), " "); t != "" {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}
