package mail

import (
	"fmt"
	"strings"
	"time"
)

// PhonePlaceholder stands in for an omitted phone number in the email body.
const PhonePlaceholder = "—"

// Message is a fully prepared plain-text email, ready for one SMTP
// submission.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Bytes renders the wire form: headers in fixed order, blank line, body.
func (m *Message) Bytes() []byte {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", m.To)
	if m.ReplyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", m.ReplyTo)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", m.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(m.Body)
	return []byte(msg.String())
}

// QuoteRequestData carries one contact form submission into the rendered
// email.
type QuoteRequestData struct {
	Name       string
	Email      string
	Phone      string
	Service    string
	Message    string
	ReceivedAt time.Time
}

func (d QuoteRequestData) GetSubject() string {
	if d.Service == "" {
		return "New Quote Request"
	}
	return fmt.Sprintf("New Quote Request — %s", d.Service)
}

// GetBody renders the fixed-order plain-text block relayed to the mailbox.
func (d QuoteRequestData) GetBody() string {
	phone := d.Phone
	if phone == "" {
		phone = PhonePlaceholder
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Time (UTC): %s\n", d.ReceivedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Name: %s\n", d.Name)
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	if d.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", d.Service)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", d.Message)
	return b.String()
}
