// Package contact builds contact and suggestion emails as mailto links.
// Delivery is left to the user's mail client.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Variant selects the subject and body template.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuggestions Variant = "suggestions"
)

var (
	ErrMissingName    = errors.New("name is required")
	ErrMissingEmail   = errors.New("email is required")
	ErrInvalidEmail   = errors.New("email address is not valid")
	ErrMissingMessage = errors.New("message is required")
	ErrUnknownVariant = errors.New("unknown form variant")
)

// Message is what the user typed into the form.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Composed is a ready-to-open email.
type Composed struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

func (m Message) trimmed() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

func (m Message) validate() error {
	switch {
	case m.Name == "":
		return ErrMissingName
	case m.Email == "":
		return ErrMissingEmail
	case m.Message == "":
		return ErrMissingMessage
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Compose validates msg and renders the subject, body and mailto link
// for recipient using the template of variant.
func Compose(recipient string, variant Variant, msg Message) (Composed, error) {
	if variant == "" {
		variant = VariantDefault
	}
	msg = msg.trimmed()
	if err := msg.validate(); err != nil {
		return Composed{}, err
	}

	var subject, body string
	switch variant {
	case VariantDefault:
		subject = "[Contact] " + orDefault(msg.Subject, "Message from "+msg.Name)
		body = fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\nMESSAGE:\n%s\n",
			msg.Name, msg.Email, orDefault(msg.Subject, "(none)"), msg.Message)
	case VariantSuggestions:
		subject = "[Suggestion] " + orDefault(msg.Subject, "New idea from "+msg.Name)
		body = fmt.Sprintf("Name: %s\nEmail: %s\n\nIDEA/SUGGESTION:\n%s\n",
			msg.Name, msg.Email, msg.Message)
	default:
		return Composed{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	return Composed{
		Subject: subject,
		Body:    body,
		Mailto:  MailtoURL(recipient, subject, body),
	}, nil
}

// MailtoURL returns mailto:<recipient>?subject=...&body=... with both
// values percent-encoded and spaces as %20.
func MailtoURL(recipient, subject, body string) string {
	return "mailto:" + recipient + "?subject=" + encode(subject) + "&body=" + encode(body)
}

func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
