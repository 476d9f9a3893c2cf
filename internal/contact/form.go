package contact

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the banner state of the form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// DefaultResetAfter is how long a success or error banner stays up.
const DefaultResetAfter = 5 * time.Second

// GenericError is shown for every construction failure.
const GenericError = "Something went wrong preparing your message. Please try again."

// Opener hands a mailto link to the user's mail client.
type Opener interface {
	Open(link string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(link string) error

func (f OpenerFunc) Open(link string) error { return f(link) }

// Form holds the contact form banner state. Success is reported as soon
// as the link is handed off since delivery cannot be observed.
type Form struct {
	Recipient  string
	Variant    Variant
	ResetAfter time.Duration

	opener Opener

	mu     sync.Mutex
	status Status
	notice string
	timer  *time.Timer
	gen    int
}

func NewForm(recipient string, variant Variant, opener Opener) *Form {
	return &Form{
		Recipient:  recipient,
		Variant:    variant,
		ResetAfter: DefaultResetAfter,
		opener:     opener,
		status:     StatusIdle,
	}
}

// Submit composes the message and opens it. Only composition and
// hand-off errors are caught; they set the generic error status.
func (f *Form) Submit(msg Message) (Composed, error) {
	composed, err := Compose(f.Recipient, f.Variant, msg)
	if err == nil {
		err = f.opener.Open(composed.Mailto)
	}
	if err != nil {
		logrus.WithError(err).WithField("variant", f.Variant).Warn("contact form not sent")
		f.set(StatusError, GenericError)
		return Composed{}, err
	}

	f.set(StatusSuccess, "Your mail client has been opened with your message.")
	return composed, nil
}

// Status returns the current banner state and text.
func (f *Form) Status() (Status, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.notice
}

// Close stops a pending reset.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) set(status Status, notice string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status, f.notice = status, notice
	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.timer = time.AfterFunc(f.ResetAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// a newer banner owns the state
		if gen != f.gen {
			return
		}
		f.status, f.notice = StatusIdle, ""
		f.timer = nil
	})
}
