package hub

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"fleetdesk/internal/models"
)

type fakeConn struct {
	mu     sync.Mutex
	events []models.Event
	fail   bool
	closed bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.events = append(c.events, v.(models.Event))
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Event(nil), c.events...)
}

func TestBroadcastToAllClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewEventHub()
	defer h.Close()

	a, b := &fakeConn{}, &fakeConn{}
	h.Register(a)
	h.Register(b)

	ev := models.NewEvent(models.EntityCompany, models.ActionDeleted, 3, nil)
	h.Publish(ev)

	for _, c := range []*fakeConn{a, b} {
		assert.Eventually(t, func() bool { return len(c.received()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, "company.deleted", c.received()[0].Type)
	}
}

func TestFailedClientIsDropped(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewEventHub()
	defer h.Close()

	broken := &fakeConn{fail: true}
	h.Register(broken)
	h.Publish(models.NewEvent(models.EntityDriver, models.ActionCreated, 1, nil))

	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
	broken.mu.Lock()
	assert.True(t, broken.closed)
	broken.mu.Unlock()
}

func TestCloseDisconnectsClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewEventHub()
	c := &fakeConn{}
	h.Register(c)

	h.Close()
	h.Close()
	h.Publish(models.NewEvent(models.EntityDriver, models.ActionCreated, 1, nil))

	assert.Zero(t, h.Clients())
	assert.True(t, c.closed)
	assert.Empty(t, c.received())
}

// stuckConn never finishes a write until it is closed, like a peer that
// stopped reading with a full TCP window.
type stuckConn struct {
	once    sync.Once
	closed  chan struct{}
	writing chan struct{}
}

func newStuckConn() *stuckConn {
	return &stuckConn{closed: make(chan struct{}), writing: make(chan struct{}, 1)}
}

func (c *stuckConn) WriteJSON(interface{}) error {
	select {
	case c.writing <- struct{}{}:
	default:
	}
	<-c.closed
	return errors.New("use of closed network connection")
}

func (c *stuckConn) SetWriteDeadline(time.Time) error { return nil }

func (c *stuckConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func TestStalledClientDoesNotBlockHub(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewEventHub()
	stuck := newStuckConn()
	healthy := &fakeConn{}
	h.Register(stuck)
	h.Register(healthy)

	h.Publish(models.NewEvent(models.EntityCompany, models.ActionCreated, 1, nil))
	select {
	case <-stuck.writing:
	case <-time.After(time.Second):
		t.Fatal("stalled client never received a write")
	}

	h.Publish(models.NewEvent(models.EntityCompany, models.ActionUpdated, 1, nil))
	assert.Eventually(t, func() bool { return len(healthy.received()) == 2 }, time.Second, 5*time.Millisecond)

	late := &fakeConn{}
	h.Register(late)
	assert.Equal(t, 3, h.Clients())
	h.Unregister(late)

	closed := make(chan struct{})
	go func() {
		h.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked behind a stalled client")
	}
	assert.Zero(t, h.Clients())
}

func TestSlowClientIsDroppedWhenBufferFills(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewEventHub()
	defer h.Close()

	stuck := newStuckConn()
	h.Register(stuck)
	for i := 0; i < clientBuffer+2; i++ {
		h.Publish(models.NewEvent(models.EntityDriver, models.ActionUpdated, uint(i), nil))
	}

	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestRegisterAfterCloseClosesConn(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewEventHub()
	h.Close()

	c := &fakeConn{}
	h.Register(c)
	assert.Zero(t, h.Clients())
	assert.True(t, c.closed)
}
