package dispatcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/teamup/internal/config"
)

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []Event
	errs  int
	fails int
	done  chan struct{}
}

func (n *recordingNotifier) Send(ctx context.Context, templateID string, params map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.fails > 0 {
		n.fails--
		n.errs++
		return errors.New("transport unavailable")
	}

	n.sent = append(n.sent, Event{TemplateID: templateID, Params: params})
	if n.done != nil {
		close(n.done)
		n.done = nil
	}
	return nil
}

func (n *recordingNotifier) sentEvents() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Event(nil), n.sent...)
}

func (n *recordingNotifier) errCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.errs
}

func testConfig() config.NotifierConfig {
	return config.NotifierConfig{
		BufferSize:   8,
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}
}

func TestDispatcher_Deliver(t *testing.T) {
	t.Run("delivers enqueued events", func(t *testing.T) {
		notifier := &recordingNotifier{done: make(chan struct{})}
		done := notifier.done
		d := New(notifier, testConfig(), zap.NewNop().Sugar())
		d.Start()
		defer d.Stop()

		d.Enqueue(Event{
			TemplateID: TemplateJoinRequestCreated,
			Params:     map[string]string{"request_id": "r1"},
		})

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("event was not delivered")
		}

		sent := notifier.sentEvents()
		require.Len(t, sent, 1)
		assert.Equal(t, TemplateJoinRequestCreated, sent[0].TemplateID)
		assert.Equal(t, "r1", sent[0].Params["request_id"])
	})

	t.Run("retries transient failures", func(t *testing.T) {
		notifier := &recordingNotifier{fails: 2, done: make(chan struct{})}
		done := notifier.done
		d := New(notifier, testConfig(), zap.NewNop().Sugar())
		d.Start()
		defer d.Stop()

		d.Enqueue(Event{TemplateID: TemplateRequestAccepted})

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("event was not delivered after retries")
		}

		assert.Len(t, notifier.sentEvents(), 1)
		assert.Equal(t, 2, notifier.errCount())
	})

	t.Run("exhausted retries are swallowed", func(t *testing.T) {
		notifier := &recordingNotifier{fails: 100}
		d := New(notifier, testConfig(), zap.NewNop().Sugar())
		d.Start()

		d.Enqueue(Event{TemplateID: TemplateRequestRejected})
		d.Enqueue(Event{TemplateID: TemplateRequestAccepted})

		// Stop waits for in-flight delivery; no panic, no error surfaced.
		time.Sleep(100 * time.Millisecond)
		d.Stop()

		assert.Empty(t, notifier.sentEvents())
	})
}

func TestDispatcher_Enqueue(t *testing.T) {
	t.Run("never blocks on a full buffer", func(t *testing.T) {
		cfg := testConfig()
		cfg.BufferSize = 1

		notifier := &recordingNotifier{}
		d := New(notifier, cfg, zap.NewNop().Sugar())
		// Not started: nothing drains the channel.

		done := make(chan struct{})
		go func() {
			for i := 0; i < 10; i++ {
				d.Enqueue(Event{TemplateID: TemplateInviteCreated})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("enqueue blocked on full buffer")
		}
	})
}

func TestDispatcher_Stop(t *testing.T) {
	t.Run("stop is idempotent", func(t *testing.T) {
		d := New(&recordingNotifier{}, testConfig(), zap.NewNop().Sugar())
		d.Start()

		d.Stop()
		d.Stop()
	})
}
