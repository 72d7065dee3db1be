// Package dispatcher delivers best-effort email/push notifications.
//
// The lifecycle manager emits outbound events; the dispatcher consumes them
// on its own goroutine with a retry/backoff policy. Delivery failures are
// logged and swallowed, never surfaced to the emitting transaction.
package dispatcher

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/festy23/teamup/internal/config"
	"github.com/festy23/teamup/pkg/retry"
)

// Template identifiers understood by the notifier transport.
const (
	TemplateJoinRequestCreated = "join_request_created"
	TemplateInviteCreated      = "invite_created"
	TemplateRequestAccepted    = "request_accepted"
	TemplateRequestRejected    = "request_rejected"
)

// Event is one outbound best-effort notification.
type Event struct {
	TemplateID string
	Params     map[string]string
}

// Notifier sends a notification over an external channel (email, push).
// Return values are advisory; the dispatcher never propagates them.
type Notifier interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// LogNotifier is the default Notifier: it only logs the delivery.
// Real transports plug in behind the same interface.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

// NewLogNotifier creates a logging notifier.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification and reports success.
func (n *LogNotifier) Send(ctx context.Context, templateID string, params map[string]string) error {
	n.logger.Infow("notification sent", "template_id", templateID, "params", params)
	return nil
}

// Dispatcher consumes outbound events on a single worker goroutine.
type Dispatcher struct {
	notifier Notifier
	logger   *zap.SugaredLogger
	retryCfg retry.Config
	events   chan Event

	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// New creates a dispatcher with the given notifier and configuration.
func New(notifier Notifier, cfg config.NotifierConfig, logger *zap.SugaredLogger) *Dispatcher {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = cfg.MaxAttempts
	retryCfg.InitialDelay = cfg.InitialDelay
	retryCfg.MaxDelay = cfg.MaxDelay

	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
		retryCfg: retryCfg,
		events:   make(chan Event, cfg.BufferSize),
		done:     make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

// Stop drains no further events and waits for the in-flight one.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
	})
	d.wg.Wait()
}

// Enqueue hands an event to the dispatcher without blocking. When the
// buffer is full the event is dropped and logged; enqueueing never fails
// the caller.
func (d *Dispatcher) Enqueue(event Event) {
	select {
	case d.events <- event:
	default:
		d.logger.Warnw("notification queue full, dropping event",
			"template_id", event.TemplateID,
		)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case <-d.done:
			return
		case event := <-d.events:
			d.deliver(event)
		}
	}
}

// deliver sends one event under the retry policy. All failures end here.
func (d *Dispatcher) deliver(event Event) {
	ctx := context.Background()

	err := retry.Do(ctx, d.retryCfg, func() error {
		return d.notifier.Send(ctx, event.TemplateID, event.Params)
	})

	if err != nil {
		d.logger.Warnw("best-effort notification dropped",
			"template_id", event.TemplateID,
			"error", err,
		)
	}
}
