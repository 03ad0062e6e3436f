package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/galactic-tictactoe/internal/entity"
)

const DefaultJournalQueueSize = 16

var (
	ErrJournalClosed = errors.New("round journal is closed")
	ErrJournalFull   = errors.New("round journal queue is full")
)

type roundRecorder interface {
	Save(ctx context.Context, result *entity.RoundResult) error
}

type RoundJournalOptions struct {
	// Timeout bounds a single Save. Zero means no bound beyond the parent context.
	Timeout   time.Duration
	QueueSize int
}

// RoundJournal hands finished rounds to a recorder on its own goroutine,
// so a slow or unreachable store never holds up a turn.
type RoundJournal struct {
	logger   *slog.Logger
	recorder roundRecorder
	timeout  time.Duration

	mu     sync.Mutex
	closed bool
	queue  chan *entity.RoundResult
	done   chan struct{}
}

// NewRoundJournal starts the writer. Writes outlive ctx cancellation so Close can drain the queue.
func NewRoundJournal(ctx context.Context, logger *slog.Logger, recorder roundRecorder, opts RoundJournalOptions) *RoundJournal {
	if opts.QueueSize < 1 {
		opts.QueueSize = DefaultJournalQueueSize
	}

	journal := &RoundJournal{
		logger:   logger.With("component", "round_journal"),
		recorder: recorder,
		timeout:  opts.Timeout,
		queue:    make(chan *entity.RoundResult, opts.QueueSize),
		done:     make(chan struct{}),
	}

	go journal.run(context.WithoutCancel(ctx))

	return journal
}

// Enqueue never blocks. A full queue drops the result.
func (that *RoundJournal) Enqueue(result *entity.RoundResult) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return ErrJournalClosed
	}

	select {
	case that.queue <- result:
		return nil
	default:
		return fmt.Errorf("%w: round %s dropped", ErrJournalFull, result.RoundID)
	}
}

// Close stops accepting rounds and waits for queued ones to be written, or for ctx to end.
func (that *RoundJournal) Close(ctx context.Context) error {
	that.mu.Lock()
	if !that.closed {
		that.closed = true
		close(that.queue)
	}
	that.mu.Unlock()

	select {
	case <-that.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("round journal not drained: %w", ctx.Err())
	}
}

func (that *RoundJournal) run(ctx context.Context) {
	defer close(that.done)

	for result := range that.queue {
		that.write(ctx, result)
	}
}

func (that *RoundJournal) write(ctx context.Context, result *entity.RoundResult) {
	log := that.logger.With("method", "write", "round_id", result.RoundID)

	if that.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.timeout)
		defer cancel()
	}

	if err := that.recorder.Save(ctx, result); err != nil {
		log.Warn("failed to journal round", "error", err)
		return
	}

	log.Debug("round journaled")
}
