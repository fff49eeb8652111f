package generator

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	thinkingDelay   = 500 * time.Millisecond
	chunkDelay      = 100 * time.Millisecond
	errorChunkDelay = 300 * time.Millisecond

	// Probability of a simulated failure before each thinking step when the
	// prompt selects the error branch.
	errorProbability = 0.3
)

// Generator produces simulated completion streams. The zero dependencies are
// real randomness, wall clock, and timer sleeps; tests swap them out through
// options. A single Generator is safe for concurrent use: each stream owns
// all of its state.
type Generator struct {
	rand  func() float64
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

type Option func(*Generator)

// WithRandSource replaces the uniform [0,1) source used for error injection.
func WithRandSource(f func() float64) Option {
	return func(g *Generator) { g.rand = f }
}

// WithClock replaces the wall clock used for timestamps and time_taken.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSleep replaces the inter-event delay. The replacement must return a
// non-nil error once ctx is canceled.
func WithSleep(f func(ctx context.Context, d time.Duration) error) Option {
	return func(g *Generator) { g.sleep = f }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rand:  rand.Float64,
		now:   time.Now,
		sleep: sleepCtx,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stream lazily produces the event sequence for one prompt. Events are sent
// on an unbuffered channel, so each one materializes only when the consumer
// pulls it. The channel closes after the terminal event, or early when ctx is
// canceled; a stream cannot be restarted.
func (g *Generator) Stream(ctx context.Context, prompt, requestID string) <-chan Event {
	out := make(chan Event)
	go g.run(ctx, prompt, requestID, out)
	return out
}

func (g *Generator) run(ctx context.Context, prompt, requestID string, out chan<- Event) {
	defer close(out)

	start := g.now()
	totalTokens := 0
	completionTokens := 0

	emit := func(ev Event) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	timestamp := func() string {
		return g.now().Format(time.RFC3339Nano)
	}

	branch := Classify(prompt)

	// Thinking phase. On the error branch each step gets an independent
	// chance to fail before it is emitted.
	for _, step := range thinkingSteps {
		if branch == BranchError && g.rand() < errorProbability {
			emit(Event{Kind: KindError, Data: ErrorData{
				Message:   thinkingErrorMessage,
				RequestID: requestID,
				Timestamp: timestamp(),
			}})
			return
		}
		if !emit(Event{Kind: KindThinking, Data: ThinkingData{Content: step, Timestamp: timestamp()}}) {
			return
		}
		if g.sleep(ctx, thinkingDelay) != nil {
			return
		}
		totalTokens += countTokens(step)
	}

	delay := chunkDelay
	if branch == BranchError {
		delay = errorChunkDelay
	}

	for _, fragment := range fragmentsFor(branch) {
		if !emit(Event{Kind: KindChunk, Data: ChunkData{Content: fragment, Timestamp: timestamp()}}) {
			return
		}
		if g.sleep(ctx, delay) != nil {
			return
		}
		completionTokens += countTokens(fragment)
	}

	if branch == BranchError {
		emit(Event{Kind: KindError, Data: ErrorData{
			Message:   contentErrorMessage,
			RequestID: requestID,
			Timestamp: timestamp(),
		}})
		return
	}

	emit(Event{Kind: KindDone, Data: DoneData{
		Message: doneMessage,
		Metadata: Metadata{
			RequestID:        requestID,
			TotalTokens:      totalTokens + completionTokens,
			CompletionTokens: completionTokens,
			TimeTaken:        g.now().Sub(start).Seconds(),
		},
		Timestamp: timestamp(),
	}})
}

func countTokens(s string) int {
	return len(strings.Fields(s))
}
