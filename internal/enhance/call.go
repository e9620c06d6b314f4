package enhance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/llm"
)

// CallState is the lifecycle state of one provider call
type CallState string

// Call states. A call is pending until it settles or times out; a timed-out
// call drains for a grace period and is then discarded.
const (
	StatePending          CallState = "pending"
	StateCompleted        CallState = "completed"
	StateTimedOutDraining CallState = "timed-out-draining"
	StateDiscarded        CallState = "discarded"
)

type callOutcome struct {
	resp *llm.Response
	err  error
}

// call races one provider request against a timeout
type call struct {
	client llm.Client
	req    *llm.Request

	timeout time.Duration
	grace   time.Duration
	logger  *zap.Logger

	state       CallState
	transitions []CallState
}

func newCall(client llm.Client, req *llm.Request, timeout, grace time.Duration, logger *zap.Logger) *call {
	c := &call{client: client, req: req, timeout: timeout, grace: grace, logger: logger}
	c.transition(StatePending)
	return c
}

func (c *call) transition(to CallState) {
	c.state = to
	c.transitions = append(c.transitions, to)
	c.logger.Debug("enhancement call state", zap.String("state", string(to)))
}

// run dispatches the request and waits for it, the timeout or ctx, whichever
// comes first. An abandoned request is drained for the grace period, its
// outcome dropped, and its context canceled.
func (c *call) run(ctx context.Context) (*llm.Response, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so the provider goroutine never blocks after abandonment
	done := make(chan callOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callOutcome{err: fmt.Errorf("provider panicked: %v", r)}
			}
		}()
		resp, err := c.client.Generate(callCtx, c.req)
		done <- callOutcome{resp: resp, err: err}
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		c.transition(StateCompleted)
		if out.err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(out.err, ctxErr) {
				return nil, &TimeoutError{Timeout: c.timeout.String(), Cause: ctxErr}
			}
			return nil, &TransportError{Cause: out.err}
		}
		if out.resp == nil {
			return nil, &TransportError{Cause: errors.New("provider returned no response")}
		}
		return out.resp, nil
	case <-timer.C:
		c.abandon(done)
		return nil, &TimeoutError{Timeout: c.timeout.String()}
	case <-ctx.Done():
		c.abandon(done)
		return nil, &TimeoutError{Timeout: c.timeout.String(), Cause: ctx.Err()}
	}
}

// abandon waits up to the grace period for a late outcome and then discards it.
func (c *call) abandon(done <-chan callOutcome) {
	c.transition(StateTimedOutDraining)
	grace := time.NewTimer(c.grace)
	defer grace.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			c.logger.Debug("late enhancement failure swallowed", zap.Error(out.err))
		} else {
			c.logger.Debug("late enhancement response dropped")
		}
	case <-grace.C:
		c.logger.Debug("enhancement call still running after drain grace")
	}
	c.transition(StateDiscarded)
}
