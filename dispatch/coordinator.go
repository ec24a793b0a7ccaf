package dispatch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ScientiaCapital/robot-brain/types"
)

// Coordinator invokes agents with per-call budgets and failure isolation.
type Coordinator struct {
	timeout     time.Duration
	maxParallel int
	logger      *zap.Logger
	collector   *Collector
}

// NewCoordinator builds a coordinator. timeout is the shared budget for one
// batch, maxParallel bounds parallel fan-out. A nil logger falls back to a
// no-op logger; a nil collector disables metrics.
func NewCoordinator(timeout time.Duration, maxParallel int, logger *zap.Logger, collector *Collector) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxParallel <= 0 {
		maxParallel = 3
	}
	return &Coordinator{
		timeout:     timeout,
		maxParallel: maxParallel,
		logger:      logger.With(zap.String("component", "coordinator")),
		collector:   collector,
	}
}

// Invoke runs one agent under budget. The agent runs in its own goroutine;
// if it overruns the budget it is abandoned and its eventual result is
// ignored. Panics are recovered into a failed response.
func (c *Coordinator) Invoke(ctx context.Context, agent types.Agent, query string, budget time.Duration) types.AgentResponse {
	start := time.Now()
	done := make(chan types.AgentResponse, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- types.AgentResponse{
					AgentName: agent.Name(),
					Success:   false,
					Error:     fmt.Sprintf("agent panicked: %v", r),
				}
			}
		}()
		reply, err := agent.Invoke(ctx, query)
		if err != nil {
			done <- types.AgentResponse{
				AgentName: agent.Name(),
				Success:   false,
				Error:     err.Error(),
			}
			return
		}
		resp := types.AgentResponse{
			AgentName: agent.Name(),
			Success:   true,
		}
		if reply != nil {
			resp.Response = reply.Response
			resp.HandoffTo = reply.HandoffTo
			resp.HandoffTask = reply.HandoffTask
		}
		done <- resp
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case resp := <-done:
		resp.Duration = time.Since(start)
		c.record(resp)
		return resp
	case <-timer.C:
		resp := types.AgentResponse{
			AgentName: agent.Name(),
			Success:   false,
			Error:     fmt.Sprintf("timeout after %s", budget),
			Duration:  budget,
		}
		c.logger.Warn("agent timed out",
			zap.String("agent", agent.Name()),
			zap.Duration("budget", budget))
		c.record(resp)
		return resp
	}
}

// Sequential invokes the selected agents one after another, each with an
// equal share of the shared budget. Handoffs are followed: a successful
// response naming a registered target triggers an immediate invocation of
// that target with the handoff task (or the original query when the task
// is empty), and the target's response is inserted right after the
// originator's. Unregistered targets and cycles are skipped.
func (c *Coordinator) Sequential(ctx context.Context, registry map[string]types.Agent, selected []string, query string) ([]types.AgentResponse, []types.HandoffEvent) {
	if len(selected) == 0 {
		return nil, nil
	}
	budget := c.timeout / time.Duration(len(selected))

	var responses []types.AgentResponse
	var events []types.HandoffEvent

	for _, name := range selected {
		agent, ok := registry[name]
		if !ok {
			c.logger.Warn("selected agent not registered", zap.String("agent", name))
			continue
		}
		resp := c.Invoke(ctx, agent, query, budget)
		responses = append(responses, resp)

		visited := map[string]bool{name: true}
		for resp.Success && resp.HandoffTo != "" {
			target, registered := registry[resp.HandoffTo]
			if !registered || visited[resp.HandoffTo] {
				if !registered {
					c.logger.Warn("handoff target not registered",
						zap.String("from", resp.AgentName),
						zap.String("to", resp.HandoffTo))
				}
				break
			}
			visited[resp.HandoffTo] = true

			task := resp.HandoffTask
			if task == "" {
				task = query
			}
			events = append(events, types.NewHandoffEvent(resp.AgentName, resp.HandoffTo, task))
			c.logger.Info("following handoff",
				zap.String("from", resp.AgentName),
				zap.String("to", resp.HandoffTo))

			resp = c.Invoke(ctx, target, task, budget)
			responses = append(responses, resp)
		}
	}
	return responses, events
}

// Parallel fans the selected agents out concurrently under a shared
// deadline. Agents beyond the parallel bound are dropped from the batch.
// Every agent in the batch gets a response: agents still running at the
// deadline are abandoned and get a timeout response.
func (c *Coordinator) Parallel(ctx context.Context, registry map[string]types.Agent, selected []string, query string) []types.AgentResponse {
	batch := selected
	if len(batch) > c.maxParallel {
		c.logger.Warn("parallel batch capped",
			zap.Int("selected", len(selected)),
			zap.Int("max", c.maxParallel))
		batch = batch[:c.maxParallel]
	}
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chans := make([]chan types.AgentResponse, len(batch))
	for i, name := range batch {
		chans[i] = make(chan types.AgentResponse, 1)
		agent, ok := registry[name]
		if !ok {
			chans[i] <- types.AgentResponse{
				AgentName: name,
				Success:   false,
				Error:     "agent not registered",
			}
			continue
		}
		go func(ch chan types.AgentResponse, a types.Agent) {
			ch <- c.Invoke(ctx, a, query, c.timeout)
		}(chans[i], agent)
	}

	responses := make([]types.AgentResponse, len(batch))
	for i, ch := range chans {
		// Prefer a result that is already in, even at the deadline.
		select {
		case responses[i] = <-ch:
			continue
		default:
		}
		select {
		case responses[i] = <-ch:
		case <-ctx.Done():
			responses[i] = types.AgentResponse{
				AgentName: batch[i],
				Success:   false,
				Error:     fmt.Sprintf("timeout after %s", c.timeout),
				Duration:  c.timeout,
			}
		}
	}
	return responses
}

func (c *Coordinator) record(resp types.AgentResponse) {
	status := "ok"
	switch {
	case resp.TimedOut():
		status = "timeout"
	case !resp.Success:
		status = "error"
	}
	c.collector.observe(resp.AgentName, status, resp.Duration)
}
