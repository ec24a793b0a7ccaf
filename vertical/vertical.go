package vertical

import (
	"context"
	"strings"

	"github.com/ScientiaCapital/robot-brain/supervisor"
	"github.com/ScientiaCapital/robot-brain/types"
)

// Vertical names.
const (
	Trading = "trading"
	Payroll = "payroll"
)

// Supervisor wraps a plain supervisor with domain post-processing.
type Supervisor struct {
	inner    *supervisor.Supervisor
	vertical string
}

// Wrap builds a vertical supervisor over inner.
func Wrap(vertical string, inner *supervisor.Supervisor) *Supervisor {
	return &Supervisor{inner: inner, vertical: vertical}
}

// Vertical returns the vertical's name.
func (s *Supervisor) Vertical() string { return s.vertical }

// Inner returns the wrapped supervisor.
func (s *Supervisor) Inner() *supervisor.Supervisor { return s.inner }

// Execute delegates to the inner supervisor, then annotates the result's
// Analysis. Status, responses, and errors pass through untouched.
func (s *Supervisor) Execute(ctx context.Context, query string, opts supervisor.ExecuteOptions) *types.SupervisorResult {
	result := s.inner.Execute(ctx, query, opts)
	s.annotate(result)
	return result
}

func (s *Supervisor) annotate(result *types.SupervisorResult) {
	if result.Analysis == nil {
		result.Analysis = make(map[string]any)
	}

	summary := result.Responses
	if len(summary) > 2 {
		summary = summary[:2]
	}
	result.Analysis["summary"] = strings.Join(summary, " ")

	confidence := 0.6
	if len(result.Responses) > 2 {
		confidence = 0.8
	}
	result.Analysis["confidence"] = confidence

	if s.vertical == Trading {
		combined := strings.ToLower(strings.Join(result.Responses, " "))

		sentiment := "neutral"
		if strings.Contains(combined, "bullish") {
			sentiment = "bullish"
		}
		result.Analysis["market_sentiment"] = sentiment

		technical := "neutral"
		if strings.Contains(combined, "oversold") {
			technical = "RSI indicates oversold"
		}
		result.Analysis["technical_analysis"] = technical

		result.Analysis["risk_assessment"] = map[string]any{"position_size": 2}
	}
}
