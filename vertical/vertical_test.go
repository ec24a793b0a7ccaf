package vertical

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/robot-brain/supervisor"
	"github.com/ScientiaCapital/robot-brain/types"
)

func sayAgent(name, text string) types.Agent {
	return types.AgentFunc(name, func(_ context.Context, _ string) (string, error) {
		return text, nil
	})
}

func newInner(t *testing.T, agents ...types.Agent) *supervisor.Supervisor {
	t.Helper()
	s, err := supervisor.New(types.DefaultSupervisorConfig("DeskBot", 2*time.Second), agents)
	require.NoError(t, err)
	return s
}

func TestExecute_AnnotatesSummaryAndConfidence(t *testing.T) {
	inner := newInner(t,
		sayAgent("MarketAnalyst", "first take"),
		sayAgent("QuantResearcher", "second take"),
		sayAgent("RiskManager", "third take"),
	)
	s := Wrap(Trading, inner)

	result := s.Execute(context.Background(), "analyze the stock market risk", supervisor.ExecuteOptions{})
	require.NotNil(t, result.Analysis)
	assert.Equal(t, "first take second take", result.Analysis["summary"])
	assert.Equal(t, 0.8, result.Analysis["confidence"])
}

func TestExecute_LowConfidenceWithFewResponses(t *testing.T) {
	inner := newInner(t, sayAgent("MarketAnalyst", "only take"))
	s := Wrap(Trading, inner)

	result := s.Execute(context.Background(), "analyze the market", supervisor.ExecuteOptions{})
	assert.Equal(t, 0.6, result.Analysis["confidence"])
}

func TestExecute_TradingSentimentScan(t *testing.T) {
	inner := newInner(t,
		sayAgent("MarketAnalyst", "The chart looks Bullish to me"),
		sayAgent("QuantResearcher", "indicators show it is oversold"),
	)
	s := Wrap(Trading, inner)

	result := s.Execute(context.Background(), "analyze the stock", supervisor.ExecuteOptions{})
	assert.Equal(t, "bullish", result.Analysis["market_sentiment"])
	assert.Equal(t, "RSI indicates oversold", result.Analysis["technical_analysis"])
	assert.Equal(t, map[string]any{"position_size": 2}, result.Analysis["risk_assessment"])
}

func TestExecute_NonTradingSkipsSentiment(t *testing.T) {
	inner := newInner(t, sayAgent("PayrollProcessor", "payroll done"))
	s := Wrap(Payroll, inner)

	result := s.Execute(context.Background(), "run the payroll", supervisor.ExecuteOptions{})
	assert.NotContains(t, result.Analysis, "market_sentiment")
	assert.Contains(t, result.Analysis, "summary")
}

func TestExecute_StatusPassesThrough(t *testing.T) {
	inner := newInner(t) // no agents registered
	s := Wrap(Trading, inner)

	result := s.Execute(context.Background(), "analyze", supervisor.ExecuteOptions{})
	assert.Equal(t, types.StatusFailure, result.Status)
	assert.Contains(t, result.Analysis, "summary")
}

func TestAnalyzeStock_BuyOnBullish(t *testing.T) {
	inner := newInner(t,
		sayAgent("MarketAnalyst", "AAPL looks bullish this quarter"),
		sayAgent("QuantResearcher", "momentum positive"),
	)
	s := NewTrading(inner)

	analysis := s.AnalyzeStock(context.Background(), "AAPL")
	assert.Equal(t, "AAPL", analysis.Symbol)
	assert.Equal(t, "BUY", analysis.Recommendation)
	assert.Equal(t, "bullish", analysis.MarketSentiment)
	assert.Equal(t, map[string]any{"position_size": 2}, analysis.RiskAssessment)
}

func TestAnalyzeStock_HoldWithoutBullish(t *testing.T) {
	inner := newInner(t, sayAgent("MarketAnalyst", "sideways chop, nothing to see"))
	s := NewTrading(inner)

	analysis := s.AnalyzeStock(context.Background(), "MSFT")
	assert.Equal(t, "HOLD", analysis.Recommendation)
	assert.Equal(t, "neutral", analysis.MarketSentiment)
}

func TestProcessPayroll_OvertimeMath(t *testing.T) {
	inner := newInner(t,
		sayAgent("PayrollProcessor", "processed"),
		sayAgent("TaxCalculator", "taxed"),
		sayAgent("ComplianceAgent", "compliant"),
	)
	s := NewPayroll(inner)

	run := s.ProcessPayroll(context.Background(), []Employee{
		{ID: "e1", Name: "Sam", HoursWorked: 45, HourlyRate: 10},
		{ID: "e2", Name: "Kim", HoursWorked: 38, HourlyRate: 20},
	}, "2026-08")

	assert.Equal(t, types.StatusSuccess, run.Status)
	assert.Equal(t, "2026-08", run.PayPeriod)
	assert.Equal(t, []string{"PayrollProcessor", "TaxCalculator", "ComplianceAgent"}, run.WorkflowSteps)

	require.Len(t, run.Employees, 2)
	assert.InDelta(t, 475.0, run.Employees[0].GrossPay, 1e-9)
	assert.InDelta(t, 5.0, run.Employees[0].OvertimeHours, 1e-9)
	assert.InDelta(t, 760.0, run.Employees[1].GrossPay, 1e-9)
	assert.Zero(t, run.Employees[1].OvertimeHours)
}

func TestProcessPayroll_EmptyRoster(t *testing.T) {
	inner := newInner(t, sayAgent("PayrollProcessor", "processed"))
	s := NewPayroll(inner)

	run := s.ProcessPayroll(context.Background(), nil, "2026-08")
	assert.Empty(t, run.Employees)
	assert.NotNil(t, run.Result)
}
