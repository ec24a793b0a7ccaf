package vertical

import (
	"context"
	"fmt"
	"strings"

	"github.com/ScientiaCapital/robot-brain/supervisor"
	"github.com/ScientiaCapital/robot-brain/types"
)

// TradingSupervisor runs a trading desk of analyst agents.
type TradingSupervisor struct {
	*Supervisor
}

// NewTrading wraps inner as a trading vertical.
func NewTrading(inner *supervisor.Supervisor) *TradingSupervisor {
	return &TradingSupervisor{Supervisor: Wrap(Trading, inner)}
}

// StockAnalysis is the desk's verdict on one symbol.
type StockAnalysis struct {
	Symbol            string         `json:"symbol"`
	MarketSentiment   string         `json:"market_sentiment"`
	TechnicalAnalysis string         `json:"technical_analysis"`
	RiskAssessment    map[string]any `json:"risk_assessment"`
	Recommendation    string         `json:"recommendation"`
	Confidence        float64        `json:"confidence"`
	Result            *types.SupervisorResult `json:"-"`
}

// AnalyzeStock fans the desk out on symbol and distills the responses
// into a recommendation: BUY when the desk reads bullish, HOLD otherwise.
func (s *TradingSupervisor) AnalyzeStock(ctx context.Context, symbol string) *StockAnalysis {
	query := fmt.Sprintf("Analyze %s stock for trading opportunities", symbol)
	result := s.Execute(ctx, query, supervisor.ExecuteOptions{Parallel: true})

	analysis := &StockAnalysis{
		Symbol:         symbol,
		Recommendation: "HOLD",
		Result:         result,
	}
	if v, ok := result.Analysis["market_sentiment"].(string); ok {
		analysis.MarketSentiment = v
	}
	if v, ok := result.Analysis["technical_analysis"].(string); ok {
		analysis.TechnicalAnalysis = v
	}
	if v, ok := result.Analysis["risk_assessment"].(map[string]any); ok {
		analysis.RiskAssessment = v
	}
	if v, ok := result.Analysis["confidence"].(float64); ok {
		analysis.Confidence = v
	}
	if strings.Contains(strings.ToLower(strings.Join(result.Responses, " ")), "bullish") {
		analysis.Recommendation = "BUY"
	}
	return analysis
}
