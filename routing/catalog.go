package routing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkillCategory maps a keyword set to an ordered list of candidate agents.
type SkillCategory struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Agents   []string `json:"agents" yaml:"agents"`
}

// Catalog is an ordered list of skill categories. Order matters: selection
// preserves first-seen order across categories.
type Catalog []SkillCategory

// CollaborationRule forces a multi-agent team for a domain. When any
// indicator matches the query, the rule's agents are appended to the
// selection (registered, not yet selected), and MaxAgents > 0 then caps
// the selection as it stands, before any later rule is applied.
type CollaborationRule struct {
	Name       string   `json:"name" yaml:"name"`
	Indicators []string `json:"indicators" yaml:"indicators"`
	Agents     []string `json:"agents" yaml:"agents"`
	MaxAgents  int      `json:"max_agents,omitempty" yaml:"max_agents,omitempty"`
}

// DefaultCatalog returns the built-in skill tables.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:     "mathematics",
			Keywords: []string{"calculate", "compound interest", "math", "2 + 2", "+", "-", "*", "/"},
			Agents:   []string{"RoboNerd"},
		},
		{
			Name:     "creative",
			Keywords: []string{"story", "exciting", "treasure hunt", "joke", "treasure", "perform"},
			Agents:   []string{"RoboDrama", "RoboPirate", "RoboFriend"},
		},
		{
			Name:     "wisdom",
			Keywords: []string{"meditate", "wisdom", "zen"},
			Agents:   []string{"RoboZen"},
		},
		{
			Name:     "social",
			Keywords: []string{"encourage", "friend", "help"},
			Agents:   []string{"RoboFriend"},
		},
		{
			Name:     "analysis",
			Keywords: []string{"research", "analyze", "study"},
			Agents:   []string{"RoboNerd", "MarketAnalyst", "QuantResearcher"},
		},
		{
			Name:     "trading",
			Keywords: []string{"aapl", "stock", "trading opportunity", "market", "trade", "trading"},
			Agents:   []string{"MarketAnalyst", "QuantResearcher", "RiskManager"},
		},
		{
			Name:     "risk",
			Keywords: []string{"risk", "assessment", "evaluation"},
			Agents:   []string{"RiskManager"},
		},
		{
			Name:     "hr_payroll",
			Keywords: []string{"payroll", "tax", "compliance", "employee"},
			Agents:   []string{"PayrollProcessor", "TaxCalculator", "ComplianceAgent"},
		},
	}
}

// DefaultCollaborationRules returns the built-in multi-agent heuristics.
func DefaultCollaborationRules() []CollaborationRule {
	return []CollaborationRule{
		{
			Name:       "creative_team",
			Indicators: []string{"story", "exciting", "treasure hunt", "creative", "imagine"},
			Agents:     []string{"RoboDrama", "RoboPirate", "RoboFriend"},
			MaxAgents:  2,
		},
		{
			Name:       "trading_desk",
			Indicators: []string{"analyze", "aapl", "stock", "trading opportunity"},
			Agents:     []string{"MarketAnalyst", "QuantResearcher"},
		},
	}
}

// Validate checks the catalog for structurally broken categories.
func (c Catalog) Validate() error {
	for i, cat := range c {
		if cat.Name == "" {
			return fmt.Errorf("category %d: name is required", i)
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q: at least one keyword is required", cat.Name)
		}
		if len(cat.Agents) == 0 {
			return fmt.Errorf("category %q: at least one candidate agent is required", cat.Name)
		}
	}
	return nil
}

// ParseCatalog decodes a catalog from YAML.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}
