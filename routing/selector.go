package routing

import (
	"strings"

	"go.uber.org/zap"
)

// Selector picks agents for a query using a catalog plus collaboration
// rules. The zero Selector is not usable; construct with NewSelector.
type Selector struct {
	catalog Catalog
	rules   []CollaborationRule
	logger  *zap.Logger
}

// NewSelector builds a selector. A nil catalog falls back to
// DefaultCatalog, nil rules to DefaultCollaborationRules, and a nil logger
// to a no-op logger.
func NewSelector(catalog Catalog, rules []CollaborationRule, logger *zap.Logger) *Selector {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if rules == nil {
		rules = DefaultCollaborationRules()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		catalog: catalog,
		rules:   rules,
		logger:  logger.With(zap.String("component", "selector")),
	}
}

// Select returns the agents that should handle query, in first-seen catalog
// order, restricted to the available set. When no category matches, the
// first available agent is returned so a query is never dropped on the
// floor. An empty available set yields an empty selection.
func (s *Selector) Select(query string, available []string) []string {
	if len(available) == 0 {
		return nil
	}

	registered := make(map[string]bool, len(available))
	for _, name := range available {
		registered[name] = true
	}

	lower := strings.ToLower(query)
	seen := make(map[string]bool)
	var selected []string

	for _, cat := range s.catalog {
		if !matchesAny(lower, cat.Keywords) {
			continue
		}
		for _, name := range cat.Agents {
			if registered[name] && !seen[name] {
				seen[name] = true
				selected = append(selected, name)
			}
		}
	}

	selected = s.applyRules(lower, selected, seen, registered)

	if len(selected) == 0 {
		selected = []string{available[0]}
	}

	s.logger.Debug("agents selected",
		zap.String("query", query),
		zap.Strings("agents", selected))
	return selected
}

// applyRules processes the rules in order. A matching rule appends its
// missing agents, then enforces its own cap right away, so a later rule
// can still add its team: a query matching both the creative and trading
// rules keeps the capped creative pair and the full analyst pair.
func (s *Selector) applyRules(lower string, selected []string, seen, registered map[string]bool) []string {
	for _, rule := range s.rules {
		if !matchesAny(lower, rule.Indicators) {
			continue
		}
		for _, name := range rule.Agents {
			if registered[name] && !seen[name] {
				seen[name] = true
				selected = append(selected, name)
			}
		}
		if rule.MaxAgents > 0 && len(selected) > rule.MaxAgents {
			for _, name := range selected[rule.MaxAgents:] {
				delete(seen, name)
			}
			selected = selected[:rule.MaxAgents]
		}
	}
	return selected
}

func matchesAny(lower string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
