package categorizer

import (
	"math"
	"regexp"
	"strings"
)

// largeAmountThreshold is the amount above which an unmatched merchant is
// checked for rent- and tuition-like keywords before falling through to
// CategoryOther.
const largeAmountThreshold = 1000

type compiledRule struct {
	category Category
	patterns []*regexp.Regexp
}

// Engine is a compiled, immutable rule engine. Construct one with NewEngine
// and share it freely: it holds no mutable state, so concurrent use needs no
// coordination.
type Engine struct {
	rules    []compiledRule
	enhanced []compiledRule
}

// NewEngine compiles the built-in rule tables.
func NewEngine() *Engine {
	return &Engine{
		rules:    compileRules(categoryRules),
		enhanced: compileRules(enhancedRules),
	}
}

func compileRules(rules []CategoryRule) []compiledRule {
	compiled := make([]compiledRule, len(rules))
	for i, rule := range rules {
		patterns := make([]*regexp.Regexp, len(rule.Patterns))
		for j, pattern := range rule.Patterns {
			patterns[j] = regexp.MustCompile(`(?i)` + pattern)
		}
		compiled[i] = compiledRule{category: rule.Category, patterns: patterns}
	}
	return compiled
}

// CategorizeByRules maps a raw merchant string and amount to a category.
// Categories are evaluated in CategoryOrder and the first pattern match wins.
// Unmatched merchants with a large amount are resolved by rent/tuition
// keywords; everything else is CategoryOther. Total over all inputs.
func (e *Engine) CategorizeByRules(merchant string, amount float64) Category {
	merchantLower := strings.ToLower(merchant)

	for _, rule := range e.rules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(merchantLower) {
				return rule.category
			}
		}
	}

	if math.IsNaN(amount) {
		amount = 0
	}

	if amount > largeAmountThreshold {
		if containsAny(merchantLower, "imovel", "aluguel", "rent") {
			return CategoryUtilities
		}
		if containsAny(merchantLower, "escola", "faculdade", "university") {
			return CategoryEducation
		}
	}

	return CategoryOther
}

// SuggestCategories scores every category by the count of patterns matching
// the merchant and returns up to three, best first, ties broken by declared
// category order. This is a frequency scorer for advisory UIs only; it is
// deliberately a different algorithm from CategorizeByRules and must not be
// used for assignment.
func (e *Engine) SuggestCategories(merchant string) []Category {
	merchantLower := strings.ToLower(merchant)

	type scored struct {
		category Category
		matches  int
	}
	var suggestions []scored
	for _, rule := range e.rules {
		matches := 0
		for _, pattern := range rule.patterns {
			if pattern.MatchString(merchantLower) {
				matches++
			}
		}
		if matches > 0 {
			suggestions = append(suggestions, scored{rule.category, matches})
		}
	}

	// Insertion sort keeps the declared-order tie break stable.
	for i := 1; i < len(suggestions); i++ {
		for j := i; j > 0 && suggestions[j].matches > suggestions[j-1].matches; j-- {
			suggestions[j], suggestions[j-1] = suggestions[j-1], suggestions[j]
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	result := make([]Category, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.category
	}
	return result
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
