package categorizer

import (
	"math"
	"strings"
)

// Amount bands for the heuristic fallback, in statement currency units.
const (
	smallAmountMax  = 10
	largeAmountMin  = 500
	mediumAmountMin = 50
	mediumAmountMax = 200
)

// companySuffixes are Brazilian company-form tokens whose presence suggests a
// generic storefront rather than a service.
var companySuffixes = []string{"ltda", "me", "eireli", "sa"}

// processorTokens are the short payment-processor markers that show up in
// very small purchases, which are almost always food.
var processorTokens = []string{"ec", "mp", "ifd", "dl"}

// CategorizeWithEnhancedRules is the fallback chain for merchants the primary
// rules could not place. It never overrides a confident CategorizeByRules
// result; past that it widens to generic keyword tables, then amount banding,
// then structural hints, and finally CategoryOther. Pure and deterministic:
// no network, no randomness, bounded time.
func (e *Engine) CategorizeWithEnhancedRules(merchant string, amount float64, description string) Category {
	if category := e.CategorizeByRules(merchant, amount); category != CategoryOther {
		return category
	}

	merchantLower := strings.ToLower(merchant)
	combined := strings.TrimSpace(merchantLower + " " + strings.ToLower(description))

	for _, rule := range e.enhanced {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(combined) {
				return rule.category
			}
		}
	}

	if math.IsNaN(amount) {
		amount = 0
	}

	switch {
	case amount < smallAmountMax:
		// Snack-sized amounts: processor-tagged ones are food, the rest are
		// parking, tolls and fares.
		if containsAny(combined, processorTokens...) {
			return CategoryFood
		}
		return CategoryTransport
	case amount > largeAmountMin:
		if containsAny(combined, "pagamento", "taxa", "conta", "servico") {
			return CategoryUtilities
		}
		return CategoryShopping
	case amount >= mediumAmountMin && amount <= mediumAmountMax:
		return CategoryShopping
	}

	if strings.ContainsAny(merchantLower, ".@") || strings.Contains(merchantLower, "www") {
		return CategoryUtilities
	}
	if isSingleAllCapsWord(merchant) {
		return CategoryShopping
	}
	if containsWordAny(merchantLower, companySuffixes...) {
		return CategoryShopping
	}

	return CategoryOther
}

// isSingleAllCapsWord reports whether the merchant is one upper-case token,
// the shape of an abbreviated store code on a statement.
func isSingleAllCapsWord(merchant string) bool {
	trimmed := strings.TrimSpace(merchant)
	if trimmed == "" || len(strings.Fields(trimmed)) != 1 {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func containsWordAny(text string, words ...string) bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	for _, field := range fields {
		for _, word := range words {
			if field == word {
				return true
			}
		}
	}
	return false
}
