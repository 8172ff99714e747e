package categorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeByRules_KnownMerchants(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		merchant string
		amount   float64
		want     Category
	}{
		{"IFD*PADARIA DO JOAO", 23.50, CategoryFood},
		{"POSTO SHELL COMBUSTIVEL", 150.00, CategoryTransport},
		{"SUPERMERCADO CONFIANCA", 310.00, CategoryFood},
		{"UBER TRIP", 18.90, CategoryTransport},
		{"DROGASIL FILIAL 42", 45.00, CategoryHealth},
		{"NETFLIX.COM", 39.90, CategoryEntertainment},
		{"CPFL ENERGIA", 210.00, CategoryUtilities},
		{"UDEMY COURSE", 27.90, CategoryEducation},
		{"RIACHUELO LOJA 12", 89.90, CategoryShopping},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, engine.CategorizeByRules(tc.merchant, tc.amount), "merchant %q", tc.merchant)
	}
}

func TestCategorizeByRules_ProcessorMarkerIgnoresAmount(t *testing.T) {
	engine := NewEngine()

	// The food-delivery processor marker decides regardless of amount.
	for _, amount := range []float64{0, 5, 150, 5000, -23.50} {
		assert.Equal(t, CategoryFood, engine.CategorizeByRules("IFD*RESTAURANTE", amount))
	}
}

func TestCategorizeByRules_CategoryOrderWins(t *testing.T) {
	engine := NewEngine()

	// "uber eats" matches a food pattern; transport's plain "uber" pattern is
	// never consulted because food is evaluated first.
	assert.Equal(t, CategoryFood, engine.CategorizeByRules("UBER EATS PEDIDO", 42.00))
	// "gas station" is claimed by transport before utilities sees "gas".
	assert.Equal(t, CategoryTransport, engine.CategorizeByRules("GAS STATION 7", 60.00))
}

func TestCategorizeByRules_LargeAmountHints(t *testing.T) {
	engine := NewEngine()

	// "imovel" matches no pattern; above the large-amount threshold it reads
	// as rent.
	assert.Equal(t, CategoryUtilities, engine.CategorizeByRules("IMOVEL XPTO", 2500.00))
	// Below the threshold the same merchant stays unresolved.
	assert.Equal(t, CategoryOther, engine.CategorizeByRules("IMOVEL XPTO", 900.00))
}

func TestCategorizeByRules_UnmatchedIsOther(t *testing.T) {
	engine := NewEngine()

	assert.Equal(t, CategoryOther, engine.CategorizeByRules("XYZQWK", 20.00))
	assert.Equal(t, CategoryOther, engine.CategorizeByRules("", 0))
	assert.Equal(t, CategoryOther, engine.CategorizeByRules("XYZQWK", math.NaN()))
}

func TestSuggestCategories_RanksByMatchCount(t *testing.T) {
	engine := NewEngine()

	// Two food patterns match, so food outranks single-pattern categories.
	suggestions := engine.SuggestCategories("RESTAURANTE PIZZARIA BELLA")
	assert.NotEmpty(t, suggestions)
	assert.Equal(t, CategoryFood, suggestions[0])
}

func TestSuggestCategories_TieBreaksByDeclaredOrder(t *testing.T) {
	engine := NewEngine()

	// "mercado livre" matches one food pattern and one shopping pattern;
	// the tie resolves in declared category order.
	suggestions := engine.SuggestCategories("MERCADO LIVRE")
	assert.Equal(t, []Category{CategoryFood, CategoryShopping}, suggestions)
}

func TestSuggestCategories_LimitsToThree(t *testing.T) {
	engine := NewEngine()

	suggestions := engine.SuggestCategories("MERCADO LIVRE RESTAURANTE FARMACIA POSTO CINEMA")
	assert.LessOrEqual(t, len(suggestions), 3)
}

func TestSuggestCategories_NoMatches(t *testing.T) {
	engine := NewEngine()

	assert.Empty(t, engine.SuggestCategories("XYZQWK"))
}
