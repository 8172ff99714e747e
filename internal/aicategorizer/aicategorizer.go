package aicategorizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// Categorizer suggests a category for an expense using an external model.
// Implementations must return ErrUnrecognizedCategory (or wrap it) when the
// model answers with something outside the known category set, callers fall
// back to the rule engine in that case.
type Categorizer interface {
	Categorize(ctx context.Context, merchant string, amount float64, description string) (categorizer.Category, error)
}

var ErrUnrecognizedCategory = fmt.Errorf("model returned an unrecognized category")

// GenAICategorizer asks a Gemini model for a single category label.
//
// Credentials are picked up from the environment:
//   - GOOGLE_GENAI_USE_VERTEXAI=True -> Vertex AI
//   - GOOGLE_CLOUD_PROJECT / GOOGLE_CLOUD_LOCATION
//   - GEMINI_API_KEY for the Gemini developer API
type GenAICategorizer struct {
	client *genai.Client
	model  string
}

func NewGenAICategorizer(ctx context.Context, model string) (*GenAICategorizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GenAICategorizer{client: client, model: model}, nil
}

func (c *GenAICategorizer) Categorize(ctx context.Context, merchant string, amount float64, description string) (categorizer.Category, error) {
	prompt := buildPrompt(merchant, amount, description)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return ParseModelAnswer(raw)
}

func buildPrompt(merchant string, amount float64, description string) string {
	var b strings.Builder
	b.WriteString("Classify the following expense into exactly one category.\n")
	b.WriteString("Allowed categories: ")
	for i, cat := range categorizer.AllCategories {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(cat))
	}
	b.WriteString(".\n")
	b.WriteString("Answer with the category name only, lowercase, no punctuation.\n")
	b.WriteString("Do NOT use Markdown.\n\n")
	fmt.Fprintf(&b, "merchant: %s\n", merchant)
	fmt.Fprintf(&b, "amount: %.2f\n", amount)
	if description != "" {
		fmt.Fprintf(&b, "description: %s\n", description)
	}
	return b.String()
}

// ParseModelAnswer maps a raw model answer to a category. Markdown fences and
// surrounding noise are stripped first since models routinely ignore format
// instructions.
func ParseModelAnswer(raw string) (categorizer.Category, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, ".\"'")

	cat := categorizer.Category(s)
	if !cat.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedCategory, raw)
	}
	return cat, nil
}
