package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"search-system/internal/errs"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string, timeout time.Duration) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	)

	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client: client,
		model:  model,
	}, nil
}

func (c *OpenAIClient) Classify(ctx context.Context, query string) (Intent, error) {
	prompt := fmt.Sprintf(
		"Determine whether the following query is about an event or a location. "+
			"Respond with only one word: 'event' or 'location'. Query: '%s'",
		query,
	)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("classify query: %w", err)
	}

	return ParseIntent(raw)
}

func (c *OpenAIClient) EventCategory(ctx context.Context, query string) (string, error) {
	list := strings.Join(EventCategories, ", ")
	prompt := fmt.Sprintf(
		"Determine which of the following topics the query is about: %s. "+
			"Respond with only one word from that list. Query: '%s'",
		list, query,
	)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("classify event category: %w", err)
	}

	return ParseEventCategory(raw)
}

func (c *OpenAIClient) Describe(ctx context.Context, name, address string) (string, error) {
	prompt := fmt.Sprintf(
		"Provide a 350-400 character description for %s, located at %s. "+
			"Respond with the description only.",
		name, address,
	)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate place description: %w", err)
	}

	return strings.TrimSpace(raw), nil
}

func (c *OpenAIClient) Offerings(ctx context.Context, name, address string) (map[string]string, error) {
	prompt := fmt.Sprintf(
		"Using current web search results, list up to three representative offerings "+
			"and their prices for %s, located at %s. Respond with one offering per line "+
			"in the form 'Offering: Price'. Use 'NA' when the price is unknown.",
		name, address,
	)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate offerings: %w", err)
	}

	return ParseOfferings(raw), nil
}

// complete issues a single-shot chat completion and returns the text of the
// first choice. A 429 from the provider is surfaced as RESOURCE_EXHAUSTED so
// callers can apply the degradation policy that fits their field.
func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) && apierr.StatusCode == http.StatusTooManyRequests {
			return "", errs.Wrap(errs.CodeResourceExhausted, "model quota exhausted", err)
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
