package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	FallbackOnError = "Premium quality product available at the best market price. Limited stock!"
	FallbackOnEmpty = "Quality product available at a great price."

	promptTemplate = `Generate a short, professional, and catchy 1-2 sentence description for a second-hand %s named "%s" in "%s" condition for a shop catalog. Mention that it's a great deal. Use simple English.`
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Generator writes catalog blurbs with Gemini. It never fails: any error
// yields a fixed fallback sentence.
type Generator struct {
	client  *genai.Client
	model   contentGenerator
	timeout time.Duration
}

func NewGenerator(ctx context.Context, apiKey, model string, timeout time.Duration) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Generator{
		client:  client,
		model:   client.GenerativeModel(model),
		timeout: timeout,
	}, nil
}

func (g *Generator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *Generator) GenerateDescription(ctx context.Context, name string, condition domain.Condition, category domain.Category) string {
	start := time.Now()
	defer func() {
		metrics.DescriptionLatency.Observe(time.Since(start).Seconds())
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(promptTemplate, category, name, condition)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Error("gemini generate content failed", "product", name, "error", err)
		return FallbackOnError
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		logger.Warn("gemini returned no text", "product", name)
		return FallbackOnEmpty
	}

	return text
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}

// Static is used when no API key is configured.
type Static struct{}

func (Static) GenerateDescription(_ context.Context, name string, _ domain.Condition, _ domain.Category) string {
	logger.Debug("description generator not configured, using fallback", "product", name)
	return FallbackOnError
}
