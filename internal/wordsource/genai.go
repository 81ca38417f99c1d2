package wordsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel answers the daily word prompt.
const DefaultModel = "gemini-3-flash-preview"

// ErrMalformed marks a response that is not {"word": "<string>"}.
var ErrMalformed = errors.New("malformed word response")

// GenAI asks Gemini for a themed word, constrained to a JSON schema.
type GenAI struct {
	client *genai.Client
	model  string
}

// GenAIConfig configures the Gemini client. BaseURL is only set in tests.
type GenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewGenAI creates a Gemini-backed word source.
func NewGenAI(ctx context.Context, cfg GenAIConfig) (*GenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAI{client: client, model: cfg.Model}, nil
}

func (g *GenAI) Name() string { return "genai" }

func prompt(seed uint32) string {
	return fmt.Sprintf("Today's seed is %d. Generate a common English word related to spy, hacker, or intelligence theme. "+
		"The word length should be between 4 and 7 letters. "+
		"Return only the word in uppercase.", seed)
}

var wordSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"word": {
			Type:        genai.TypeString,
			Description: "A spy-themed English word, 4-7 chars.",
		},
	},
	Required: []string{"word"},
}

// Word returns the raw word field; callers normalize it.
func (g *GenAI) Word(ctx context.Context, seed uint32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(seed)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   wordSchema,
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return ParseWord(resp.Text())
}

// ParseWord extracts the word field from a JSON response body.
func ParseWord(text string) (string, error) {
	var body struct {
		Word *string `json:"word"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if body.Word == nil {
		return "", fmt.Errorf("%w: missing word", ErrMalformed)
	}
	return *body.Word, nil
}
