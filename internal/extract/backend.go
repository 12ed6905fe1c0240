package extract

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/document"
	"github.com/sells-group/prospect-cli/pkg/anthropic"
	"github.com/sells-group/prospect-cli/pkg/openai"
)

// Completer submits one extraction request to a model backend and returns the
// raw response text. Image payloads become a single user message carrying the
// instruction and the image; text payloads become a system instruction plus
// the raw text as the user message.
type Completer interface {
	Complete(ctx context.Context, prompt string, doc *document.Payload) (string, error)
}

// OpenAIBackend completes requests against an OpenAI-compatible endpoint with
// a native structured-output contract.
type OpenAIBackend struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAIBackend creates an OpenAIBackend. model may be empty to use the
// client default.
func NewOpenAIBackend(client openai.Client, model string, temperature float64) *OpenAIBackend {
	return &OpenAIBackend{client: client, model: model, temperature: temperature}
}

func (b *OpenAIBackend) Complete(ctx context.Context, prompt string, doc *document.Payload) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: &b.temperature,
		ResponseFormat: &openai.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &openai.JSONSchema{
				Name:   "name_list",
				Strict: true,
				Schema: NamesJSONSchema(),
			},
		},
	}

	if doc.Kind == document.KindImage {
		req.Messages = []openai.Message{{
			Role: "user",
			Parts: []openai.ContentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &openai.ImageURL{
					URL: openai.ImageDataURI(doc.ImageSubtype, doc.ImageB64),
				}},
			},
		}}
	} else {
		req.Messages = []openai.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: doc.Text},
		}
	}

	resp, err := b.client.ChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("extract: no choices in model response")
	}
	return resp.Choices[0].Message.Content, nil
}

// AnthropicBackend completes requests against the Anthropic API. The API has
// no schema-enforced output mode for this call shape, so the schema is
// appended to the instruction as a prompt-only constraint; the calling
// contract is otherwise identical to OpenAIBackend.
type AnthropicBackend struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicBackend creates an AnthropicBackend.
func NewAnthropicBackend(client anthropic.Client, model string, maxTokens int64) *AnthropicBackend {
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnthropicBackend{client: client, model: model, maxTokens: maxTokens}
}

func (b *AnthropicBackend) Complete(ctx context.Context, prompt string, doc *document.Payload) (string, error) {
	instruction := prompt + "\n\nRespond with a single JSON object, no surrounding prose, that validates against this JSON schema:\n" + mustJSON(NamesJSONSchema())

	req := anthropic.MessageRequest{
		Model:     b.model,
		MaxTokens: b.maxTokens,
	}

	if doc.Kind == document.KindImage {
		req.Messages = []anthropic.Message{{
			Role:    "user",
			Content: instruction,
			Image: &anthropic.Image{
				MediaType: "image/" + doc.ImageSubtype,
				Data:      doc.ImageB64,
			},
		}}
	} else {
		req.System = instruction
		req.Messages = []anthropic.Message{{Role: "user", Content: doc.Text}}
	}

	resp, err := b.client.CreateMessage(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
