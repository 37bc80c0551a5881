package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GenerateRequest は1回分の生成リクエスト。Schema があればJSONモードで呼ぶ。
type GenerateRequest struct {
	Prompt            string
	SystemInstruction string
	Schema            *genai.Schema
}

// Generator は生成AIへの1回の呼び出しを抽象化します (テストでは差し替える)
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GenAIGenerator は Gemini API (google.golang.org/genai) を使う Generator
type GenAIGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGenAIGenerator はAPIキーからクライアントを作成します
func NewGenAIGenerator(ctx context.Context, apiKey, model string, timeout time.Duration) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIGenerator{client: client, model: model, timeout: timeout}, nil
}

// Generate はテキストを生成します。タイムアウトを超えた場合はエラー (リトライはしない)。
func (g *GenAIGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cfg := &genai.GenerateContentConfig{}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", g.model, err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// disabledGenerator はAPIキーが無いときに使う。常に ErrNotConfigured を返す。
type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, GenerateRequest) (string, error) {
	return "", ErrNotConfigured
}

// NewGenerator はAPIキーがあれば GenAIGenerator、無ければ常に失敗する Generator を返します
func NewGenerator(ctx context.Context, apiKey, model string, timeout time.Duration) (Generator, error) {
	if apiKey == "" {
		return disabledGenerator{}, nil
	}
	return NewGenAIGenerator(ctx, apiKey, model, timeout)
}
