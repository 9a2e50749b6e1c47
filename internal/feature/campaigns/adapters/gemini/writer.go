// Package gemini はGoogle Gemini APIを使用したメール下書き生成クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"marketer_backend/internal/feature/campaigns/domain/entity"
	"marketer_backend/internal/feature/campaigns/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// contentGenerator は*genai.Modelsのうち使用するメソッドだけを切り出したものです。
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Writer はGoogle Gemini APIを使用してメールの件名・本文テンプレートを生成します。
type Writer struct {
	models contentGenerator
	model  string
}

// WriterがEmailWriterを実装していることをコンパイル時に検証します。
var _ usecase.EmailWriter = (*Writer)(nil)

// NewWriter はGemini APIキーでWriterの新しいインスタンスを生成します。
// apiKeyが空の場合、genaiは環境変数 GOOGLE_API_KEY / GEMINI_API_KEY を参照します。
func NewWriter(ctx context.Context, apiKey, model string) (*Writer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Writer{models: client.Models, model: model}, nil
}

// DraftEmail はプロンプトからJSON形式の下書きを生成して返します。
func (w *Writer) DraftEmail(ctx context.Context, prompt string) (*entity.Draft, error) {
	resp, err := w.models.GenerateContent(ctx, w.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	return parseDraft(resp.Text())
}

// parseDraft はモデル出力をDraftに変換します。```json フェンスで囲まれていても受け付けます。
func parseDraft(text string) (*entity.Draft, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var d entity.Draft
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &d); err != nil {
		return nil, fmt.Errorf("decode gemini draft: %w", err)
	}
	return &d, nil
}
