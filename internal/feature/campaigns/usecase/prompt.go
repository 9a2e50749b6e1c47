package usecase

import (
	"fmt"
	"strings"

	"marketer_backend/internal/feature/campaigns/domain/entity"
)

// DefaultTone は口調が指定されなかった場合に使います。
const DefaultTone = "professional"

// BuildDraftPrompt はLLMに渡す下書き生成プロンプトを組み立てます。
func BuildDraftPrompt(req entity.DraftRequest) string {
	tone := req.Tone
	if tone == "" {
		tone = DefaultTone
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short %s cold outreach email for a B2B marketing campaign.\n", tone)
	fmt.Fprintf(&b, "Product information:\n%s\n", strings.TrimSpace(req.ProductInfo))
	if req.CompanyName != "" {
		fmt.Fprintf(&b, "The target company is %s.\n", req.CompanyName)
	}
	if req.Industry != "" {
		fmt.Fprintf(&b, "The target industry is %s.\n", req.Industry)
	}
	b.WriteString("Use these template variables where they fit: {{firstName}}, {{lastName}}, {{companyName}}, {{title}}, {{industry}}, {{recentNews}}, {{senderName}}.\n")
	b.WriteString("Do not invent other variables. Keep the body under 150 words and sign off with {{senderName}}.\n")
	b.WriteString(`Respond with JSON only: {"subject": "...", "body": "..."}`)
	return b.String()
}
