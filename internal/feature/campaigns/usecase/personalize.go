package usecase

import (
	"strings"

	"marketer_backend/internal/feature/campaigns/domain/entity"
)

// Personalize はテンプレートの差し込み変数を送信先の値で置き換えます。
// 対応する変数は {{firstName}} {{lastName}} {{companyName}} {{title}} {{industry}}
// {{recentNews}} {{senderName}} です。未知の変数はそのまま残します。
// {{recentNews}} には最新ニュースの先頭1件が入ります。
func Personalize(template string, r entity.Recipient) string {
	news := ""
	if len(r.RecentNews) > 0 {
		news = r.RecentNews[0]
	}
	return strings.NewReplacer(
		"{{firstName}}", r.FirstName,
		"{{lastName}}", r.LastName,
		"{{companyName}}", r.CompanyName,
		"{{title}}", r.Title,
		"{{industry}}", r.Industry,
		"{{recentNews}}", news,
		"{{senderName}}", r.SenderName,
	).Replace(template)
}
