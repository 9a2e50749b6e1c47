// Package entity はresearchフィーチャーのドメインモデルを定義します。
package entity

// Search categories understood by the search provider.
const (
	CategoryGeneral = "general"
	CategoryNews    = "news"
)

// SearchOptions は検索クエリに付与するフィルタ条件です。
// ゼロ値のフィールドはリクエストに含めません。
type SearchOptions struct {
	Categories []string // トピックタグ（"general", "news" など）
	Engines    []string // 利用するバックエンドエンジン名
	Language   string   // ロケールコード（例: "en"）
	TimeRange  string   // "day" | "week" | "month" | "year"
	SafeSearch *int     // セーフサーチのレベル（nilなら未指定）
	Format     string   // レスポンス形式（空なら "json"）
}

// SearchResult は検索プロバイダーから返された1件の結果を表します。
type SearchResult struct {
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Content        string   `json:"content"`
	SourceEngine   string   `json:"sourceEngine"`
	RelevanceScore *float64 `json:"relevanceScore,omitempty"`
}
