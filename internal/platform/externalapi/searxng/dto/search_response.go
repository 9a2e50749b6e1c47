// Package dto はSearXNG APIのレスポンス形式を定義します。
package dto

// SearchResponse is the JSON body of GET /search?format=json.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// SearchResult is one entry of SearchResponse.Results. Any field may be absent.
type SearchResult struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Content string   `json:"content"`
	Engine  string   `json:"engine"`
	Score   *float64 `json:"score"`
}
