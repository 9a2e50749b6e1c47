package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"marketer_backend/internal/feature/research/domain"
	"marketer_backend/internal/feature/research/domain/entity"
	"marketer_backend/internal/feature/research/usecase"
	"marketer_backend/internal/platform/externalapi/searxng/dto"
	"marketer_backend/internal/platform/metrics"
)

// maxBodyBytes caps how much of a response body is decoded.
const maxBodyBytes = 1 << 20

// Client はSearXNGの /search エンドポイントを呼び出すSearcher実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがSearcherを実装していることをコンパイル時に検証します。
var _ usecase.Searcher = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg.WithDefaults(), client: client}
}

// Search はクエリを1回だけ送信し、結果をランキング順のまま返します。リトライはしません。
// 通信エラー・2xx以外のステータス・不正なボディはログに詳細を残し、
// *domain.SearchError として返します。
func (c *Client) Search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error) {
	category := strings.Join(opts.Categories, ",")
	start := time.Now()

	results, err := c.search(ctx, query, opts)

	metrics.SearchDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	metrics.SearchRequests.WithLabelValues(category, metrics.Outcome(err)).Inc()
	if err != nil {
		slog.Error("searxng search failed", "query", query, "categories", category, "error", err)
		return nil, &domain.SearchError{Cause: err}
	}
	return results, nil
}

func (c *Client) search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error) {
	u := fmt.Sprintf("%s/search?%s", strings.TrimRight(c.cfg.BaseURL, "/"), buildQuery(query, opts).Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("searxng http %d: %s", res.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var body dto.SearchResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode searxng response: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, entity.SearchResult{
			Title:          r.Title,
			URL:            r.URL,
			Content:        r.Content,
			SourceEngine:   r.Engine,
			RelevanceScore: r.Score,
		})
	}
	return results, nil
}

// buildQuery はゼロ値のオプションを除いたクエリパラメータを組み立てます。
func buildQuery(query string, opts entity.SearchOptions) url.Values {
	format := opts.Format
	if format == "" {
		format = "json"
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", format)
	if len(opts.Categories) > 0 {
		q.Set("categories", strings.Join(opts.Categories, ","))
	}
	if len(opts.Engines) > 0 {
		q.Set("engines", strings.Join(opts.Engines, ","))
	}
	if opts.Language != "" {
		q.Set("language", opts.Language)
	}
	if opts.TimeRange != "" {
		q.Set("time_range", opts.TimeRange)
	}
	if opts.SafeSearch != nil {
		q.Set("safesearch", strconv.Itoa(*opts.SafeSearch))
	}
	return q
}
