package usecase

import (
	"context"
	"errors"
	"sync"

	"marketer_backend/internal/feature/research/domain/entity"
)

// mockSearcher はSearcherインターフェースのモック実装です。
// ResearchCompanyは並行に呼び出すため、呼び出し記録はミューテックスで保護します。
type mockSearcher struct {
	SearchFunc func(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error)

	mu      sync.Mutex
	Queries []string
	Options []entity.SearchOptions
}

func (m *mockSearcher) Search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.Options = append(m.Options, opts)
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return nil, errors.New("SearchFunc is not implemented")
}

func (m *mockSearcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// isNews reports whether the options describe the news search.
func isNews(opts entity.SearchOptions) bool {
	return len(opts.Categories) == 1 && opts.Categories[0] == entity.CategoryNews
}

// byCategory はカテゴリごとに固定の結果を返すSearchFuncを生成します。
func byCategory(general, news []entity.SearchResult) func(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error) {
	return func(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error) {
		if isNews(opts) {
			return news, nil
		}
		return general, nil
	}
}
