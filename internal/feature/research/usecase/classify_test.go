package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketer_backend/internal/feature/research/domain/entity"
)

func TestClassifyIndustry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []entity.SearchResult
		want    string
	}{
		{
			name:    "no results uses default",
			results: nil,
			want:    DefaultIndustry,
		},
		{
			name:    "no keyword uses default",
			results: []entity.SearchResult{{Title: "Acme", Content: "makes anvils"}},
			want:    "Technology",
		},
		{
			name:    "keyword in content",
			results: []entity.SearchResult{{Title: "Acme", Content: "A leading HEALTHCARE provider"}},
			want:    "Healthcare",
		},
		{
			name:    "list order wins over result order",
			results: []entity.SearchResult{{Title: "retail chain"}, {Title: "fintech startup"}},
			want:    "Fintech",
		},
		{
			name:    "multi-word keyword",
			results: []entity.SearchResult{{Content: "commercial real estate broker"}},
			want:    "Real estate",
		},
		{
			name:    "hyphenated keyword",
			results: []entity.SearchResult{{Content: "an e-commerce platform"}},
			want:    "E-commerce",
		},
		{
			name: "only first five results are inspected",
			results: []entity.SearchResult{
				{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}, {Title: "e"},
				{Title: "aerospace"},
			},
			want: DefaultIndustry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyIndustry(tt.results))
		})
	}
}

func TestExtractSocialLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []entity.SearchResult
		want    entity.SocialLinks
	}{
		{
			name: "first match wins per platform",
			results: []entity.SearchResult{
				{URL: "https://www.linkedin.com/company/acme"},
				{URL: "https://twitter.com/acme"},
				{URL: "https://x.com/acme2"},
			},
			want: entity.SocialLinks{
				LinkedIn: "https://www.linkedin.com/company/acme",
				Twitter:  "https://twitter.com/acme",
			},
		},
		{
			name: "x.com counts as twitter",
			results: []entity.SearchResult{
				{URL: "https://x.com/acme"},
				{URL: "https://twitter.com/acme-old"},
			},
			want: entity.SocialLinks{Twitter: "https://x.com/acme"},
		},
		{
			name: "personal linkedin profile is not a company page",
			results: []entity.SearchResult{
				{URL: "https://www.linkedin.com/in/jane"},
			},
			want: entity.SocialLinks{},
		},
		{
			name: "matches beyond the tenth result are ignored",
			results: append(make([]entity.SearchResult, 10),
				entity.SearchResult{URL: "https://www.linkedin.com/company/late"}),
			want: entity.SocialLinks{},
		},
		{
			name:    "empty",
			results: nil,
			want:    entity.SocialLinks{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractSocialLinks(tt.results))
		})
	}
}

func TestRecentNews(t *testing.T) {
	t.Parallel()

	var results []entity.SearchResult
	for _, title := range []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7"} {
		results = append(results, entity.SearchResult{Title: title})
	}

	assert.Equal(t, []string{"n1", "n2", "n3", "n4", "n5"}, RecentNews(results))
	assert.Equal(t, []string{"n1", "n2"}, RecentNews(results[:2]))
	assert.Equal(t, []string{}, RecentNews(nil))
}
