// Package usecase はresearchフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"marketer_backend/internal/feature/research/domain"
	"marketer_backend/internal/feature/research/domain/entity"
)

const searchLanguage = "en"

// Searcher は外部検索サービスを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/externalapi）ではなくコンシューマー（usecase）が定義します。
type Searcher interface {
	// Search はクエリを1回だけ送信し、正規化された結果をランキング順で返します。
	// 失敗時は *domain.SearchError を返します。
	Search(ctx context.Context, query string, opts entity.SearchOptions) ([]entity.SearchResult, error)
}

// ResearchUsecase は企業調査と担当者情報の補完を提供します。
// 呼び出し間で状態を共有せず、同じ企業でも毎回検索し直します。
type ResearchUsecase struct {
	searcher Searcher
}

// NewResearchUsecase はResearchUsecaseの新しいインスタンスを生成します。
func NewResearchUsecase(searcher Searcher) *ResearchUsecase {
	return &ResearchUsecase{searcher: searcher}
}

// ResearchCompany は企業名またはURLから企業プロフィールを組み立てます。
// 一般検索とニュース検索を並行して実行し、どちらかが失敗した場合は
// *domain.ResearchError を返します（部分的なプロフィールは返しません）。
func (u *ResearchUsecase) ResearchCompany(ctx context.Context, input string) (*entity.CompanyProfile, error) {
	companyName, website := ResolveIdentity(input)

	var general, news []entity.SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		general, err = u.searcher.Search(gctx, companyName+" company information", entity.SearchOptions{
			Categories: []string{entity.CategoryGeneral},
			Language:   searchLanguage,
		})
		return err
	})
	g.Go(func() error {
		var err error
		news, err = u.searcher.Search(gctx, companyName+" company news", entity.SearchOptions{
			Categories: []string{entity.CategoryNews},
			Language:   searchLanguage,
			TimeRange:  "month",
		})
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("company research failed", "company", companyName, "error", err)
		return nil, &domain.ResearchError{Cause: err}
	}

	description := fmt.Sprintf("Information about %s", companyName)
	if len(general) > 0 && general[0].Content != "" {
		description = general[0].Content
	}

	raw := make([]entity.SearchResult, 0, len(general)+len(news))
	raw = append(raw, general...)
	raw = append(raw, news...)

	return &entity.CompanyProfile{
		CompanyName: companyName,
		Website:     website,
		Description: description,
		Industry:    ClassifyIndustry(general),
		RecentNews:  RecentNews(news),
		SocialLinks: ExtractSocialLinks(general),
		RawResults:  raw,
	}, nil
}

// EnrichContact は氏名・会社名・メールアドレスで1回検索し、
// LinkedIn/Twitterのプロフィールから肩書きなどを補完します。
// 検索に失敗しても呼び出し元を止めないよう、エラーは返さず空の結果を返します。
func (u *ResearchUsecase) EnrichContact(ctx context.Context, name, company, email string) entity.ContactEnrichment {
	query := fmt.Sprintf("%s %s %s", name, company, email)
	results, err := u.searcher.Search(ctx, query, entity.SearchOptions{
		Categories: []string{entity.CategoryGeneral},
		Language:   searchLanguage,
	})
	if err != nil {
		slog.Warn("contact enrichment skipped", "name", name, "company", company, "error", err)
		return entity.ContactEnrichment{}
	}

	var out entity.ContactEnrichment
	for _, r := range results {
		if strings.Contains(r.URL, "linkedin.com/in") {
			out.LinkedInURL = r.URL
			out.Bio = r.Content
			if title, ok := ExtractTitle(r.Content); ok {
				out.Title = title
			}
			break
		}
	}
	for _, r := range results {
		if isTwitterURL(r.URL) {
			out.TwitterURL = r.URL
			break
		}
	}
	return out
}
