// Package vision はGoogle Cloud Vision APIを使用したロゴ検出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"marketer_backend/internal/feature/research/domain/entity"
	"marketer_backend/internal/feature/research/usecase"
)

// maxLogoResults limits how many logo annotations Vision returns.
const maxLogoResults = 5

// LogoDetector はGoogle Cloud Vision APIを使用してロゴを検出します。
type LogoDetector struct {
	client *gvision.ImageAnnotatorClient
}

// LogoDetectorがusecase.LogoDetectorを実装していることをコンパイル時に検証します。
var _ usecase.LogoDetector = (*LogoDetector)(nil)

// NewLogoDetector はADCを使用してLogoDetectorの新しいインスタンスを生成します。
func NewLogoDetector(ctx context.Context) (*LogoDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &LogoDetector{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (d *LogoDetector) Close() error {
	return d.client.Close()
}

// DetectLogos は画像バイト列からロゴを検出します。
func (d *LogoDetector) DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image:    &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{{Type: visionpb.Feature_LOGO_DETECTION, MaxResults: maxLogoResults}},
			},
		},
	}

	resp, err := d.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}
	return toLogos(resp)
}

// toLogos はVision APIのレスポンスをドメインエンティティに変換します。
func toLogos(resp *visionpb.BatchAnnotateImagesResponse) ([]entity.DetectedLogo, error) {
	if resp == nil || len(resp.Responses) == 0 {
		return nil, nil
	}
	first := resp.Responses[0]
	if first.GetError() != nil {
		return nil, fmt.Errorf("vision API error: %s", first.GetError().GetMessage())
	}

	logos := make([]entity.DetectedLogo, 0, len(first.GetLogoAnnotations()))
	for _, a := range first.GetLogoAnnotations() {
		if a.GetDescription() == "" {
			continue
		}
		logos = append(logos, entity.DetectedLogo{Name: a.GetDescription(), Confidence: a.GetScore()})
	}
	return logos, nil
}
