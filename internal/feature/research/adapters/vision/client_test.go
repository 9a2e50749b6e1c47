package vision

import (
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/status"

	"marketer_backend/internal/feature/research/domain/entity"
)

func TestToLogos(t *testing.T) {
	t.Parallel()

	t.Run("maps annotations and skips blank names", func(t *testing.T) {
		t.Parallel()

		resp := &visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{
				LogoAnnotations: []*visionpb.EntityAnnotation{
					{Description: "Acme", Score: 0.93},
					{Description: "", Score: 0.5},
					{Description: "Globex", Score: 0.41},
				},
			}},
		}

		logos, err := toLogos(resp)
		require.NoError(t, err)
		assert.Equal(t, []entity.DetectedLogo{
			{Name: "Acme", Confidence: 0.93},
			{Name: "Globex", Confidence: 0.41},
		}, logos)
	})

	t.Run("empty response", func(t *testing.T) {
		t.Parallel()

		logos, err := toLogos(&visionpb.BatchAnnotateImagesResponse{})
		require.NoError(t, err)
		assert.Nil(t, logos)
	})

	t.Run("per-image error", func(t *testing.T) {
		t.Parallel()

		resp := &visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{Error: &status.Status{Message: "bad image"}}},
		}

		_, err := toLogos(resp)
		assert.ErrorContains(t, err, "bad image")
	})
}
