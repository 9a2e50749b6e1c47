package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketer_backend/internal/feature/research/domain"
	"marketer_backend/internal/feature/research/domain/entity"
	"marketer_backend/internal/feature/research/transport/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockResearchUsecase はResearchUsecaseインターフェースのモック実装です。
type mockResearchUsecase struct {
	ResearchCompanyFunc func(ctx context.Context, input string) (*entity.CompanyProfile, error)
	EnrichContactFunc   func(ctx context.Context, name, company, email string) entity.ContactEnrichment
}

func (m *mockResearchUsecase) ResearchCompany(ctx context.Context, input string) (*entity.CompanyProfile, error) {
	return m.ResearchCompanyFunc(ctx, input)
}

func (m *mockResearchUsecase) EnrichContact(ctx context.Context, name, company, email string) entity.ContactEnrichment {
	return m.EnrichContactFunc(ctx, name, company, email)
}

// mockLogoResearchUsecase はLogoResearchUsecaseインターフェースのモック実装です。
type mockLogoResearchUsecase struct {
	ResearchFromLogoFunc func(ctx context.Context, imageData []byte) (*entity.LogoResearch, error)
}

func (m *mockLogoResearchUsecase) ResearchFromLogo(ctx context.Context, imageData []byte) (*entity.LogoResearch, error) {
	return m.ResearchFromLogoFunc(ctx, imageData)
}

func newRouter(h *handler.ResearchHandler) *gin.Engine {
	r := gin.New()
	r.POST("/research/company", h.ResearchCompany)
	r.POST("/research/contact", h.EnrichContact)
	r.POST("/research/logo", h.ResearchLogo)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResearchHandler_ResearchCompany(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		researchFunc   func(ctx context.Context, input string) (*entity.CompanyProfile, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: gin.H{"query": "acme.io"},
			researchFunc: func(ctx context.Context, input string) (*entity.CompanyProfile, error) {
				return &entity.CompanyProfile{CompanyName: "acme", Website: "acme.io", Industry: "Technology", RecentNews: []string{}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"website":"acme.io"`,
		},
		{
			name:           "missing query",
			body:           gin.H{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request"`,
		},
		{
			name: "upstream failure is opaque",
			body: gin.H{"query": "acme"},
			researchFunc: func(ctx context.Context, input string) (*entity.CompanyProfile, error) {
				return nil, &domain.ResearchError{Cause: errors.New("searx.be returned 429 with secret detail")}
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"company research failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockResearchUsecase{ResearchCompanyFunc: tt.researchFunc}
			r := newRouter(handler.NewResearchHandler(uc, nil))

			w := postJSON(t, r, "/research/company", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "secret detail")
		})
	}
}

func TestResearchHandler_EnrichContact(t *testing.T) {
	var gotName, gotCompany, gotEmail string
	uc := &mockResearchUsecase{
		EnrichContactFunc: func(ctx context.Context, name, company, email string) entity.ContactEnrichment {
			gotName, gotCompany, gotEmail = name, company, email
			return entity.ContactEnrichment{}
		},
	}
	r := newRouter(handler.NewResearchHandler(uc, nil))

	w := postJSON(t, r, "/research/contact", gin.H{"name": "Jane Doe", "company": "Acme"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
	assert.Equal(t, "Jane Doe", gotName)
	assert.Equal(t, "Acme", gotCompany)
	assert.Equal(t, "", gotEmail)

	w = postJSON(t, r, "/research/contact", gin.H{"name": "Jane Doe", "company": "Acme", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// createMultipartRequest はテスト用のマルチパートリクエストを生成するヘルパー関数です。
func createMultipartRequest(t *testing.T, fieldName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, "logo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/research/logo", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestResearchHandler_ResearchLogo(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		logoFunc       func(ctx context.Context, imageData []byte) (*entity.LogoResearch, error)
		expectedStatus int
	}{
		{
			name:  "success",
			field: "image",
			logoFunc: func(ctx context.Context, imageData []byte) (*entity.LogoResearch, error) {
				return &entity.LogoResearch{Logo: entity.DetectedLogo{Name: "Acme", Confidence: 0.9}, Profile: &entity.CompanyProfile{CompanyName: "Acme"}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing image field",
			field:          "file",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "no logo",
			field: "image",
			logoFunc: func(ctx context.Context, imageData []byte) (*entity.LogoResearch, error) {
				return nil, domain.ErrNoLogoDetected
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "research failure",
			field: "image",
			logoFunc: func(ctx context.Context, imageData []byte) (*entity.LogoResearch, error) {
				return nil, &domain.ResearchError{}
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logos := &mockLogoResearchUsecase{ResearchFromLogoFunc: tt.logoFunc}
			r := newRouter(handler.NewResearchHandler(&mockResearchUsecase{}, logos))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, createMultipartRequest(t, tt.field, []byte("png-bytes")))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestResearchHandler_ResearchLogo_NotConfigured(t *testing.T) {
	r := newRouter(handler.NewResearchHandler(&mockResearchUsecase{}, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, createMultipartRequest(t, "image", []byte("png-bytes")))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
