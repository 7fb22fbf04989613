package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"bgcatalog/backend/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router          *gin.Engine
	caller          uuid.UUID
	games           *mockGameStore
	taxonomy        *mockTaxonomyStore
	collections     *mockCollectionStore
	ratings         *mockRatingStore
	recommendations *mockRecommendationStore
	users           *mockUserStore
}

func newTestAPI() *testAPI {
	a := &testAPI{
		caller:          uuid.New(),
		games:           &mockGameStore{},
		taxonomy:        &mockTaxonomyStore{},
		collections:     &mockCollectionStore{},
		ratings:         &mockRatingStore{},
		recommendations: &mockRecommendationStore{},
		users:           &mockUserStore{},
	}
	a.router = NewRouter(Dependencies{
		Games:                 a.games,
		Taxonomy:              a.taxonomy,
		Collections:           a.collections,
		Ratings:               a.ratings,
		Recommendations:       a.recommendations,
		Users:                 a.users,
		Auth:                  auth.Options{DefaultCaller: a.caller},
		RecommendationsPerRun: 3,
		Metrics:               prometheus.NewRegistry(),
		Log:                   zerolog.Nop(),
	})
	return a
}

// do sends a request; authed adds a bearer header.
func (a *testAPI) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func intPtr(n int) *int { return &n }
