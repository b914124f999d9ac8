package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	draftRepo "sportify/database/repository/draft"
	"sportify/handlers"
	"sportify/middleware"
	"sportify/services/draft"
	"sportify/services/geo"
)

func newRouter(withComplexes bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	geoSvc := geo.NewService(geo.NewHTTPDirectory("http://127.0.0.1:0", logger), geo.NewMemoryCache(0), logger)
	svc := &draft.DefaultDraftService{
		Store:     draftRepo.NewMemoryDraftStore(0),
		Locations: geoSvc,
		Logger:    logger,
	}
	var cx *handlers.ComplexHandler
	if withComplexes {
		cx = handlers.NewComplexHandler(nil, logger)
	}
	hb := handlers.NewHandlerBundle(handlers.NewDraftHandler(svc, logger), handlers.NewGeoHandler(geoSvc, logger), cx,
		middleware.OperatorAuthMiddleware(logger))
	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func serve(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHealthRoute(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(newRouter(false), http.MethodGet, "/health"))
}

func TestDraftRoutes_RequireOperatorToken(t *testing.T) {
	r := newRouter(false)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/drafts"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/drafts/abc"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/drafts/abc/fields/f1/propagate"))
}

func TestComplexRoutes_OnlyWithLocalStore(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(newRouter(false), http.MethodGet, "/api/complexes"))
	assert.Equal(t, http.StatusUnauthorized, serve(newRouter(true), http.MethodGet, "/api/complexes"))
}
