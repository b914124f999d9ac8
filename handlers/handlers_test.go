package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	complexRepo "sportify/database/repository/complex"
	draftRepo "sportify/database/repository/draft"
	"sportify/middleware"
	"sportify/models"
	"sportify/services/draft"
	"sportify/services/geo"
	"sportify/services/submission"
	"sportify/utils"
)

const testOperator = "operator-1"

type stubLocations struct{}

func (stubLocations) ListProvinces(context.Context) ([]models.LocationOption, error) {
	return []models.LocationOption{{Code: "79", Label: "Ho Chi Minh", Value: "79"}}, nil
}

func (stubLocations) ListWards(_ context.Context, code string) ([]models.LocationOption, error) {
	if code != "79" {
		return nil, geo.ErrUnknownCode
	}
	return []models.LocationOption{{Code: "26734", Label: "Ben Nghe", Value: "26734"}}, nil
}

func (stubLocations) ResolveProvince(_ context.Context, code string) (models.LocationOption, error) {
	return models.LocationOption{Code: code, Label: "Ho Chi Minh", Value: code}, nil
}

func (stubLocations) ResolveWard(_ context.Context, _, code string) (models.LocationOption, error) {
	return models.LocationOption{Code: code, Label: "Ben Nghe", Value: code}, nil
}

type stubSubmitter struct{ err error }

func (s *stubSubmitter) Submit(ctx context.Context, operatorID string, p models.SubmissionPayload) (*models.SubmissionResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SubmissionResult{Success: true, Message: "complex created", ID: "complex-1"}, nil
}

type testServer struct {
	router *gin.Engine
	sub    *stubSubmitter
	repo   complexRepo.ComplexRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	sub := &stubSubmitter{}
	svc := &draft.DefaultDraftService{
		Store:     draftRepo.NewMemoryDraftStore(0),
		Locations: stubLocations{},
		Submitter: sub,
		NewID:     utils.NewSequenceIDs("id"),
		Settings:  draft.Settings{DefaultSlotMinutes: 90, MaxBulkFields: 20},
		Logger:    logger,
	}
	repo := complexRepo.NewMemoryComplexRepo()
	auth := func(c *gin.Context) {
		c.Set(middleware.OperatorIDKey, c.GetHeader("X-Test-Operator"))
		c.Next()
	}
	hb := NewHandlerBundle(NewDraftHandler(svc, logger), NewGeoHandler(stubLocations{}, logger), NewComplexHandler(repo, logger), auth)

	r := gin.New()
	d := r.Group("/drafts", hb.OperatorAuth)
	d.POST("", hb.CreateDraftHandler)
	d.GET("/:draftID", hb.GetDraftHandler)
	d.DELETE("/:draftID", hb.DiscardDraftHandler)
	d.PUT("/:draftID/complex", hb.UpdateComplexHandler)
	d.POST("/:draftID/fields", hb.AddFieldHandler)
	d.POST("/:draftID/fields/bulk", hb.BulkAddFieldsHandler)
	d.PATCH("/:draftID/fields/:fieldID", hb.UpdateFieldHandler)
	d.DELETE("/:draftID/fields/:fieldID", hb.RemoveFieldHandler)
	d.POST("/:draftID/fields/:fieldID/slots", hb.AddSlotHandler)
	d.PUT("/:draftID/fields/:fieldID/slots/:slotID", hb.EditSlotHandler)
	d.DELETE("/:draftID/fields/:fieldID/slots/:slotID", hb.RemoveSlotHandler)
	d.POST("/:draftID/fields/:fieldID/propagate", hb.PropagateSlotsHandler)
	d.POST("/:draftID/next", hb.NextStepHandler)
	d.POST("/:draftID/back", hb.PreviousStepHandler)
	d.POST("/:draftID/submit", hb.SubmitDraftHandler)
	r.GET("/geo/provinces", hb.ListProvincesHandler)
	r.GET("/geo/provinces/:code/wards", hb.ListWardsHandler)
	cx := r.Group("/complexes", hb.OperatorAuth)
	cx.GET("", hb.ListComplexesHandler)
	cx.GET("/:complexID", hb.GetComplexHandler)

	return &testServer{router: r, sub: sub, repo: repo}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Operator", testOperator)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) draft.DraftView {
	t.Helper()
	var v draft.DraftView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var e utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), w.Body.String())
	return e
}

func slotBody(start, end string, price float64) gin.H {
	return gin.H{"startTime": start, "endTime": end, "price": price}
}

func TestDraftFlow_ThroughHTTP(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	v := decodeView(t, w)
	id := v.Draft.ID
	base := "/drafts/" + id

	w = s.do(t, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, string(models.RejectStepIncomplete), decodeError(t, w).Error)

	w = s.do(t, http.MethodPut, base+"/complex", gin.H{
		"name": "Green Park", "street": "12 Nguyen Trai", "province": "79", "ward": "26734",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeView(t, w).Check.ComplexInfoComplete)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/next", nil).Code)

	w = s.do(t, http.MethodPost, base+"/fields/bulk", gin.H{"pattern": "Pitch {number}", "count": 2})
	require.Equal(t, http.StatusOK, w.Code)
	v = decodeView(t, w)
	require.Len(t, v.Draft.Fields, 3)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/next", nil).Code)

	first := v.Draft.Fields[0].ID
	w = s.do(t, http.MethodPost, base+"/fields/"+first+"/slots", slotBody("06:00", "07:30", 200000))
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, base+"/fields/"+first+"/slots", slotBody("07:00", "08:00", 200000))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, string(models.RejectOverlap), decodeError(t, w).Error)

	w = s.do(t, http.MethodPost, base+"/fields/"+first+"/propagate", gin.H{"confirm": true})
	require.Equal(t, http.StatusOK, w.Code)
	for _, f := range decodeView(t, w).Draft.Fields {
		assert.Len(t, f.TimeSlots, 1)
	}

	w = s.do(t, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StepConfirmation, decodeView(t, w).Draft.Step)

	w = s.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "complex-1")

	w = s.do(t, http.MethodPost, base+"/fields", gin.H{"name": "Late"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPropagate_RequiresConfirmation(t *testing.T) {
	s := newTestServer(t)
	v := decodeView(t, s.do(t, http.MethodPost, "/drafts", nil))
	path := "/drafts/" + v.Draft.ID + "/fields/" + v.Draft.Fields[0].ID + "/propagate"

	w := s.do(t, http.MethodPost, path, gin.H{"confirm": false})
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = s.do(t, http.MethodPost, path, gin.H{"confirm": true})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, string(models.RejectEmptySource), decodeError(t, w).Error)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/drafts/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DRAFT_NOT_FOUND", decodeError(t, w).Error)

	v := decodeView(t, s.do(t, http.MethodPost, "/drafts", nil))
	base := "/drafts/" + v.Draft.ID

	w = s.do(t, http.MethodDelete, base+"/fields/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(models.RejectFieldNotFound), decodeError(t, w).Error)

	w = s.do(t, http.MethodPatch, base+"/fields/"+v.Draft.Fields[0].ID, gin.H{"fieldType": "9-a-side"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, string(models.RejectInvalidFieldType), decodeError(t, w).Error)

	for _, count := range []int{0, -3} {
		w = s.do(t, http.MethodPost, base+"/fields/bulk", gin.H{"pattern": "x", "count": count})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, string(models.RejectInvalidCount), decodeError(t, w).Error)
	}
	w = s.do(t, http.MethodPost, base+"/fields/bulk", gin.H{"pattern": "x"})
	assert.Equal(t, string(models.RejectInvalidCount), decodeError(t, w).Error)

	w = s.do(t, http.MethodPost, base+"/fields/bulk", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, string(models.RejectNotAtConfirmation), decodeError(t, w).Error)
}

func TestSubmitFailure_Returns502AndKeepsDraft(t *testing.T) {
	s := newTestServer(t)
	v := decodeView(t, s.do(t, http.MethodPost, "/drafts", nil))
	base := "/drafts/" + v.Draft.ID

	s.do(t, http.MethodPut, base+"/complex", gin.H{
		"name": "Green Park", "street": "12 Nguyen Trai", "province": "79", "ward": "26734",
	})
	s.do(t, http.MethodPost, base+"/next", nil)
	s.do(t, http.MethodPost, base+"/next", nil)
	s.do(t, http.MethodPost, base+"/fields/"+v.Draft.Fields[0].ID+"/slots", slotBody("06:00", "07:30", 1))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/next", nil).Code)

	s.sub.err = &submission.SubmissionError{StatusCode: 500, Message: "backend down", Err: errors.New("boom")}
	w := s.do(t, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = s.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.DraftEditing, decodeView(t, w).Draft.Status)

	s.sub.err = nil
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/submit", nil).Code)
}

func TestBack_FromFirstStepSignalsExit(t *testing.T) {
	s := newTestServer(t)
	v := decodeView(t, s.do(t, http.MethodPost, "/drafts", nil))

	w := s.do(t, http.MethodPost, "/drafts/"+v.Draft.ID+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeView(t, w).Exit)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/drafts/"+v.Draft.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/drafts/"+v.Draft.ID, nil).Code)
}

func TestGeoHandlers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/geo/provinces", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ho Chi Minh")

	w = s.do(t, http.MethodGet, "/geo/provinces/79/wards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ben Nghe")

	w = s.do(t, http.MethodGet, "/geo/provinces/00/wards", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestComplexHandlers_ScopedToOperator(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, s.repo.Create(ctx, models.ComplexRecord{ID: "c1", OperatorID: testOperator}))
	require.NoError(t, s.repo.Create(ctx, models.ComplexRecord{ID: "c2", OperatorID: "someone-else"}))

	w := s.do(t, http.MethodGet, "/complexes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Complexes []models.ComplexRecord `json:"complexes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Complexes, 1)
	assert.Equal(t, "c1", body.Complexes[0].ID)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/complexes/c1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/complexes/c2", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/complexes/c3", nil).Code)
}
