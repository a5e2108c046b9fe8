package triage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Meena292006/MedHive/internal/platform/ml"
)

func newTestHandler(repo CaseRepository, pred Predictor) (*Handler, *echo.Echo) {
	return NewHandler(NewService(repo, pred)), echo.New()
}

func TestSubmitCaseHandler_Created(t *testing.T) {
	h, e := newTestHandler(newMockCaseRepo(), fluPredictor())

	body := `{"patient_name":"Jane","symptoms":["fever","cough"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cases/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitCase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var res SubmitResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.RiskScore != 100 || res.Priority != PriorityHigh {
		t.Errorf("unexpected triage outcome: score=%d priority=%s", res.RiskScore, res.Priority)
	}
	if res.SimilarPastCases == nil {
		t.Error("similar_past_cases should be present even when empty")
	}
}

func TestSubmitCaseHandler_PatientAlias(t *testing.T) {
	repo := newMockCaseRepo()
	h, e := newTestHandler(repo, fluPredictor())

	body := `{"patient":"Ravi","symptoms":["fever"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cases/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.SubmitCase(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	stored, _ := repo.GetByID(context.Background(), 1)
	if stored.PatientName != "Ravi" {
		t.Errorf("expected patient alias to be honored, got %s", stored.PatientName)
	}
}

func TestSubmitCaseHandler_PredictionDown(t *testing.T) {
	h, e := newTestHandler(newMockCaseRepo(), &mockPredictor{err: ml.ErrPredictionUnavailable})

	req := httptest.NewRequest(http.MethodPost, "/api/cases/submit", strings.NewReader(`{"symptoms":["fever"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.SubmitCase(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 HTTPError, got %v", err)
	}
}

func TestListCasesHandler_SeverityOrder(t *testing.T) {
	repo := newMockCaseRepo()
	ctx := context.Background()
	repo.Create(ctx, &Case{PatientName: "A", Symptoms: []string{"x"}, RiskScore: 20, Priority: PriorityNormal})
	repo.Create(ctx, &Case{PatientName: "B", Symptoms: []string{"y"}, RiskScore: 90, Priority: PriorityHigh})

	h, e := newTestHandler(repo, fluPredictor())
	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	rec := httptest.NewRecorder()

	if err := h.ListCases(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var items []Case
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 || items[0].PatientName != "B" {
		t.Errorf("expected severity order B first, got %+v", items)
	}
}

func TestListCasesHandler_EmptyArray(t *testing.T) {
	h, e := newTestHandler(newMockCaseRepo(), fluPredictor())
	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	rec := httptest.NewRecorder()

	if err := h.ListCases(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

func TestGetCaseHandler(t *testing.T) {
	repo := newMockCaseRepo()
	repo.Create(context.Background(), &Case{PatientName: "Jane", Symptoms: []string{"fever"}, Priority: PriorityNormal})
	h, e := newTestHandler(repo, fluPredictor())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.GetCase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("99")
	err := h.GetCase(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown case, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err = h.GetCase(c)
	he, ok = err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %v", err)
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	repo := newMockCaseRepo()
	repo.Create(context.Background(), &Case{PatientName: "Jane", Symptoms: []string{"fever"}, Priority: PriorityNormal})
	h, e := newTestHandler(repo, fluPredictor())

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"TREATED"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	stored, _ := repo.GetByID(context.Background(), 1)
	if stored.Status != StatusTreated {
		t.Errorf("expected TREATED, got %s", stored.Status)
	}

	req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"DISCHARGED"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c = e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %v", err)
	}
}
