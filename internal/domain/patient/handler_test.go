package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setupHandler() (*PatientHandler, *mockPatientRepo) {
	repo := newMockPatientRepo()
	return NewPatientHandler(newTestService(repo, "WB001")), repo
}

func TestHandlerRegister(t *testing.T) {
	h, _ := setupHandler()
	e := echo.New()

	body := `{"name":"Juan Dela Cruz","contact_no":"09171234567","address":"Quezon City","wristband_id":"WB001"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register handler failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var p Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if p.Name != "Juan Dela Cruz" {
		t.Errorf("name = %q", p.Name)
	}
	if p.WristbandID == nil || *p.WristbandID != "WB001" {
		t.Errorf("wristband = %v, want WB001", p.WristbandID)
	}
}

func TestHandlerRegister_MissingName(t *testing.T) {
	h, _ := setupHandler()
	e := echo.New()

	body := `{"contact_no":"09171234567","address":"Quezon City"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerGet_NotFound(t *testing.T) {
	h, _ := setupHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandlerGet_InvalidID(t *testing.T) {
	h, _ := setupHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerList(t *testing.T) {
	h, repo := setupHandler()
	svc := newTestService(repo)
	for i := 0; i < 3; i++ {
		if _, err := svc.Register(context.Background(), "Patient", "0917", "QC", ""); err != nil {
			t.Fatal(err)
		}
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data  []Patient `json:"data"`
		Total int       `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 3 || len(resp.Data) != 3 {
		t.Errorf("got %d/%d, want 3 patients", len(resp.Data), resp.Total)
	}
}

func TestHandlerRemove(t *testing.T) {
	h, repo := setupHandler()
	svc := newTestService(repo)
	p, _ := svc.Register(context.Background(), "Juan", "0917", "QC", "")

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())

	if err := h.Remove(c); err != nil {
		t.Fatalf("Remove handler failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
