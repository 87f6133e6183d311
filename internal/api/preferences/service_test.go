package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

type memoryPrefs struct {
	rows      map[string]*store.Preferences
	getErr    error
	upsertErr error
}

func newMemoryPrefs() *memoryPrefs {
	return &memoryPrefs{rows: make(map[string]*store.Preferences)}
}

func (m *memoryPrefs) Get(_ context.Context, userID string) (*store.Preferences, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	prefs, ok := m.rows[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return prefs, nil
}

func (m *memoryPrefs) Upsert(_ context.Context, prefs *store.Preferences) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.rows[prefs.UserID] = prefs
	return nil
}

func newPrefsRouter(prefs preferenceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.Zlog = zap.NewNop()

	ctrl := NewController(NewService(prefs))
	r := gin.New()
	grp := r.Group("/v1/api/preferences")
	grp.GET("/:userId", ctrl.Get)
	grp.PUT("/:userId", ctrl.Update)
	return r
}

func TestUpdateStoresUserFromPath(t *testing.T) {
	mp := newMemoryPrefs()
	svc := NewService(mp)

	prefs, err := svc.Update(context.Background(), "user-7", &UpdateRequest{
		Tone:         "noir",
		Style:        "three-act",
		SystemPrompt: "You write tight procedural drama.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.UserID != "user-7" {
		t.Fatalf("expected UserID from argument, got %q", prefs.UserID)
	}

	stored, ok := mp.rows["user-7"]
	if !ok {
		t.Fatal("preferences were not upserted")
	}
	if stored.Tone != "noir" || stored.Style != "three-act" {
		t.Fatalf("stored row = %+v, want request fields", stored)
	}
}

func TestUpdateThenGetOverHTTP(t *testing.T) {
	mp := newMemoryPrefs()
	r := newPrefsRouter(mp)

	body := `{"tone":"whimsical","systemPrompt":"Keep episodes under ten minutes."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/api/preferences/user-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/api/preferences/user-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var got store.Preferences
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.Tone != "whimsical" || got.SystemPrompt != "Keep episodes under ten minutes." {
		t.Fatalf("round-tripped preferences = %+v, want stored fields", got)
	}
}

func TestGetUnknownUserReturns404(t *testing.T) {
	r := newPrefsRouter(newMemoryPrefs())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/api/preferences/nobody", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "not_found" {
		t.Fatalf("error = %q, want not_found", body.Error)
	}
}

func TestGetStoreFailureReturns500(t *testing.T) {
	mp := newMemoryPrefs()
	mp.getErr = errors.New("connection reset by peer")
	r := newPrefsRouter(mp)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/api/preferences/user-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "preferences_error" {
		t.Fatalf("error = %q, want preferences_error", body.Error)
	}
}

func TestUpdateMalformedPayloadReturns400(t *testing.T) {
	mp := newMemoryPrefs()
	r := newPrefsRouter(mp)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/api/preferences/user-1", strings.NewReader(`{"tone":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(mp.rows) != 0 {
		t.Fatalf("expected no upsert on malformed payload, stored %d rows", len(mp.rows))
	}
}

func TestUpdateStoreFailureReturns500(t *testing.T) {
	mp := newMemoryPrefs()
	mp.upsertErr = errors.New("deadlock detected")
	r := newPrefsRouter(mp)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/api/preferences/user-1", strings.NewReader(`{"tone":"noir"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
