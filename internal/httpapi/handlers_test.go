package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danielpatrickdp/shotsim/internal/cache"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	memo, err := cache.NewMemo(sim.NewSimulator(trajectory.DefaultPhysics(), outcome.DefaultConfig()), 16)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}
	router := gin.New()
	SetupRoutes(router, memo)
	return router
}

func do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestSimulate_Six(t *testing.T) {
	router := newRouter(t)
	w := do(router, http.MethodPost, "/api/v1/simulate", gin.H{
		"shot": gin.H{"speed": 30, "azimuth": 0, "elevation": 35},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SimulateResponse
	decode(t, w, &resp)
	if resp.Outcome.Runs != 6 || resp.Call != "SIX" {
		t.Errorf("expected a six, got %+v", resp.Outcome)
	}
	if resp.Samples != nil {
		t.Error("samples should be omitted unless requested")
	}
	if w.Header().Get("X-Result-Key") != resp.Key {
		t.Errorf("header key %q != body key %q", w.Header().Get("X-Result-Key"), resp.Key)
	}
}

func TestSimulate_SameShotSameKey(t *testing.T) {
	router := newRouter(t)
	body := gin.H{"shot": gin.H{"speed": 15, "azimuth": 60, "elevation": 5}, "include_samples": true}

	var a, b SimulateResponse
	decode(t, do(router, http.MethodPost, "/api/v1/simulate", body), &a)
	decode(t, do(router, http.MethodPost, "/api/v1/simulate", body), &b)

	if a.Key == "" || a.Key != b.Key {
		t.Fatalf("expected identical keys, got %q and %q", a.Key, b.Key)
	}
	if len(a.Samples) == 0 || a.Outcome.InterceptorID != "cover" {
		t.Errorf("expected cover to field with samples, got %+v (%d samples)", a.Outcome, len(a.Samples))
	}

	var health struct {
		Status string      `json:"status"`
		Cache  cache.Stats `json:"cache"`
	}
	decode(t, do(router, http.MethodGet, "/api/v1/health", nil), &health)
	if health.Status != "ok" || health.Cache.Hits != 1 || health.Cache.Misses != 1 {
		t.Errorf("unexpected health %+v", health)
	}
}

func TestSimulate_LaunchPoint(t *testing.T) {
	router := newRouter(t)
	post := func(shot gin.H) SimulateResponse {
		t.Helper()
		w := do(router, http.MethodPost, "/api/v1/simulate", gin.H{"shot": shot, "include_samples": true})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp SimulateResponse
		decode(t, w, &resp)
		return resp
	}

	omitted := post(gin.H{"speed": 20, "elevation": 20})
	ground := post(gin.H{"speed": 20, "elevation": 20, "launch": gin.H{"x": 0, "y": 0, "z": 0}})

	if z := omitted.Samples[0].Position.Z; z != 1 {
		t.Errorf("omitted launch should start at 1m, got %v", z)
	}
	if z := ground.Samples[0].Position.Z; z != 0 {
		t.Errorf("explicit zero launch should start on the ground, got %v", z)
	}
	if omitted.Key == ground.Key {
		t.Error("different launch points should not share a key")
	}
}

func TestSimulate_BadRequests(t *testing.T) {
	router := newRouter(t)
	cases := []struct {
		name  string
		body  any
		field string
	}{
		{"malformed json", "{not json", ""},
		{"negative speed", gin.H{"shot": gin.H{"speed": -5}}, "shot.speed"},
		{"unknown preset", gin.H{"shot": gin.H{"speed": 20}, "preset": "ring"}, ""},
		{"unknown friction", gin.H{"shot": gin.H{"speed": 20}, "friction": "sticky"}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/api/v1/simulate", c.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var body map[string]string
			decode(t, w, &body)
			if body["error"] == "" {
				t.Error("expected an error message")
			}
			if body["field"] != c.field {
				t.Errorf("expected field %q, got %q", c.field, body["field"])
			}
		})
	}
}

func TestGetResult(t *testing.T) {
	router := newRouter(t)
	var first SimulateResponse
	decode(t, do(router, http.MethodPost, "/api/v1/simulate", gin.H{
		"shot": gin.H{"speed": 30, "azimuth": 90, "elevation": 35},
	}), &first)

	w := do(router, http.MethodGet, "/api/v1/simulate/"+first.Key, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got SimulateResponse
	decode(t, w, &got)
	if !got.Outcome.IsDismissal || got.Catch == nil || len(got.Samples) == 0 {
		t.Errorf("expected cached catch with samples, got %+v", got.Outcome)
	}

	if w := do(router, http.MethodGet, "/api/v1/simulate/"+uuid.NewString(), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown key, got %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/v1/simulate/not-a-key", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed key, got %d", w.Code)
	}
}

func TestListPresets(t *testing.T) {
	router := newRouter(t)
	w := do(router, http.MethodGet, "/api/v1/presets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Presets []struct {
			Name     string            `json:"name"`
			Fielders []json.RawMessage `json:"fielders"`
		} `json:"presets"`
	}
	decode(t, w, &body)
	if len(body.Presets) != 2 || body.Presets[0].Name != "defensive" || body.Presets[1].Name != "standard" {
		t.Fatalf("unexpected presets %+v", body.Presets)
	}
	for _, p := range body.Presets {
		if len(p.Fielders) != 10 {
			t.Errorf("%s: expected 10 fielders, got %d", p.Name, len(p.Fielders))
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	router := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
