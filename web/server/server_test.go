package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testScene = `png 16 12 test.png
color 1 0 0
sphere 0 0 -2 0.5
color 1 1 1
plane 0 1 0 1
sun 0 1 1
`

func post(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}

func TestHandleRender(t *testing.T) {
	rec := post(t, "/api/render?workers=2&aa=2", testScene)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Format != "png" || resp.Width != 16 || resp.Height != 12 || resp.Name != "test.png" {
		t.Errorf("Unexpected header fields %+v", resp)
	}
	if resp.Stats.Samples != 32*24 {
		t.Errorf("Expected %d samples with aa 2, got %d", 32*24, resp.Stats.Samples)
	}
	if resp.Stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", resp.Stats.Workers)
	}

	data, err := base64.StdEncoding.DecodeString(resp.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64 image: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Invalid png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %v", b)
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"empty scene", "/api/render", ""},
		{"unknown keyword", "/api/render", "png 4 4 a.png\nteapot 1 2 3\n"},
		{"aa out of range", "/api/render?aa=0", testScene},
		{"invalid bounces", "/api/render?bounces=lots", testScene},
		{"negative exposure", "/api/render?exposure=-1", testScene},
		{"too many samples", "/api/render", "png 8192 8192 big.png\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleRender_RequiresPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/render", nil)
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for GET, got %d", rec.Code)
	}
}

func TestHandleInspect(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		hit          bool
		geometryType string
	}{
		{"center hits sphere", 8, 6, true, "sphere"},
		{"bottom hits plane", 8, 11, true, "plane"},
		{"top corner misses", 0, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, fmt.Sprintf("/api/inspect?x=%d&y=%d", tt.x, tt.y), testScene)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			var resp InspectResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, resp.Hit)
			}
			if resp.GeometryType != tt.geometryType {
				t.Errorf("Expected geometry %q, got %q", tt.geometryType, resp.GeometryType)
			}
		})
	}
}

func TestHandleInspect_SphereDetails(t *testing.T) {
	rec := post(t, "/api/inspect?x=8&y=6", testScene)
	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// The pixel center ray is close to straight ahead and meets the sphere near z = -1.5
	if math.Abs(resp.Point[2]+1.5) > 0.05 {
		t.Errorf("Expected hit near z=-1.5, got %v", resp.Point)
	}
	if resp.Normal[2] < 0.9 {
		t.Errorf("Expected normal facing the camera, got %v", resp.Normal)
	}
	if resp.Properties["radius"] != 0.5 {
		t.Errorf("Expected radius 0.5, got %v", resp.Properties["radius"])
	}
	if resp.Material["albedo"] != 1.0 {
		t.Errorf("Expected albedo 1, got %v", resp.Material["albedo"])
	}
	if resp.Color[1] != 0 || resp.Color[2] != 0 {
		t.Errorf("Expected a pure red shade, got %v", resp.Color)
	}
}

func TestHandleInspect_BadCoordinates(t *testing.T) {
	for _, target := range []string{"/api/inspect", "/api/inspect?x=16&y=0", "/api/inspect?x=1&y=-1"} {
		rec := post(t, target, testScene)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}
