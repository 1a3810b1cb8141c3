package server

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderResponse carries the encoded image and render statistics
type RenderResponse struct {
	Name      string `json:"name"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded image in Format
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	Tiles    int     `json:"tiles"`
	Workers  int     `json:"workers"`
	Samples  int     `json:"samples"`
	Hits     int     `json:"hits"`
	HitRatio float64 `json:"hitRatio"`
}

// handleRender renders the posted scene file and returns the encoded image.
// Query parameters workers, aa, bounces and exposure override the scene.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	sc, err := readScene(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid scene"))
		return
	}

	config, err := applyRenderParams(r, sc)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid request"))
		return
	}

	rend, err := renderer.New(sc, config)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// The request context stops the render when the client disconnects
	img, stats, err := rend.RenderImage(r.Context())
	if err != nil {
		logger.Warningf("render failed: %v", err)
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, img, sc.Options.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Name:      sc.Options.OutputName,
		Format:    sc.Options.Format,
		Width:     sc.Options.Width,
		Height:    sc.Options.Height,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			Tiles:    stats.Tiles,
			Workers:  len(stats.Workers),
			Samples:  stats.Samples,
			Hits:     stats.Hits,
			HitRatio: stats.HitRatio(),
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// applyRenderParams applies query overrides to the scene options and returns
// the render configuration.
func applyRenderParams(r *http.Request, sc *scene.Scene) (renderer.Config, error) {
	query := r.URL.Query()
	config := renderer.DefaultConfig()

	if v, ok, err := parseIntParam(query, "workers", 0, 256); err != nil {
		return config, err
	} else if ok {
		config.Workers = v
	}
	if v, ok, err := parseIntParam(query, "aa", 1, 16); err != nil {
		return config, err
	} else if ok {
		sc.Options.Supersample = v
	}
	if v, ok, err := parseIntParam(query, "bounces", 0, 64); err != nil {
		return config, err
	} else if ok {
		sc.Options.MaxBounces = v
	}
	if v, ok, err := parseFloatParam(query, "exposure", 0, 1000); err != nil {
		return config, err
	} else if ok {
		sc.Options.Exposure = v
	}

	if sc.Options.SampleWidth()*sc.Options.SampleHeight() > maxSamples {
		return config, errors.Errorf("%dx%d samples exceed the limit of %d",
			sc.Options.SampleWidth(), sc.Options.SampleHeight(), maxSamples)
	}
	return config, nil
}
