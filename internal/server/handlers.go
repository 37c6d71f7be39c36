package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/matzehuels/sunburst/pkg/buildinfo"
	"github.com/matzehuels/sunburst/pkg/config"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// HeaderRenderID carries the id of a render or label request.
const HeaderRenderID = "X-Render-ID"

// HeaderCache reports "hit" when the response came from cache.
const HeaderCache = "X-Cache"

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type request struct {
	Hierarchy json.RawMessage  `json:"hierarchy"`
	Features  json.RawMessage  `json:"features,omitempty"`
	View      config.Chart     `json:"view"`
	FontScale config.FontScale `json:"font_scale"`
	Label     label.Options    `json:"label"`
	Format    string           `json:"format,omitempty"`
	Title     string           `json:"title,omitempty"`
	Scale     float64          `json:"scale,omitempty"`
	Refresh   bool             `json:"refresh,omitempty"`
}

type labelsResponse struct {
	ID         string                    `json:"id"`
	Placements []label.Placement         `json:"placements"`
	Stats      observability.LayoutStats `json:"stats"`
	Cached     bool                      `json:"cached"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Version,
		"build":   buildinfo.Current(),
	})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts := s.options(req)
	opts.Formats = []string{pipeline.FormatJSON}

	id := uuid.NewString()
	res, err := s.runner.Execute(r.Context(), input(req), opts)
	if err != nil {
		s.logger.Warn("labels failed", "id", id, "err", err)
		writeError(w, err)
		return
	}

	placements := res.Placements
	if placements == nil {
		placements = []label.Placement{}
	}
	w.Header().Set(HeaderRenderID, id)
	writeJSON(w, http.StatusOK, labelsResponse{
		ID:         id,
		Placements: placements,
		Stats:      res.Stats.Labels,
		Cached:     res.CacheInfo.LabelsHit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	format := req.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := errors.ValidateFormat(format, pipeline.Formats...); err != nil {
		writeError(w, err)
		return
	}
	opts := s.options(req)
	opts.Formats = []string{format}

	id := uuid.NewString()
	res, err := s.runner.Execute(r.Context(), input(req), opts)
	if err != nil {
		s.logger.Warn("render failed", "id", id, "format", format, "err", err)
		writeError(w, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentTypes[format])
	h.Set(HeaderRenderID, id)
	if res.CacheInfo.RenderHit {
		h.Set(HeaderCache, "hit")
	} else {
		h.Set(HeaderCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifacts[format])
}

// decode reads the request body over the server defaults.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (request, error) {
	req := request{
		View:      s.defaults.Chart,
		FontScale: s.defaults.FontScale,
		Label:     s.defaults.Label,
		Title:     s.defaults.Title,
		Scale:     s.defaults.Scale,
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return req, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request")
	}
	if len(req.Hierarchy) == 0 || string(req.Hierarchy) == "null" {
		return req, errors.New(errors.ErrCodeInvalidInput, "hierarchy is required")
	}
	return req, nil
}

func (s *Server) options(req request) pipeline.Options {
	return pipeline.Options{
		Chart:     req.View,
		FontScale: req.FontScale,
		Label:     req.Label,
		Title:     req.Title,
		Scale:     req.Scale,
		Refresh:   req.Refresh,
		Logger:    s.logger,
	}
}

func input(req request) pipeline.Input {
	in := pipeline.Input{Hierarchy: req.Hierarchy}
	if len(req.Features) > 0 && string(req.Features) != "null" {
		in.Features = req.Features
		in.FeaturesFormat = "json"
	}
	return in
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if cause := stderrors.Unwrap(err); cause != nil {
		msg += ": " + errors.UserMessage(cause)
	}
	writeJSON(w, errors.HTTPStatus(err), errorBody{Code: string(code), Message: msg})
}
