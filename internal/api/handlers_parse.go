package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dgallion1/crfcf/internal/ast"
	"github.com/dgallion1/crfcf/internal/parser"
	"github.com/dgallion1/crfcf/internal/render"
)

// handleParse parses a CRFCF document synchronously. The request body is
// the raw document text; the response carries the projected tree.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	tree, ok := s.parseBody(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"document": tree})
}

// handleRender parses the request body and returns a rendition selected
// by the format query parameter: "html" (default) or "markdown".
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}
	if format != "html" && format != "markdown" {
		jsonError(w, "format must be html or markdown", http.StatusBadRequest)
		return
	}

	tree, ok := s.parseBody(w, r)
	if !ok {
		return
	}

	switch format {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, render.Markdown(tree))
	case "html":
		out, err := render.HTML(tree)
		if err != nil {
			jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, out)
	}
}

func (s *Server) handleParseStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"parse":       s.stats.Snapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

// parseBody reads and parses the request body, writing the error response
// itself when parsing fails. A structural violation maps to 422 with the
// offending line number.
func (s *Server) parseBody(w http.ResponseWriter, r *http.Request) (*ast.Node, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if len(data) == 0 {
		jsonError(w, "request body is required", http.StatusBadRequest)
		return nil, false
	}

	start := time.Now()
	tree, err := parser.Parse(string(data))
	elapsed := time.Since(start)
	s.stats.Record(elapsed.Microseconds())

	if err != nil {
		s.metrics.ObserveParse("error", elapsed)
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"error": synErr.Error(),
				"line":  synErr.Line,
			})
			return nil, false
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	s.metrics.ObserveParse("ok", elapsed)
	return tree, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
