package server

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/workspace"
	"go.uber.org/zap"
)

// TemplatesResponse lists the visual variants and the selected one.
type TemplatesResponse struct {
	Selected  string               `json:"selected"`
	Templates []rendering.Template `json:"templates"`
}

// TemplateRequest is the body of PUT /api/template.
type TemplateRequest struct {
	Template string `json:"template"`
}

// handleListTemplates returns the available templates
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Selected:  s.ws.Template(),
		Templates: rendering.Templates(),
	})
}

// handleSelectTemplate switches the selected template
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.ws.SelectTemplate(req.Template); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Selected:  s.ws.Template(),
		Templates: rendering.Templates(),
	})
}

// handlePreview returns the preview markup. ?template= renders a variant
// without changing the selection. ?format=html returns the bare fragment.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	preview, err := s.preview(r.URL.Query().Get("template"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Preview-Revision", fmt.Sprint(preview.Revision))
		_, _ = w.Write([]byte(preview.HTML))
		return
	}
	s.jsonResponse(w, http.StatusOK, preview)
}

func (s *Server) preview(templateName string) (workspace.Preview, error) {
	if templateName == "" || templateName == s.ws.Template() {
		return s.ws.Preview()
	}
	doc, rev := s.ws.Document()
	markup, err := rendering.Render(doc, templateName)
	if err != nil {
		return workspace.Preview{}, err
	}
	return workspace.Preview{HTML: markup, Revision: rev, Template: templateName}, nil
}

// handlePrint serves a standalone page that opens the print dialog on load
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, export.FormatPrint, false)
}

// handleExport serves a download in the requested format
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.serveExport(w, r, format, format == export.FormatPDF || format == export.FormatWord)
}

func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, format export.Format, attachment bool) {
	ctx := r.Context()
	if s.exportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.exportTimeout)
		defer cancel()
	}

	file, err := s.ws.Export(ctx, format)
	if err != nil {
		s.logger.Error("export request failed", zap.String("format", string(format)), zap.Error(err))
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	if attachment {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		s.logger.Warn("error writing export", zap.Error(err))
	}
}
