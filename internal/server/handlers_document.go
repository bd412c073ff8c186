package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxDocumentBytes bounds imported documents.
const maxDocumentBytes = 1 << 20

// DocumentResponse is a document snapshot tagged with its revision.
type DocumentResponse struct {
	Revision uint64               `json:"revision"`
	Template string               `json:"template"`
	Document types.ResumeDocument `json:"document"`
}

// ClearRequest must carry confirm=true for the clear to happen.
type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

// EntryResponse identifies an appended entry.
type EntryResponse struct {
	Section types.Section `json:"section"`
	ID      types.EntryID `json:"id"`
	Index   int           `json:"index"`
}

// SkillRequest is the body of POST /api/skills.
type SkillRequest struct {
	Skill string `json:"skill"`
}

// ChangedResponse reports whether a mutation did anything.
type ChangedResponse struct {
	Changed bool `json:"changed"`
}

func (s *Server) documentResponse() DocumentResponse {
	doc, rev := s.ws.Document()
	return DocumentResponse{Revision: rev, Template: s.ws.Template(), Document: doc}
}

// handleGetDocument returns the current document snapshot
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.documentResponse())
}

// handleImportDocument replaces the document with a schema-validated upload
func (s *Server) handleImportDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(data) > maxDocumentBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "document too large")
		return
	}

	doc, err := schemas.DecodeDocument(data)
	if err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			s.writeError(w, err)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.ws.Import(doc)
	s.jsonResponse(w, http.StatusOK, s.documentResponse())
}

// handleLoadSample loads the sample dataset
func (s *Server) handleLoadSample(w http.ResponseWriter, _ *http.Request) {
	s.ws.LoadSample()
	s.jsonResponse(w, http.StatusOK, s.documentResponse())
}

// handleClear resets the document after explicit confirmation
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.ws.Clear(req.Confirm); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.documentResponse())
}

// handleInput applies one form input event. Unresolvable input is
// acknowledged with applied=false rather than an error.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var in formsync.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.ws.Input(in))
}

// handleAddEntry appends an empty entry to a list section
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	section := types.Section(r.PathValue("section"))
	id, index, err := s.ws.AddEntry(section)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, EntryResponse{Section: section, ID: id, Index: index})
}

// handleRemoveEntry removes an entry by its stable id
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	section, ok := s.sectionParam(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be a non-negative integer"})
		return
	}
	if !s.ws.RemoveEntry(section, types.EntryID(id)) {
		s.writeError(w, &ErrNotFound{What: "entry " + r.PathValue("id")})
		return
	}
	s.jsonResponse(w, http.StatusOK, ChangedResponse{Changed: true})
}

// handleRemoveEntryAt removes the entry at a display index. An index out of
// range is a no-op, not an error.
func (s *Server) handleRemoveEntryAt(w http.ResponseWriter, r *http.Request) {
	section, ok := s.sectionParam(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "index", Message: "must be an integer"})
		return
	}
	s.jsonResponse(w, http.StatusOK, ChangedResponse{Changed: s.ws.RemoveEntryAt(section, index)})
}

// handleAddSkill adds a skill; blank and duplicate skills are ignored
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ChangedResponse{Changed: s.ws.AddSkill(req.Skill)})
}

// handleRemoveSkill removes a skill by exact text
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, ChangedResponse{Changed: s.ws.RemoveSkill(r.PathValue("skill"))})
}

// handleSubmit checks the required contact fields
func (s *Server) handleSubmit(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.ws.Submit())
}

// handleSave acknowledges a save; nothing is persisted
func (s *Server) handleSave(w http.ResponseWriter, _ *http.Request) {
	s.ws.Save()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sectionParam(w http.ResponseWriter, r *http.Request) (types.Section, bool) {
	section := types.Section(r.PathValue("section"))
	if !section.Valid() {
		s.writeError(w, &document.UnknownSectionError{Section: section})
		return "", false
	}
	return section, true
}
