// Package workspace wires the document model, form synchronizer, preview
// renderer, exporters and notification hub into one editing session.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// User-facing messages.
const (
	MsgTemplateChanged = "Template changed successfully!"
	MsgSampleLoaded    = "Sample data loaded successfully!"
	MsgCleared         = "All data cleared successfully!"
	MsgEntryRemoved    = "Entry removed"
	MsgSaved           = "Resume data saved!"
	MsgSubmitted       = "Resume updated successfully!"
	MsgMissingRequired = "Please fill in all required fields."
)

// Options configures a Workspace.
type Options struct {
	Template        string
	NotificationTTL time.Duration
	PDF             export.PDFOptions
	Renderer        export.PDFRenderer
	Logger          *zap.Logger
}

// Preview is one rendered preview tagged with what it was rendered from.
type Preview struct {
	HTML     string `json:"html"`
	Revision uint64 `json:"revision"`
	Template string `json:"template"`
}

// Workspace is a single editing session.
type Workspace struct {
	model    *document.Model
	sync     *formsync.Synchronizer
	hub      *notify.Hub
	exporter *export.Service
	logger   *zap.Logger

	mu       sync.RWMutex
	template string

	previewMu sync.Mutex
	preview   *Preview
}

// New creates a workspace with an empty document.
func New(opts Options) (*Workspace, error) {
	tmpl, err := rendering.LookupTemplate(opts.Template)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	model := document.New()
	hub := notify.NewHub(opts.NotificationTTL)
	w := &Workspace{
		model:    model,
		sync:     formsync.New(model),
		hub:      hub,
		exporter: export.NewService(opts.Renderer, opts.PDF, hub, log),
		logger:   log,
		template: tmpl.Name,
	}
	model.OnChange(w.onChange)
	return w, nil
}

// Hub returns the notification hub.
func (w *Workspace) Hub() *notify.Hub { return w.hub }

// Synchronizer returns the form synchronizer bound to the document.
func (w *Workspace) Synchronizer() *formsync.Synchronizer { return w.sync }

// Document returns a snapshot of the document and its revision.
func (w *Workspace) Document() (types.ResumeDocument, uint64) {
	return w.model.SnapshotAt()
}

// Template returns the selected template name.
func (w *Workspace) Template() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.template
}

// SelectTemplate switches the visual variant used for preview and export.
func (w *Workspace) SelectTemplate(name string) error {
	tmpl, err := rendering.LookupTemplate(name)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.template = tmpl.Name
	w.mu.Unlock()

	w.logger.Debug("template selected", zap.String("template", tmpl.Name))
	w.publishPreview(w.model.Revision())
	w.hub.Success(MsgTemplateChanged)
	return nil
}

// Import replaces the document wholesale.
func (w *Workspace) Import(doc types.ResumeDocument) {
	w.model.ReplaceAll(doc)
}

// LoadSample replaces the document with the fixed sample dataset.
func (w *Workspace) LoadSample() {
	w.model.ReplaceAll(document.Sample())
	w.hub.Success(MsgSampleLoaded)
}

// Clear resets the document. Without confirmation nothing changes.
func (w *Workspace) Clear(confirmed bool) error {
	if !confirmed {
		return ErrClearNotConfirmed
	}
	w.model.Reset()
	w.hub.Success(MsgCleared)
	return nil
}

// AddEntry appends an empty entry to section.
func (w *Workspace) AddEntry(section types.Section) (types.EntryID, int, error) {
	return w.model.Append(section)
}

// RemoveEntry removes the entry with the given id.
func (w *Workspace) RemoveEntry(section types.Section, id types.EntryID) bool {
	if !w.model.Remove(section, id) {
		return false
	}
	w.hub.Success(MsgEntryRemoved)
	return true
}

// RemoveEntryAt removes the entry at a display index; out of range is a no-op.
func (w *Workspace) RemoveEntryAt(section types.Section, index int) bool {
	if !w.model.RemoveAt(section, index) {
		return false
	}
	w.hub.Success(MsgEntryRemoved)
	return true
}

// AddSkill adds a trimmed, non-duplicate skill.
func (w *Workspace) AddSkill(text string) bool { return w.model.AddSkill(text) }

// RemoveSkill removes a skill by exact text.
func (w *Workspace) RemoveSkill(text string) bool { return w.model.RemoveSkill(text) }

// Input applies one form input event.
func (w *Workspace) Input(in formsync.Input) formsync.Result {
	res := w.sync.Apply(in)
	if !res.Applied {
		w.logger.Debug("input dropped",
			zap.String("name", in.Name),
			zap.String("section", string(in.Section)),
			zap.Uint64("id", uint64(in.ID)),
			zap.String("field", in.Field),
			zap.String("value", logger.TruncateForLog(in.Value, 40)),
		)
	}
	return res
}

// Submit validates the required contact fields and reports the outcome.
func (w *Workspace) Submit() formsync.SubmitResult {
	res := w.sync.Submit()
	if res.Valid {
		w.hub.Success(MsgSubmitted)
	} else {
		w.hub.Error(MsgMissingRequired)
	}
	return res
}

// Save acknowledges a save request. The document lives in memory only.
func (w *Workspace) Save() {
	w.hub.Success(MsgSaved)
}

// Preview returns the rendered preview for the current revision and
// template, reusing the last render when neither has changed.
func (w *Workspace) Preview() (Preview, error) {
	doc, rev := w.model.SnapshotAt()
	tmpl := w.Template()

	w.previewMu.Lock()
	defer w.previewMu.Unlock()
	if p := w.preview; p != nil && p.Revision == rev && p.Template == tmpl {
		return *p, nil
	}

	markup, err := rendering.Render(doc, tmpl)
	if err != nil {
		return Preview{}, err
	}
	w.preview = &Preview{HTML: markup, Revision: rev, Template: tmpl}
	return *w.preview, nil
}

// Export builds a file in the given format from the current document.
func (w *Workspace) Export(ctx context.Context, format export.Format) (*export.File, error) {
	doc, rev := w.model.SnapshotAt()
	return w.exporter.Export(ctx, export.Request{
		Format:   format,
		Document: doc,
		Revision: rev,
		Template: w.Template(),
	})
}

// StartAutoSave runs the auto-save notifier until ctx is cancelled.
func (w *Workspace) StartAutoSave(ctx context.Context, interval time.Duration, threshold float64) {
	saver := notify.NewAutoSaver(w.hub)
	if interval > 0 {
		saver.Interval = interval
	}
	saver.Threshold = threshold
	go saver.Run(ctx)
}

func (w *Workspace) onChange(c document.Change) {
	w.logger.Debug("document changed",
		zap.String("kind", string(c.Kind)),
		zap.String("section", string(c.Section)),
		zap.Uint64("revision", c.Revision),
	)
	w.publishPreview(c.Revision)
}

func (w *Workspace) publishPreview(rev uint64) {
	w.hub.Publish(notify.Event{
		Type: notify.EventPreview,
		Data: notify.PreviewState{Revision: rev, Template: w.Template()},
	})
}
