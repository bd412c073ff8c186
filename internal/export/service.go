package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Request describes one export of a document snapshot.
type Request struct {
	Format   Format
	Document types.ResumeDocument
	Revision uint64
	Template string
}

// Service runs exports, reporting progress through the notification hub.
type Service struct {
	renderer PDFRenderer
	hub      *notify.Hub
	logger   *zap.Logger
	opts     PDFOptions
	timeout  time.Duration
	group    singleflight.Group
}

// DefaultBuildTimeout bounds a shared build once it no longer follows any
// caller's context.
const DefaultBuildTimeout = 2 * time.Minute

// NewService creates an export service. hub and logger may be nil.
func NewService(renderer PDFRenderer, opts PDFOptions, hub *notify.Hub, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, hub: hub, logger: logger, opts: opts, timeout: DefaultBuildTimeout}
}

// Export builds the requested file. The loading indicator is engaged for
// the duration of the call and released on every path. Concurrent requests
// for the same format, revision and template share one build, which runs
// detached from any single caller so one caller going away does not fail
// the others.
func (s *Service) Export(ctx context.Context, req Request) (*File, error) {
	if s.hub != nil {
		release := s.hub.AcquireLoading()
		defer release()
	}

	key := fmt.Sprintf("%s/%d/%s", req.Format, req.Revision, req.Template)
	ch := s.group.DoChan(key, func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.buildAndNotify(buildCtx, req)
	})

	select {
	case <-ctx.Done():
		s.logger.Warn("export abandoned by caller",
			zap.String("format", string(req.Format)),
			zap.Uint64("revision", req.Revision),
			zap.Error(ctx.Err()),
		)
		return nil, &ExportError{Format: req.Format, Cause: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, &ExportError{Format: req.Format, Cause: res.Err}
		}
		return res.Val.(*File), nil
	}
}

// buildAndNotify runs once per coalesced build, so each build posts a
// single notification however many callers share it.
func (s *Service) buildAndNotify(ctx context.Context, req Request) (*File, error) {
	file, err := s.build(ctx, req)
	if err != nil {
		s.logger.Error("export failed",
			zap.String("format", string(req.Format)),
			zap.Uint64("revision", req.Revision),
			zap.Error(err),
		)
		s.notify(notify.KindError, failureMessage(req.Format))
		return nil, err
	}

	s.logger.Info("export completed",
		zap.String("format", string(req.Format)),
		zap.String("file", file.Name),
		zap.Int("bytes", len(file.Data)),
	)
	s.notify(notify.KindSuccess, successMessage(req.Format))
	return file, nil
}

// Build produces the file without notifications or coalescing. The CLI
// uses it directly.
func (s *Service) Build(ctx context.Context, req Request) (*File, error) {
	file, err := s.build(ctx, req)
	if err != nil {
		return nil, &ExportError{Format: req.Format, Cause: err}
	}
	return file, nil
}

func (s *Service) build(ctx context.Context, req Request) (*File, error) {
	markup, err := rendering.Render(req.Document, req.Template)
	if err != nil {
		return nil, err
	}
	css, err := rendering.Stylesheet(req.Template)
	if err != nil {
		return nil, err
	}
	title := FileName(req.Document, req.Format)

	var data []byte
	switch req.Format {
	case FormatWord:
		data, err = WordDocument(markup)
	case FormatPDF:
		if s.renderer == nil {
			return nil, fmt.Errorf("no pdf renderer configured")
		}
		data, err = s.renderer.RenderPDF(ctx, StandalonePage(title, markup, css), s.opts)
	case FormatPrint:
		data = []byte(PrintPage(title, markup, css))
	case FormatHTML:
		data = []byte(StandalonePage(title, markup, css))
	default:
		return nil, &UnsupportedFormatError{Format: string(req.Format)}
	}
	if err != nil {
		return nil, err
	}

	return &File{Name: title, ContentType: req.Format.ContentType(), Data: data}, nil
}

func (s *Service) notify(kind notify.Kind, message string) {
	if s.hub == nil || message == "" {
		return
	}
	s.hub.Notify(kind, message)
}

func successMessage(f Format) string {
	switch f {
	case FormatPDF:
		return "PDF downloaded successfully!"
	case FormatWord:
		return "Word document downloaded successfully!"
	}
	return ""
}

func failureMessage(f Format) string {
	switch f {
	case FormatPDF:
		return "Error downloading PDF. Please try again."
	case FormatWord:
		return "Error downloading Word document. Please try again."
	}
	return "Export failed. Please try again."
}
