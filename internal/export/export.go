// Package export wires the template registry and the rendering engine into
// the end-to-end resume export pipeline.
package export

import (
	"context"

	"github.com/jonathan/resume-builder/internal/browser"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Renderer converts an HTML document into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Artifact is a finished export: the PDF bytes plus the suggested
// download filename.
type Artifact struct {
	PDF      []byte
	Filename string
}

// Service runs the export pipeline: template lookup, HTML generation,
// PDF rendering. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	registry *rendering.Registry
	renderer Renderer
}

// NewService creates an export service over the given registry and renderer.
func NewService(registry *rendering.Registry, renderer Renderer) *Service {
	return &Service{registry: registry, renderer: renderer}
}

// Templates lists the selectable templates.
func (s *Service) Templates() []rendering.TemplateInfo {
	return s.registry.List()
}

// GenerateHTML renders just the markup document for a record, without
// invoking the engine. Used by previews and tests.
func (s *Service) GenerateHTML(r *types.Resume, templateID string) (string, error) {
	if templateID == "" {
		templateID = rendering.DefaultTemplateID
	}
	tmpl, err := s.registry.Get(templateID)
	if err != nil {
		return "", err
	}
	return tmpl.Generate(r)
}

// Export runs the full pipeline for one record. On failure the error is one
// of the pipeline taxonomy: TemplateNotFoundError, TemplateError,
// EngineNotFoundError, RenderTimeoutError, or RenderError. A result is
// either a complete artifact or an error, never both.
func (s *Service) Export(ctx context.Context, r *types.Resume, templateID string) (*Artifact, error) {
	html, err := s.GenerateHTML(r, templateID)
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		PDF:      pdf,
		Filename: rendering.SanitizeFilename(r.PersonalInfo.FullName) + ".pdf",
	}, nil
}

// Ensure the concrete renderer satisfies the interface.
var _ Renderer = (*browser.PDFRenderer)(nil)
