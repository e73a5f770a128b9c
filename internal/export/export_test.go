package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/browser"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeRenderer records the HTML it was asked to render and returns a
// canned result.
type fakeRenderer struct {
	html string
	pdf  []byte
	err  error
}

func (f *fakeRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func exportResume() *types.Resume {
	r := types.NewResume()
	r.PersonalInfo = types.PersonalInfo{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Phone:    "13800138000",
		Location: "上海",
		Summary:  "资深后端工程师，专注于分布式系统。",
	}
	return r
}

func TestExport_ProducesArtifact(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4 fake")}
	svc := NewService(rendering.DefaultRegistry(), renderer)

	artifact, err := svc.Export(context.Background(), exportResume(), "")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), artifact.PDF)
	assert.Equal(t, "Alice_Smith.pdf", artifact.Filename)
	assert.True(t, strings.HasPrefix(renderer.html, "<!DOCTYPE html>"))
	assert.Contains(t, renderer.html, "Alice Smith")
}

func TestExport_UnknownTemplate(t *testing.T) {
	svc := NewService(rendering.DefaultRegistry(), &fakeRenderer{})

	artifact, err := svc.Export(context.Background(), exportResume(), "fancy")

	require.Nil(t, artifact)
	var notFound *rendering.TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "fancy", notFound.ID)
}

func TestExport_PropagatesRendererFailure(t *testing.T) {
	renderer := &fakeRenderer{err: &browser.RenderTimeoutError{}}
	svc := NewService(rendering.DefaultRegistry(), renderer)

	artifact, err := svc.Export(context.Background(), exportResume(), "minimal")

	require.Nil(t, artifact)
	var timeout *browser.RenderTimeoutError
	assert.ErrorAs(t, err, &timeout)
}

func TestExport_FilenameFallsBackWithoutName(t *testing.T) {
	r := exportResume()
	r.PersonalInfo.FullName = "张三"

	svc := NewService(rendering.DefaultRegistry(), &fakeRenderer{pdf: []byte("x")})
	artifact, err := svc.Export(context.Background(), r, "")

	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", artifact.Filename)
}

func TestGenerateHTML_DefaultsToMinimalTemplate(t *testing.T) {
	svc := NewService(rendering.DefaultRegistry(), &fakeRenderer{})

	byDefault, err := svc.GenerateHTML(exportResume(), "")
	require.NoError(t, err)
	byID, err := svc.GenerateHTML(exportResume(), rendering.DefaultTemplateID)
	require.NoError(t, err)

	assert.Equal(t, byID, byDefault)
}

func TestTemplates_ListsRegistry(t *testing.T) {
	svc := NewService(rendering.DefaultRegistry(), &fakeRenderer{})

	infos := svc.Templates()

	require.Len(t, infos, 2)
	assert.Equal(t, "minimal", infos[0].ID)
	assert.Equal(t, "standard", infos[1].ID)
}

func TestExport_RendererErrorPropagatesGeneric(t *testing.T) {
	cause := errors.New("engine crashed")
	svc := NewService(rendering.DefaultRegistry(), &fakeRenderer{err: cause})

	_, err := svc.Export(context.Background(), exportResume(), "")

	assert.ErrorIs(t, err, cause)
}
