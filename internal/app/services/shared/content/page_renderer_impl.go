package content

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"path"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/pkg/dto/responses"
	"shrm-web/internal/pkg/exceptions"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

//go:embed pages/*.md
var pagesFS embed.FS

type pageRenderer struct {
	pages map[string]*responses.Page
	Log   *zap.Logger
}

// NewPageRenderer renders every embedded page once. Raw HTML is allowed in the
// Markdown source and the result is passed through a sanitizing policy.
func NewPageRenderer(logger *zap.Logger) (contracts.PageContent, error) {
	markdown := newMarkdown()
	policy := newPolicy()

	renderer := &pageRenderer{
		pages: make(map[string]*responses.Page),
		Log:   logger,
	}

	entries, err := fs.ReadDir(pagesFS, "pages")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		source, err := pagesFS.ReadFile(path.Join("pages", entry.Name()))
		if err != nil {
			return nil, exceptions.ErrRenderContent(err, name)
		}

		body, err := renderMarkdown(markdown, policy, source)
		if err != nil {
			return nil, exceptions.ErrRenderContent(err, name)
		}

		renderer.pages[name] = &responses.Page{
			Name:  name,
			Title: pageTitle(source),
			Body:  body,
		}
	}

	logger.Info("pageRenderer pages rendered", zap.Int("count", len(renderer.pages)))
	return renderer, nil
}

func (r *pageRenderer) Page(name string) (*responses.Page, error) {
	page, ok := r.pages[name]
	if !ok {
		return nil, exceptions.ErrPageNotFound(nil)
	}
	return page, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(goldmarkHTML.WithUnsafe()),
	)
}

func newPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	return policy
}

func renderMarkdown(markdown goldmark.Markdown, policy *bluemonday.Policy, source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	err := markdown.Convert(source, &buf)
	if err != nil {
		return "", err
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}

// pageTitle returns the text of the first level one heading.
func pageTitle(source []byte) string {
	for _, line := range strings.Split(string(source), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
