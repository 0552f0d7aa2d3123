// Package markup renders user-authored lightweight markup to HTML safe for
// embedding in a page. Input is always the stored raw content field; output
// of Format must never be fed back in.
package markup

import (
	"bytes"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Formatter struct {
	render func(source []byte, w io.Writer) error
	policy *bluemonday.Policy
}

// New returns a formatter for post and trail bodies: paragraphs, line
// breaks, emphasis, lists, links (bare URLs autolinked), blockquotes and
// code. Headings are stripped to their text; use NewWithHeadings where
// long-form content is expected.
func New() *Formatter {
	return newFormatter(basePolicy())
}

func NewWithHeadings() *Formatter {
	policy := basePolicy()
	policy.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	return newFormatter(policy)
}

func newFormatter(policy *bluemonday.Policy) *Formatter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	return &Formatter{
		render: func(source []byte, w io.Writer) error {
			return md.Convert(source, w)
		},
		policy: policy,
	}
}

// basePolicy is a strict allow-list: anything not named here is stripped.
// Raw HTML in the source never reaches the output because the renderer
// escapes it (WithUnsafe is not set) and the policy drops whatever remains.
func basePolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "em", "strong", "ul", "ol", "li", "blockquote", "code", "pre")
	policy.AllowAttrs("href", "target", "rel").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Format renders raw markup to sanitized HTML. Formatting is best-effort:
// if rendering fails the raw input is returned unchanged so the content is
// still displayable.
func (f *Formatter) Format(raw string) string {
	var buf bytes.Buffer
	if err := f.render([]byte(raw), &buf); err != nil {
		return raw
	}

	return f.policy.Sanitize(buf.String())
}
