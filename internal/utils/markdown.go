package utils

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bulletin-dev/bulletin/internal/logger"
)

// TextRenderer converts raw thread content into sanitized HTML for
// representations. Content is stored raw; rendering happens on read.
type TextRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewTextRenderer() *TextRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
	)
	return &TextRenderer{md: md, policy: bluemonday.UGCPolicy()}
}

// Render returns sanitized HTML. On conversion failure the raw text is
// still sanitized and returned, never dropped.
func (tr *TextRenderer) Render(text string) string {
	var buf bytes.Buffer
	if err := tr.md.Convert([]byte(text), &buf); err != nil {
		logger.Log.Error("markdown conversion failed", "error", err)
		return tr.policy.Sanitize(text)
	}
	return tr.policy.Sanitize(strings.TrimSpace(buf.String()))
}
