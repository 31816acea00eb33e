// Package markdown renders countdown notes for terminal display.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/aBirrueta/Tick/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output. Empty or
// whitespace-only input renders to nil.
func Render(width, indent int, input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	renderWidth := width - indent
	if renderWidth < 1 {
		renderWidth = 1
	}

	rendered := value
	if formatted, ok := renderWith(noteRenderer(renderWidth), value); ok {
		rendered = formatted
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	if indent <= 0 {
		return []byte(rendered)
	}
	return []byte(indentBlock(rendered, indent))
}

// SafeRender is Render, but never lets a renderer failure escape: on
// panic it falls back to the unformatted input.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			value := internalstrings.NormalizeNewlines(string(input))
			value = internalstrings.TrimTrailingNewlines(value)
			if strings.TrimSpace(value) == "" {
				out = nil
				return
			}
			if indent > 0 {
				value = indentBlock(value, indent)
			}
			out = []byte(value)
		}
	}()
	return Render(width, indent, input)
}

func renderWith(r renderer, value string) (string, bool) {
	if r == nil {
		return "", false
	}
	formatted, err := r.Render(value)
	if err != nil {
		return "", false
	}
	return formatted, true
}

func noteRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	style.ImageText.Format = "Image: {{.text}} ->"
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
