// Package mdx implements the MDX compilation capability behind the
// validation endpoint. MDX layers JSX components, expressions, and ESM
// imports on top of Markdown; CommonMark rendering alone accepts almost any
// text, so the checks that actually reject malformed MDX live in the
// JSX-form scanner below. The Markdown portion is rendered through goldmark
// with the GFM extensions, mirroring how documents are processed downstream.
package mdx

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-mdcheck/internal/logging"
	"github.com/goliatone/go-mdcheck/pkg/interfaces"
)

const compileFailedCode = "MDX_PARSE_FAILED"

// ErrParseFailed is the sentinel wrapped into every compile failure.
var ErrParseFailed = errors.New("mdx parse failed")

// Compiler validates MDX documents. The compiler is stateless so a single
// instance can be shared across concurrent requests without locking.
type Compiler struct {
	engine goldmark.Markdown
	logger interfaces.Logger
}

// NewCompiler constructs a compiler with the GFM extension set enabled.
// A nil logger falls back to the no-op implementation.
func NewCompiler(logger interfaces.Logger) *Compiler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Compiler{
		engine: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
		),
		logger: logger,
	}
}

// Compile attempts to compile the document synchronously. It returns nil when
// the document is valid MDX; otherwise the error's message describes the
// first failure encountered, with a 1-based line number where one applies.
func (c *Compiler) Compile(document string) error {
	body := stripFrontMatter(document)

	if err := scanJSXForm(body); err != nil {
		c.logger.Debug("mdx.compile_failed", "error", err)
		return goerrors.Wrap(fmt.Errorf("%w: %v", ErrParseFailed, err), goerrors.CategoryValidation, "mdx compile failed").
			WithTextCode(compileFailedCode)
	}

	var buf bytes.Buffer
	if err := c.engine.Convert([]byte(body), &buf); err != nil {
		c.logger.Debug("mdx.render_failed", "error", err)
		return goerrors.Wrap(fmt.Errorf("%w: %v", ErrParseFailed, err), goerrors.CategoryValidation, "mdx compile failed").
			WithTextCode(compileFailedCode)
	}
	return nil
}

func stripFrontMatter(document string) string {
	var meta map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader([]byte(document)), &meta)
	if err != nil {
		return document
	}
	return string(rest)
}

var (
	fenceRe  = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
	tagRe    = regexp.MustCompile(`<(/?)([A-Za-z][A-Za-z0-9.]*)((?:[^<>"']|"[^"]*"|'[^']*')*?)(/?)>`)
	importRe = regexp.MustCompile(`^import\s+(?:type\s+)?(?:[\w$]+|\*\s+as\s+[\w$]+|\{[^}]*\}|[\w$]+\s*,\s*\{[^}]*\})\s+from\s+["'][^"']+["'];?\s*$|^import\s+["'][^"']+["'];?\s*$`)
)

type openTag struct {
	name string
	line int
}

// scanJSXForm walks the document outside fenced code blocks and inline code
// spans, checking the MDX constructs a Markdown renderer cannot: component
// tags must balance, expression braces must balance, and import lines must be
// well-formed ESM statements.
func scanJSXForm(body string) error {
	lines := strings.Split(body, "\n")

	var stack []openTag
	braceDepth := 0
	braceOpenLine := 0
	inFence := false

	for i, line := range lines {
		lineNo := i + 1

		if fenceRe.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		text := maskInlineCode(line)

		if strings.HasPrefix(strings.TrimSpace(text), "import ") {
			if !importRe.MatchString(strings.TrimSpace(text)) {
				return fmt.Errorf("line %d: malformed import statement", lineNo)
			}
			continue
		}

		for _, match := range tagRe.FindAllStringSubmatch(text, -1) {
			closing := match[1] == "/"
			name := match[2]
			selfClosing := match[4] == "/"

			// Only capitalized names are JSX components; lowercase tags are
			// plain HTML and MDX tolerates them unbalanced.
			if !isComponentName(name) {
				continue
			}

			switch {
			case selfClosing:
			case closing:
				if len(stack) == 0 {
					return fmt.Errorf("line %d: unexpected closing tag </%s>", lineNo, name)
				}
				top := stack[len(stack)-1]
				if top.name != name {
					return fmt.Errorf("line %d: expected closing tag </%s> opened on line %d, found </%s>", lineNo, top.name, top.line, name)
				}
				stack = stack[:len(stack)-1]
			default:
				stack = append(stack, openTag{name: name, line: lineNo})
			}
		}

		for _, ch := range text {
			switch ch {
			case '{':
				if braceDepth == 0 {
					braceOpenLine = lineNo
				}
				braceDepth++
			case '}':
				braceDepth--
				if braceDepth < 0 {
					return fmt.Errorf("line %d: unexpected closing brace", lineNo)
				}
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return fmt.Errorf("line %d: unclosed tag <%s>", top.line, top.name)
	}
	if braceDepth != 0 {
		return fmt.Errorf("line %d: unclosed expression brace", braceOpenLine)
	}
	return nil
}

// maskInlineCode blanks out `code span` content so braces and angle brackets
// inside spans do not leak into the JSX checks. Span boundaries keep their
// width so later columns stay meaningful.
func maskInlineCode(line string) string {
	runes := []rune(line)
	inSpan := false
	for i, r := range runes {
		if r == '`' {
			inSpan = !inSpan
			runes[i] = ' '
			continue
		}
		if inSpan {
			runes[i] = ' '
		}
	}
	return string(runes)
}

func isComponentName(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	return first >= 'A' && first <= 'Z'
}
