package lint

import (
	"bytes"
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-mdcheck/internal/logging"
	"github.com/goliatone/go-mdcheck/internal/runtimeconfig"
	"github.com/goliatone/go-mdcheck/pkg/interfaces"
)

const lintFailedCode = "LINT_EXECUTION_FAILED"

// Engine evaluates documents against an immutable rule configuration. The
// engine is stateless per pass and safe for concurrent use; the configuration
// is copied at construction and never mutated.
type Engine struct {
	cfg    runtimeconfig.LintConfig
	logger interfaces.Logger
}

// NewEngine constructs a lint engine bound to the provided configuration.
// A nil logger falls back to the no-op implementation.
func NewEngine(cfg runtimeconfig.LintConfig, logger interfaces.Logger) *Engine {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Engine{cfg: cfg.Clone(), logger: logger}
}

// Config exposes the engine's rule configuration for callers that need the
// default document key.
func (e *Engine) Config() runtimeconfig.LintConfig {
	return e.cfg.Clone()
}

// Lint runs one synchronous pass over every submitted document and returns
// results ordered by document key. The pass is deterministic: identical input
// always yields identical results.
func (e *Engine) Lint(ctx context.Context, docs map[string]string) (Results, error) {
	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make(Results, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "lint pass cancelled").
				WithTextCode(lintFailedCode)
		}

		violations := e.lintDocument(docs[key])
		e.logger.Debug("lint.pass", "document_key", key, "violations", len(violations))
		results = append(results, Result{Key: key, Violations: violations})
	}
	return results, nil
}

func (e *Engine) lintDocument(body string) []Violation {
	doc := prepare(body, e.cfg)

	var violations []Violation
	for _, r := range rules {
		if !e.cfg.RuleEnabled(r.ID) {
			continue
		}
		violations = append(violations, r.fn(r, doc)...)
	}
	sortViolations(violations)
	return violations
}

type fenceOpen struct {
	line int
	info string
}

// document is the per-pass view of one Markdown body: front matter stripped,
// split into lines, with fenced code regions masked so text rules skip them.
// Line numbers reported to callers stay in original document coordinates.
type document struct {
	lines           []string
	endsWithNewline bool
	offset          int
	inFence         []bool
	fenceOpens      []fenceOpen
	cfg             runtimeconfig.LintConfig
}

// lineNumber converts a 0-based body line index into a 1-based line number in
// the original document, accounting for stripped front matter.
func (d *document) lineNumber(index int) int {
	return index + 1 + d.offset
}

func prepare(body string, cfg runtimeconfig.LintConfig) *document {
	stripped, offset := stripFrontMatter(body)

	lines, endsWithNewline := splitLines(stripped)
	doc := &document{
		lines:           lines,
		endsWithNewline: endsWithNewline,
		offset:          offset,
		cfg:             cfg,
	}
	doc.inFence, doc.fenceOpens = scanFences(lines)
	return doc
}

// stripFrontMatter removes a leading YAML or TOML front matter block and
// returns the remaining body plus the number of lines consumed. Documents
// with malformed front matter are linted as-is.
func stripFrontMatter(body string) (string, int) {
	var meta map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader([]byte(body)), &meta)
	if err != nil {
		return body, 0
	}
	stripped := string(rest)
	if stripped == body {
		return body, 0
	}
	offset := strings.Count(body, "\n") - strings.Count(stripped, "\n")
	if offset < 0 {
		offset = 0
	}
	return stripped, offset
}

func splitLines(body string) ([]string, bool) {
	if body == "" {
		return nil, false
	}
	endsWithNewline := strings.HasSuffix(body, "\n")
	lines := strings.Split(body, "\n")
	if endsWithNewline {
		lines = lines[:len(lines)-1]
	}
	return lines, endsWithNewline
}

var fenceMarkerRe = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})(.*)$")

func scanFences(lines []string) ([]bool, []fenceOpen) {
	inFence := make([]bool, len(lines))
	var opens []fenceOpen

	openMarker := ""
	for i, line := range lines {
		match := fenceMarkerRe.FindStringSubmatch(line)
		if match == nil {
			if openMarker != "" {
				inFence[i] = true
			}
			continue
		}
		marker := match[1]
		if openMarker == "" {
			openMarker = marker[:1]
			opens = append(opens, fenceOpen{line: i, info: match[2]})
			inFence[i] = true
			continue
		}
		// A closing fence must use the same marker character.
		if strings.HasPrefix(marker, openMarker) {
			openMarker = ""
		}
		inFence[i] = true
	}
	return inFence, opens
}
