package lint

import (
	"fmt"
	"regexp"
	"strings"
)

type ruleFunc func(r rule, doc *document) []Violation

type rule struct {
	ID          string
	Names       []string
	Description string
	fn          ruleFunc
}

// rules lists every built-in rule in identifier order. The engine consults the
// lint configuration to decide which of these participate in a pass.
var rules = []rule{
	{"MD009", []string{"no-trailing-spaces"}, "Trailing spaces", checkTrailingSpaces},
	{"MD010", []string{"no-hard-tabs"}, "Hard tabs", checkHardTabs},
	{"MD012", []string{"no-multiple-blanks"}, "Multiple consecutive blank lines", checkMultipleBlanks},
	{"MD013", []string{"line-length"}, "Line length", checkLineLength},
	{"MD018", []string{"no-missing-space-atx"}, "No space after hash on atx style heading", checkMissingSpaceATX},
	{"MD019", []string{"no-multiple-space-atx"}, "Multiple spaces after hash on atx style heading", checkMultipleSpaceATX},
	{"MD040", []string{"fenced-code-language"}, "Fenced code blocks should have a language specified", checkFencedCodeLanguage},
	{"MD041", []string{"first-line-heading", "first-line-h1"}, "First line in a file should be a top-level heading", checkFirstLineHeading},
	{"MD047", []string{"single-trailing-newline"}, "Files should end with a single newline character", checkSingleTrailingNewline},
}

func newViolation(r rule, line int) Violation {
	return Violation{
		LineNumber:  line,
		RuleID:      r.ID,
		RuleNames:   r.Names,
		Description: r.Description,
	}
}

func checkTrailingSpaces(r rule, doc *document) []Violation {
	var found []Violation
	for i, line := range doc.lines {
		trimmed := strings.TrimRight(line, " ")
		if trimmed == line {
			continue
		}
		count := len(line) - len(trimmed)
		v := newViolation(r, doc.lineNumber(i))
		v.Detail = fmt.Sprintf("Expected: 0; Actual: %d", count)
		v.ErrorRange = &Range{Column: len(trimmed) + 1, Length: count}
		v.FixInfo = &FixInfo{EditColumn: len(trimmed) + 1, DeleteCount: count}
		found = append(found, v)
	}
	return found
}

func checkHardTabs(r rule, doc *document) []Violation {
	spaces := doc.cfg.IntOption("MD010", "spaces_per_tab", 1)
	var found []Violation
	for i, line := range doc.lines {
		for pos, ch := range line {
			if ch != '\t' {
				continue
			}
			v := newViolation(r, doc.lineNumber(i))
			v.Detail = fmt.Sprintf("Column: %d", pos+1)
			v.ErrorRange = &Range{Column: pos + 1, Length: 1}
			v.FixInfo = &FixInfo{
				EditColumn:  pos + 1,
				DeleteCount: 1,
				InsertText:  strings.Repeat(" ", spaces),
			}
			found = append(found, v)
		}
	}
	return found
}

func checkMultipleBlanks(r rule, doc *document) []Violation {
	maximum := doc.cfg.IntOption("MD012", "maximum", 1)
	var found []Violation
	run := 0
	for i, line := range doc.lines {
		if doc.inFence[i] || strings.TrimSpace(line) != "" {
			run = 0
			continue
		}
		run++
		if run <= maximum {
			continue
		}
		v := newViolation(r, doc.lineNumber(i))
		v.Detail = fmt.Sprintf("Expected: %d; Actual: %d", maximum, run)
		v.FixInfo = &FixInfo{DeleteLine: true}
		found = append(found, v)
	}
	return found
}

func checkLineLength(r rule, doc *document) []Violation {
	limit := doc.cfg.IntOption("MD013", "line_length", 80)
	var found []Violation
	for i, line := range doc.lines {
		length := len([]rune(line))
		if length <= limit {
			continue
		}
		v := newViolation(r, doc.lineNumber(i))
		v.Detail = fmt.Sprintf("Expected: %d; Actual: %d", limit, length)
		v.ErrorRange = &Range{Column: limit + 1, Length: length - limit}
		found = append(found, v)
	}
	return found
}

var missingSpaceATXRe = regexp.MustCompile(`^(#{1,6})[^#\s]`)

func checkMissingSpaceATX(r rule, doc *document) []Violation {
	var found []Violation
	for i, line := range doc.lines {
		if doc.inFence[i] {
			continue
		}
		match := missingSpaceATXRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		hashes := len(match[1])
		v := newViolation(r, doc.lineNumber(i))
		v.Detail = fmt.Sprintf("Context: %q", truncateContext(line))
		v.ErrorRange = &Range{Column: 1, Length: hashes + 1}
		v.FixInfo = &FixInfo{EditColumn: hashes + 1, InsertText: " "}
		found = append(found, v)
	}
	return found
}

var multipleSpaceATXRe = regexp.MustCompile(`^(#{1,6})( {2,})\S`)

func checkMultipleSpaceATX(r rule, doc *document) []Violation {
	var found []Violation
	for i, line := range doc.lines {
		if doc.inFence[i] {
			continue
		}
		match := multipleSpaceATXRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		hashes := len(match[1])
		extra := len(match[2]) - 1
		v := newViolation(r, doc.lineNumber(i))
		v.Detail = fmt.Sprintf("Context: %q", truncateContext(line))
		v.ErrorRange = &Range{Column: hashes + 1, Length: len(match[2])}
		v.FixInfo = &FixInfo{EditColumn: hashes + 2, DeleteCount: extra}
		found = append(found, v)
	}
	return found
}

func checkFencedCodeLanguage(r rule, doc *document) []Violation {
	var found []Violation
	for _, fence := range doc.fenceOpens {
		if strings.TrimSpace(fence.info) != "" {
			continue
		}
		v := newViolation(r, doc.lineNumber(fence.line))
		v.ErrorRange = &Range{Column: 1, Length: len(doc.lines[fence.line])}
		found = append(found, v)
	}
	return found
}

var atxHeadingRe = regexp.MustCompile(`^(#{1,6})\s`)

func checkFirstLineHeading(r rule, doc *document) []Violation {
	level := doc.cfg.IntOption("MD041", "level", 1)
	for i, line := range doc.lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if match := atxHeadingRe.FindStringSubmatch(line); match != nil && len(match[1]) == level {
			return nil
		}
		v := newViolation(r, doc.lineNumber(i))
		v.Detail = fmt.Sprintf("Context: %q", truncateContext(line))
		return []Violation{v}
	}
	return nil
}

func checkSingleTrailingNewline(r rule, doc *document) []Violation {
	if len(doc.lines) == 0 || doc.endsWithNewline {
		return nil
	}
	last := len(doc.lines) - 1
	column := len(doc.lines[last]) + 1
	v := newViolation(r, doc.lineNumber(last))
	v.ErrorRange = &Range{Column: column - 1, Length: 1}
	v.FixInfo = &FixInfo{EditColumn: column, InsertText: "\n"}
	return []Violation{v}
}

// truncateContext keeps the rendered validations string readable when a long
// line triggers a context-bearing rule.
func truncateContext(line string) string {
	const max = 40
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max]) + "..."
}
