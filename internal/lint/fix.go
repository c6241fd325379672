package lint

import (
	"sort"
	"strings"
)

// Fixable returns the order-preserving subset of violations that carry fix
// metadata.
func Fixable(violations []Violation) []Violation {
	var fixable []Violation
	for _, v := range violations {
		if v.Fixable() {
			fixable = append(fixable, v)
		}
	}
	return fixable
}

// ApplyFixes applies every supplied fix to the document and returns the
// patched text. Edits are grouped per line and applied right-to-left so one
// patch cannot shift the columns of another; whole-line deletions happen
// last. Violations without fix metadata are ignored.
//
// Fixes are not guaranteed to be exhaustive or non-interacting, so callers
// must re-lint the returned text to obtain the authoritative post-fix state.
func ApplyFixes(doc string, violations []Violation) string {
	lines, endsWithNewline := splitLines(doc)
	if lines == nil {
		return doc
	}

	byLine := make(map[int][]*FixInfo)
	deleted := make(map[int]bool)
	for _, v := range violations {
		if v.FixInfo == nil {
			continue
		}
		index := v.LineNumber - 1
		if index < 0 || index >= len(lines) {
			continue
		}
		if v.FixInfo.DeleteLine {
			deleted[index] = true
			continue
		}
		byLine[index] = append(byLine[index], v.FixInfo)
	}

	for index, fixes := range byLine {
		if deleted[index] {
			continue
		}
		sort.SliceStable(fixes, func(i, j int) bool {
			return fixes[i].EditColumn > fixes[j].EditColumn
		})
		line := lines[index]
		for _, fix := range fixes {
			line = applyEdit(line, fix)
		}
		lines[index] = line
	}

	if len(deleted) > 0 {
		kept := make([]string, 0, len(lines))
		for i, line := range lines {
			if deleted[i] {
				continue
			}
			kept = append(kept, line)
		}
		lines = kept
	}

	patched := strings.Join(lines, "\n")
	if endsWithNewline {
		patched += "\n"
	}
	return patched
}

func applyEdit(line string, fix *FixInfo) string {
	column := fix.EditColumn
	if column < 1 {
		column = 1
	}
	if column > len(line)+1 {
		column = len(line) + 1
	}
	start := column - 1

	end := start
	switch {
	case fix.DeleteCount < 0:
		end = len(line)
	default:
		end = start + fix.DeleteCount
		if end > len(line) {
			end = len(line)
		}
	}

	return line[:start] + fix.InsertText + line[end:]
}
