package lint

import (
	"fmt"
	"sort"
	"strings"
)

// Range locates the offending span within a line. Columns are 1-based.
type Range struct {
	Column int
	Length int
}

// FixInfo describes a deterministic single-violation patch. EditColumn is
// 1-based; DeleteCount -1 removes everything from EditColumn through the end
// of the line; DeleteLine removes the whole line regardless of the other
// fields.
type FixInfo struct {
	EditColumn  int
	DeleteCount int
	InsertText  string
	DeleteLine  bool
}

// Violation is one lint finding: the rule that fired, where, and optionally
// how to correct it.
type Violation struct {
	LineNumber  int
	RuleID      string
	RuleNames   []string
	Description string
	Detail      string
	ErrorRange  *Range
	FixInfo     *FixInfo
}

// Fixable reports whether the violation carries fix metadata.
func (v Violation) Fixable() bool {
	return v.FixInfo != nil
}

// moniker renders the rule identity the way callers expect it in the
// validations string, e.g. "MD018/no-missing-space-atx".
func (v Violation) moniker() string {
	if len(v.RuleNames) == 0 {
		return v.RuleID
	}
	return v.RuleID + "/" + strings.Join(v.RuleNames, "/")
}

// Result is one document's outcome from a single lint pass.
type Result struct {
	Key        string
	Violations []Violation
}

// Results aggregates the outcome of one lint pass across all submitted
// documents, ordered by document key.
type Results []Result

// Count returns the total number of violations across all documents.
func (rs Results) Count() int {
	total := 0
	for _, result := range rs {
		total += len(result.Violations)
	}
	return total
}

// For returns the violations recorded for the given document key.
func (rs Results) For(key string) []Violation {
	for _, result := range rs {
		if result.Key == key {
			return result.Violations
		}
	}
	return nil
}

// String renders the results in the fixed wire format consumed by callers of
// the lint endpoint: one line per violation,
// "<key>: <line>: <RULE>/<alias> <description> [<detail>]".
func (rs Results) String() string {
	var builder strings.Builder
	for _, result := range rs {
		for _, v := range result.Violations {
			if builder.Len() > 0 {
				builder.WriteByte('\n')
			}
			fmt.Fprintf(&builder, "%s: %d: %s %s", result.Key, v.LineNumber, v.moniker(), v.Description)
			if v.Detail != "" {
				fmt.Fprintf(&builder, " [%s]", v.Detail)
			}
		}
	}
	return builder.String()
}

// sortViolations orders findings by position first, then rule ID, so output
// is deterministic for identical input.
func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.LineNumber != b.LineNumber {
			return a.LineNumber < b.LineNumber
		}
		ac, bc := 0, 0
		if a.ErrorRange != nil {
			ac = a.ErrorRange.Column
		}
		if b.ErrorRange != nil {
			bc = b.ErrorRange.Column
		}
		if ac != bc {
			return ac < bc
		}
		return a.RuleID < b.RuleID
	})
}
