// Package lint implements the Markdown rule engine consumed by the HTTP API.
//
// A lint pass evaluates one or more documents against an immutable rule
// configuration and produces ordered Violation records. Violations that carry
// fix metadata can be applied with ApplyFixes; a fresh pass over the patched
// text is always required to obtain the authoritative post-fix state, because
// a single fix can shift line numbers or textual context that invalidates
// other pending fixes.
//
// Rules follow the MDnnn naming convention:
//
//   - MD009: no-trailing-spaces - Trailing spaces
//   - MD010: no-hard-tabs - Hard tabs
//   - MD012: no-multiple-blanks - Multiple consecutive blank lines
//   - MD013: line-length - Line length
//   - MD018: no-missing-space-atx - No space after hash on atx style heading
//   - MD019: no-multiple-space-atx - Multiple spaces after hash on atx style heading
//   - MD040: fenced-code-language - Fenced code blocks should have a language
//   - MD041: first-line-heading - First line in a file should be a top-level heading
//   - MD047: single-trailing-newline - Files should end with a single newline character
//
// YAML or TOML front matter is stripped before rules run; violation line
// numbers always refer to the original document.
package lint
