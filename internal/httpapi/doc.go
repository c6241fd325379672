// Package httpapi exposes the document validation endpoints.
//
// Two POST-only routes share one handler:
//   - /markdownlint?filename=<name>&fix=<true|false> runs a lint pass over
//     the request body and optionally applies automatic fixes followed by a
//     fresh verification pass. The response is always 200 with a JSON
//     envelope; violations are data, not a failure of the service.
//   - every other path treats the body as an MDX document and reports plain
//     text: 200 on success, 500 with the parse detail on failure.
//
// The two envelopes are deliberately distinct; callers distinguish them by
// the endpoint they invoked, never by sniffing the body.
package httpapi
