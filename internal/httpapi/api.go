package httpapi

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-mdcheck/internal/lint"
	"github.com/goliatone/go-mdcheck/internal/logging"
	"github.com/goliatone/go-mdcheck/internal/runtimeconfig"
	"github.com/goliatone/go-mdcheck/pkg/interfaces"
)

// LintPath is the routing prefix reserved for the linting endpoint; every
// other path reaches the MDX validation handler.
const LintPath = "/markdownlint"

const (
	queryFilename = "filename"
	queryFix      = "fix"

	methodNotAllowedBody = "Only POST is supported"
	mdxSuccessBody       = "MDX compiled successfully"
	mdxErrorPrefix       = "MDX parse failure: "
	lintFailurePrefix    = "lint execution failed: "
)

// Linter is the lint capability consumed by the API. One call is one
// synchronous pass over the supplied documents.
type Linter interface {
	Lint(ctx context.Context, docs map[string]string) (lint.Results, error)
}

// Compiler is the MDX compile capability consumed by the API.
type Compiler interface {
	Compile(document string) error
}

// lintResponse is the wire envelope of the linting endpoint. The shape is
// fixed for compatibility with callers that parse it; do not rename fields.
type lintResponse struct {
	Validations string  `json:"validations"`
	FixedText   *string `json:"fixedText"`
	ErrorNum    int     `json:"errorNum"`
}

// API routes inbound documents to the linting or MDX validation path. All
// state is request-scoped; the rule configuration is shared read-only.
type API struct {
	linter   Linter
	compiler Compiler
	cfg      runtimeconfig.LintConfig
	logger   interfaces.Logger
}

// New constructs the API with its collaborator capabilities. A nil logger
// falls back to the no-op implementation.
func New(linter Linter, compiler Compiler, cfg runtimeconfig.LintConfig, logger interfaces.Logger) *API {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &API{
		linter:   linter,
		compiler: compiler,
		cfg:      cfg.Clone(),
		logger:   logger,
	}
}

// ServeHTTP implements the request router: non-POST requests are rejected
// before the body is read, then the path selects exactly one handler.
func (api *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeText(w, http.StatusMethodNotAllowed, methodNotAllowedBody)
		return
	}

	logger := logging.WithRequestContext(api.logger, uuid.NewString(), r.URL.Path, "")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("request.body_read_failed", "error", err)
		writeText(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if r.URL.Path == LintPath {
		api.handleLint(w, r, string(body), logger)
		return
	}
	api.handleMDX(w, string(body), logger)
}

// handleLint runs the lint→fix→re-lint protocol. The authoritative violation
// count and positions always come from a fresh pass over the possibly-fixed
// text: fixes are not guaranteed to be exhaustive or non-interacting, so the
// post-fix state is never derived from the initial pass.
func (api *API) handleLint(w http.ResponseWriter, r *http.Request, body string, logger interfaces.Logger) {
	query := r.URL.Query()

	key := strings.TrimSpace(query.Get(queryFilename))
	if key == "" {
		key = api.cfg.DefaultKey
	}
	logger = logging.WithRequestContext(logger, "", "", key)

	initial, err := api.linter.Lint(r.Context(), map[string]string{key: body})
	if err != nil {
		// The source behavior left this failure unhandled; reporting 500
		// keeps the connection usable instead of crashing it.
		logger.Error("lint.pass_failed", "error", err)
		writeText(w, http.StatusInternalServerError, lintFailurePrefix+err.Error())
		return
	}

	final := initial
	var fixedText *string

	if parseBoolQuery(query.Get(queryFix), false) {
		fixable := lint.Fixable(initial.For(key))
		if len(fixable) > 0 {
			patched := lint.ApplyFixes(body, fixable)
			fixedText = &patched

			// Re-lint under the same document key so violation positions
			// stay comparable across the two passes.
			final, err = api.linter.Lint(r.Context(), map[string]string{key: patched})
			if err != nil {
				logger.Error("lint.reverify_failed", "error", err)
				writeText(w, http.StatusInternalServerError, lintFailurePrefix+err.Error())
				return
			}
			logger.Info("lint.fixed",
				"initial_violations", len(initial.For(key)),
				"fixed", len(fixable),
				"remaining", len(final.For(key)),
			)
		}
	}

	writeJSON(w, http.StatusOK, lintResponse{
		Validations: final.String(),
		FixedText:   fixedText,
		ErrorNum:    len(final.For(key)),
	})
}

func (api *API) handleMDX(w http.ResponseWriter, body string, logger interfaces.Logger) {
	if err := api.compiler.Compile(body); err != nil {
		logger.Warn("mdx.parse_failed", "error", err)
		writeText(w, http.StatusInternalServerError, mdxErrorPrefix+err.Error())
		return
	}
	writeText(w, http.StatusOK, mdxSuccessBody)
}
