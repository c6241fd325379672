package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-mdcheck/pkg/interfaces"
)

const (
	rootModule = "mdcheck"
	httpModule = "mdcheck.http"
	lintModule = "mdcheck.lint"
	mdxModule  = "mdcheck.mdx"
)

const (
	fieldRequestID   = "request_id"
	fieldRequestPath = "path"
	fieldDocumentKey = "document_key"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// HTTPLogger returns the logger namespace reserved for the HTTP API.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// LintLogger returns the logger namespace reserved for the lint engine.
func LintLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, lintModule)
}

// MDXLogger returns the logger namespace reserved for the MDX compiler.
func MDXLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mdxModule)
}

// WithRequestContext enriches the provided logger with common per-request
// fields such as the request ID, path, and document key. Empty values are
// ignored.
func WithRequestContext(logger interfaces.Logger, requestID, path, documentKey string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(requestID); trimmed != "" {
		fields[fieldRequestID] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldRequestPath] = trimmed
	}
	if trimmed := strings.TrimSpace(documentKey); trimmed != "" {
		fields[fieldDocumentKey] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (l noopLogger) WithContext(context.Context) interfaces.Logger { return l }
