package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-mdcheck/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if fields == nil {
		fields = map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "mdcheck.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure WithContext does not panic and the noop keeps dropping entries.
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, lintModule)

	if len(provider.requested) != 1 || provider.requested[0] != lintModule {
		t.Fatalf("expected module %s, got %v", lintModule, provider.requested)
	}

	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}

	if got, ok := rec.fields[0]["module"]; !ok || got != lintModule {
		t.Fatalf("expected module field %s, got %v", lintModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestHTTPLoggerRequestsHTTPModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = HTTPLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != httpModule {
		t.Fatalf("expected http module request, got %v", provider.requested)
	}
}

func TestMDXLoggerRequestsMDXModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = MDXLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != mdxModule {
		t.Fatalf("expected mdx module request, got %v", provider.requested)
	}
}

func TestWithRequestContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithRequestContext(rec, "req-1", "", "readme")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldRequestID] != "req-1" {
		t.Fatalf("expected request id field, got %v", fields)
	}
	if _, ok := fields[fieldRequestPath]; ok {
		t.Fatalf("expected empty path to be skipped, got %v", fields)
	}
	if fields[fieldDocumentKey] != "readme" {
		t.Fatalf("expected document key field, got %v", fields)
	}
}
