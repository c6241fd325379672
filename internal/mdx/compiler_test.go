package mdx

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileValidMarkdown(t *testing.T) {
	c := NewCompiler(nil)

	docs := []string{
		"# Title\n\nSome **bold** text.\n",
		"- list\n- items\n\n| a | b |\n|---|---|\n| 1 | 2 |\n",
		"",
	}
	for _, doc := range docs {
		if err := c.Compile(doc); err != nil {
			t.Fatalf("expected %q to compile, got %v", doc, err)
		}
	}
}

func TestCompileValidMDXComponents(t *testing.T) {
	c := NewCompiler(nil)

	doc := "import Chart from \"./chart\"\n\n# Report\n\n<Chart data={points} />\n\n<Note>\nRemember {user.name}.\n</Note>\n"
	if err := c.Compile(doc); err != nil {
		t.Fatalf("expected valid MDX to compile, got %v", err)
	}
}

func TestCompileUnclosedTag(t *testing.T) {
	c := NewCompiler(nil)

	err := c.Compile("# Title\n\n<Note>\nnever closed\n")
	if err == nil {
		t.Fatal("expected error for unclosed tag")
	}
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "unclosed tag <Note>") {
		t.Fatalf("expected tag name in error, got %v", err)
	}
}

func TestCompileMismatchedCloseTag(t *testing.T) {
	c := NewCompiler(nil)

	err := c.Compile("<Note>\ntext\n</Warning>\n")
	if err == nil {
		t.Fatal("expected error for mismatched close tag")
	}
	if !strings.Contains(err.Error(), "</Note>") || !strings.Contains(err.Error(), "</Warning>") {
		t.Fatalf("expected both tag names in error, got %v", err)
	}
}

func TestCompileUnexpectedCloseTag(t *testing.T) {
	c := NewCompiler(nil)

	if err := c.Compile("</Note>\n"); err == nil {
		t.Fatal("expected error for close tag without open")
	}
}

func TestCompileUnbalancedBraces(t *testing.T) {
	c := NewCompiler(nil)

	err := c.Compile("# Title\n\nvalue is {count\n")
	if err == nil {
		t.Fatal("expected error for unclosed brace")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}

	if err := c.Compile("closing} only\n"); err == nil {
		t.Fatal("expected error for stray closing brace")
	}
}

func TestCompileMalformedImport(t *testing.T) {
	c := NewCompiler(nil)

	if err := c.Compile("import Chart without a source\n"); err == nil {
		t.Fatal("expected error for malformed import")
	}
	if err := c.Compile("import \"./styles.css\"\n"); err != nil {
		t.Fatalf("bare import should be valid, got %v", err)
	}
	if err := c.Compile("import { A, B } from './parts'\n"); err != nil {
		t.Fatalf("named import should be valid, got %v", err)
	}
}

func TestCompileIgnoresCodeRegions(t *testing.T) {
	c := NewCompiler(nil)

	doc := "# Title\n\n```jsx\n<Unclosed>\n{{{\n```\n\nInline `{` and `<X>` stay code.\n"
	if err := c.Compile(doc); err != nil {
		t.Fatalf("code regions must be exempt, got %v", err)
	}
}

func TestCompileLowercaseHTMLIsTolerated(t *testing.T) {
	c := NewCompiler(nil)

	if err := c.Compile("text with <br> and <img src=\"x.png\">\n"); err != nil {
		t.Fatalf("plain HTML tags must not require balancing, got %v", err)
	}
}

func TestCompileStripsFrontMatter(t *testing.T) {
	c := NewCompiler(nil)

	doc := "---\ntitle: Sample\n---\n\n# Body\n"
	if err := c.Compile(doc); err != nil {
		t.Fatalf("front matter should be stripped, got %v", err)
	}
}
