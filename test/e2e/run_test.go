package e2e

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/ez/internal/syntax"
)

// TestE2E runs end-to-end tests for all .ez files in testdata/.
// Each test:
//  1. Parses the file with ParseAll
//  2. Renders lexical diagnostics, then the tree or the syntax error
//  3. Compares the result against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.ez")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .ez test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".ez")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, ezFile string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(ezFile, ".ez") + ".golden"
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	src, err := os.ReadFile(ezFile)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}

	got := render(string(src))
	if got != string(expected) {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

// render parses src and returns what the golden files record.
func render(src string) string {
	var buf bytes.Buffer

	p := syntax.NewParser(src, func(pos syntax.Pos, msg string) {
		fmt.Fprintf(&buf, "diag: %s: %s\n", pos, msg)
	})

	block, err := p.ParseAll()
	if err != nil {
		fmt.Fprintf(&buf, "error: %v\n", err)
		return buf.String()
	}
	syntax.Fprint(&buf, block)
	return buf.String()
}
