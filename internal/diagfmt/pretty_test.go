package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()

	content := []byte("import missing::module\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.sg", content)

	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.ImportModuleNotFound,
		source.Span{File: fileID, Start: 7, End: 22},
		"module not found",
	)
	bag.Add(&d)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{
			name:     "Absolute path",
			mode:     PathModeAbsolute,
			contains: "/home/user/project/src/test.sg",
		},
		{
			name:     "Relative path",
			mode:     PathModeRelative,
			contains: "src/test.sg",
		},
		{
			name:     "Basename only",
			mode:     PathModeBasename,
			contains: "test.sg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  1,
				PathMode: tt.mode,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}

			if !strings.Contains(output, ": error: ") {
				t.Error("Expected error severity in output")
			}
			if !strings.Contains(output, tt.contains+"(1,8): error: module not found") {
				t.Errorf("Expected %q header in output", tt.contains+"(1,8): error: module not found")
			}
			if !strings.Contains(output, "module not found") {
				t.Error("Expected error message in output")
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "Short path - as is",
			path:     "test.sg",
			expected: "test.sg",
		},
		{
			name:     "Long absolute path - basename",
			path:     "/very/long/absolute/path/to/some/nested/directory/file.sg",
			expected: "file.sg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte("let x = 42\n")
			fileID := fs.AddVirtual(tt.path, content)

			bag := diag.NewBag(10)
			d := diag.New(
				diag.SevWarning,
				diag.NameUnknownIdent,
				source.Span{File: fileID, Start: 8, End: 10},
				"unknown identifier",
			)
			bag.Add(&d)

			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  0,
				PathMode: PathModeAuto,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

// TestPrettyNotes проверяет рендеринг заметок (Notes), привязанных к диагностике.
func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("import core::util\n")
	fileID := fs.AddVirtual("test.sg", content)

	bag := diag.NewBag(4)
	primary := source.Span{File: fileID, Start: 7, End: 11}
	d := diag.New(diag.SevWarning, diag.ImportAliasRedeclared, primary, "import alias redeclared")

	noteSpan := source.Span{File: fileID, Start: 13, End: 17}
	d = d.WithNote(noteSpan, "first declared here")

	bag.Add(&d)

	var buf bytes.Buffer
	opts := PrettyOpts{
		Color:     false,
		Context:   0,
		PathMode:  PathModeBasename,
		ShowNotes: true,
	}
	Pretty(&buf, bag, fs, opts)

	output := buf.String()

	if !strings.Contains(output, "note: test.sg:1:14") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if !strings.Contains(output, "first declared here") {
		t.Fatalf("expected note message, got:\n%s", output)
	}
}
