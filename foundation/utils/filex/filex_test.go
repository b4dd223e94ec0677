// File: filex_test.go
// Title: Input File Utilities Tests
// Description: Tests for existence checks, size formatting and bounded
//              input reading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-06
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-06 v0.2.0: Tests for ReadInput, IsText and CheckText

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/strview/foundation/core/error"
	mdwerrors "github.com/msto63/strview/foundation/core/errors"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestExistence(t *testing.T) {
	file := writeTemp(t, "a.txt", "x")
	dir := filepath.Dir(file)
	missing := filepath.Join(dir, "missing")

	if !Exists(file) || !Exists(dir) || Exists(missing) {
		t.Error("Exists() reported wrong results")
	}
	if !IsFile(file) || IsFile(dir) || IsFile(missing) {
		t.Error("IsFile() reported wrong results")
	}
	if !IsDir(dir) || IsDir(file) || IsDir(missing) {
		t.Error("IsDir() reported wrong results")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{16 << 20, "16.0 MB"},
		{3 << 30, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q; want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestReadInput(t *testing.T) {
	path := writeTemp(t, "input.txt", "hello world")

	tests := []struct {
		name     string
		path     string
		stdin    string
		limit    int64
		want     string
		wantCode string
	}{
		{"file", path, "", 0, "hello world", ""},
		{"file at limit", path, "", 11, "hello world", ""},
		{"file over limit", path, "", 10, "", mdwerrors.CodeFilexTooLarge},
		{"stdin", Stdin, "from stdin", 100, "from stdin", ""},
		{"stdin over limit", Stdin, strings.Repeat("x", 20), 5, "", mdwerrors.CodeFilexTooLarge},
		{"missing file", filepath.Join(t.TempDir(), "none"), "", 0, "", string(mdwerror.CodeNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadInput(tt.path, strings.NewReader(tt.stdin), tt.limit)
			if tt.wantCode != "" {
				if !mdwerror.HasCode(err, mdwerror.Code(tt.wantCode)) {
					t.Errorf("ReadInput() error = %v; want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadInput() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadInput() = %q; want %q", data, tt.want)
			}
		})
	}
}

func TestIsText(t *testing.T) {
	tests := []struct {
		data []byte
		want bool
	}{
		{[]byte(""), true},
		{[]byte("Grüße"), true},
		{[]byte{0xff, 0xfe}, false},
		{[]byte("a\x00b"), false},
	}

	for _, tt := range tests {
		if got := IsText(tt.data); got != tt.want {
			t.Errorf("IsText(%q) = %v; want %v", tt.data, got, tt.want)
		}
	}
}

func TestCheckText(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"text", []byte("Grüße"), -1},
		{"replacement char", []byte("a\uFFFDb"), -1},
		{"invalid lead byte", []byte{'a', 'b', 0xff}, 2},
		{"truncated sequence", []byte("Gr\xc3"), 2},
		{"nul after multibyte", []byte("ü\x00"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckText(tt.data)
			if tt.offset < 0 {
				if err != nil {
					t.Fatalf("CheckText(%q) = %v; want nil", tt.data, err)
				}
				return
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Fatalf("CheckText(%q) = %v; want INVALID_FORMAT", tt.data, err)
			}
			if got := mdwerrors.ExtractDetails(err)["offset"]; got != tt.offset {
				t.Errorf("offset = %v; want %d", got, tt.offset)
			}
		})
	}
}
