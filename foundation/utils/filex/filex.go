// File: filex.go
// Title: Input File Utilities
// Description: Existence checks, size formatting and bounded reading of
//              query input from files or standard input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-06
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-06 v0.2.0: Reduced to input reading for strview, size limits

package filex

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	mdwerror "github.com/msto63/strview/foundation/core/error"
	mdwerrors "github.com/msto63/strview/foundation/core/errors"
)

// Stdin is the path that selects standard input in ReadInput
const Stdin = "-"

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// ReadInput reads the file at path, or stdin when path is "-". More than
// limit bytes is an error; a limit <= 0 reads everything.
func ReadInput(path string, stdin io.Reader, limit int64) ([]byte, error) {
	var r io.Reader
	if path == Stdin {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			code := mdwerror.CodeConfigError
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
				Operation("read_input").
				Messagef("cannot open input %s", path).
				Cause(err).
				Code(string(code)).
				Detail("path", path).
				Build()
		}
		defer f.Close()
		r = f
	}

	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleFilex, "read_input", err)
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
			Operation("read_input").
			Messagef("input %s exceeds %s", path, FormatSize(limit)).
			Code(mdwerrors.CodeFilexTooLarge).
			Detail("path", path).
			Detail("limit", limit).
			Severity(mdwerror.SeverityLow).
			Build()
	}
	return data, nil
}

// CheckText returns an INVALID_FORMAT error naming the offset of the
// first NUL byte or invalid UTF-8 sequence, or nil when data is text.
func CheckText(data []byte) error {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == 0 || (r == utf8.RuneError && size == 1) {
			return mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
				Operation("check_text").
				Messagef("invalid text byte 0x%02x at offset %d", data[i], i).
				Code(string(mdwerror.CodeInvalidFormat)).
				Detail("offset", i).
				Severity(mdwerror.SeverityLow).
				Build()
		}
		i += size
	}
	return nil
}

// IsText reports whether data is valid UTF-8 without NUL bytes
func IsText(data []byte) bool {
	return CheckText(data) == nil
}
