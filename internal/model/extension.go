package model

import (
	"fmt"
	"strings"
)

// Ext is a normalized file extension: lowercase with a leading dot.
type Ext string

// NormalizeExt validates raw user input and returns the canonical form.
// Leading dots and surrounding whitespace are tolerated; multi-part
// extensions such as "tar.gz" are allowed.
func NormalizeExt(raw string) (Ext, error) {
	ext := strings.ToLower(strings.TrimSpace(raw))
	ext = strings.TrimPrefix(ext, ".")

	if ext == "" {
		return "", fmt.Errorf("extension %q is empty", raw)
	}

	if strings.ContainsAny(ext, `/\`) {
		return "", fmt.Errorf("extension %q contains a path separator", raw)
	}

	return Ext("." + ext), nil
}

// Matches reports whether name carries the extension, ignoring case.
func (e Ext) Matches(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), string(e))
}

// Strip returns name without the matched extension. The name is returned
// unchanged when it does not match.
func (e Ext) Strip(name string) string {
	if !e.Matches(name) {
		return name
	}

	return name[:len(name)-len(e)]
}
