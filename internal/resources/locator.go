// Package resources resolves @-prefixed resource aliases to directories.
//
// An alias has the form @Name or @Name/sub/path. Name selects a registered
// root directory and the optional remainder is joined beneath it.
package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Marker is the prefix that identifies a resource alias.
const Marker = "@"

// Locator resolves a resource alias to a directory path.
type Locator interface {
	Locate(alias string) (string, error)
}

// NotFoundError is returned when an alias cannot be resolved to a directory.
type NotFoundError struct {
	Alias   string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource %q not found: %s", e.Alias, e.Message)
}

// IsAlias reports whether arg names a resource alias.
func IsAlias(arg string) bool {
	return strings.HasPrefix(arg, Marker)
}

// Map is a Locator backed by a fixed set of named root directories.
type Map struct {
	roots map[string]string
}

// NewMap creates a Map. Keys may be given with or without the @ marker.
func NewMap(roots map[string]string) *Map {
	m := &Map{roots: make(map[string]string, len(roots))}
	for name, dir := range roots {
		m.roots[strings.TrimPrefix(name, Marker)] = dir
	}
	return m
}

// Names returns the registered alias names, sorted.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.roots))
	for name := range m.roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Locate resolves alias to an existing directory.
func (m *Map) Locate(alias string) (string, error) {
	if !IsAlias(alias) {
		return "", &NotFoundError{Alias: alias, Message: "alias must start with " + Marker}
	}

	name, rest, _ := strings.Cut(strings.TrimPrefix(alias, Marker), "/")
	if name == "" {
		return "", &NotFoundError{Alias: alias, Message: "empty resource name"}
	}

	root, ok := m.roots[name]
	if !ok {
		return "", &NotFoundError{Alias: alias, Message: fmt.Sprintf("unknown resource %q", name)}
	}

	dir := root
	if rest != "" {
		cleaned := filepath.Clean(filepath.FromSlash(rest))
		if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
			return "", &NotFoundError{Alias: alias, Message: "path escapes resource root"}
		}
		dir = filepath.Join(root, cleaned)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", &NotFoundError{Alias: alias, Message: fmt.Sprintf("cannot access %s", dir)}
	}
	if !info.IsDir() {
		return "", &NotFoundError{Alias: alias, Message: fmt.Sprintf("%s is not a directory", dir)}
	}

	return dir, nil
}
