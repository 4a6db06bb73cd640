package domain

import (
	"path/filepath"
	"strings"
)

// SyncPolicy decides which repository paths participate in
// synchronisation. It is read-only for the duration of a run.
type SyncPolicy struct {
	// WatchDirectories are the directory prefixes to synchronise
	// (e.g. "docs/").
	WatchDirectories []string

	// FileExtensions are the accepted extensions, dot-prefixed
	// (e.g. ".md").
	FileExtensions []string

	// ExcludePatterns are glob patterns for paths to skip. Patterns
	// support ** for recursive matching.
	ExcludePatterns []string

	// DryRun disables all knowledge-base calls; intended actions are
	// logged instead.
	DryRun bool
}

// Allows reports whether a repository-relative path passes the policy.
//
// A path is accepted when all three hold:
//  1. it starts with one of the watched directory prefixes,
//  2. its extension is in the accepted set,
//  3. it matches none of the exclude patterns.
func (p *SyncPolicy) Allows(path string) bool {
	path = filepath.ToSlash(path)

	if !p.inWatchedDirectory(path) {
		return false
	}

	ext := filepath.Ext(path)
	if !p.hasAcceptedExtension(ext) {
		return false
	}

	for _, pattern := range p.ExcludePatterns {
		if matchGlob(pattern, path) {
			return false
		}
	}

	return true
}

func (p *SyncPolicy) inWatchedDirectory(path string) bool {
	for _, dir := range p.WatchDirectories {
		if strings.HasPrefix(path, strings.TrimSuffix(dir, "/")) {
			return true
		}
	}
	return false
}

func (p *SyncPolicy) hasAcceptedExtension(ext string) bool {
	for _, accepted := range p.FileExtensions {
		if strings.EqualFold(ext, accepted) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
//
// Supports:
//   - * matches any non-separator characters
//   - ** matches any characters including separators (recursive)
//   - ? matches single character
//   - [abc] character class
func matchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoublestar(pattern, path)
	}

	matched, _ := filepath.Match(pattern, path)
	if matched {
		return true
	}

	// Try matching against just the filename
	matched, _ = filepath.Match(pattern, filepath.Base(path))
	return matched
}

// matchDoublestar handles ** recursive patterns of the common
// "prefix/**/suffix" shape.
func matchDoublestar(pattern, path string) bool {
	parts := strings.Split(pattern, "**")

	if len(parts) == 2 {
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix != "" {
			if !strings.HasPrefix(path, prefix+"/") && path != prefix {
				return false
			}
			path = strings.TrimPrefix(path, prefix+"/")
		}

		if suffix != "" {
			return matchSuffix(suffix, path)
		}

		return true
	}

	// Patterns with multiple **: the non-** parts must appear in order.
	pathIdx := 0
	for i, part := range parts {
		part = strings.Trim(part, "/")
		if part == "" {
			continue
		}

		idx := strings.Index(path[pathIdx:], part)
		if idx == -1 {
			return false
		}

		if i == 0 && !strings.HasPrefix(pattern, "**") && idx != 0 {
			return false
		}

		pathIdx += idx + len(part)
	}

	if !strings.HasSuffix(pattern, "**") && pathIdx != len(path) {
		return false
	}

	return true
}

// matchSuffix checks whether any path suffix matches the trailing part
// of a ** pattern.
func matchSuffix(suffix, path string) bool {
	if strings.ContainsAny(suffix, "*?[") {
		parts := strings.Split(path, "/")
		for i := range parts {
			subpath := strings.Join(parts[i:], "/")
			matched, _ := filepath.Match(suffix, subpath)
			if matched {
				return true
			}
		}
		return false
	}

	return strings.HasSuffix(path, suffix) || strings.Contains(path, suffix+"/") || path == suffix
}
