// Package modref locates git-sourced module references inside
// Terraform configuration text and rewrites their pinned tags.
//
// The rewrite is a targeted substring replacement scoped to exact,
// previously located occurrences rather than a structured edit, so
// that the surrounding formatting and comments of a configuration
// file survive byte for byte.
package modref

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

// Reference is one occurrence of a git-sourced module dependency
// inside a file. OriginalText is the full quoted source string exactly
// as it appears, quotes included, so it can be located again verbatim.
type Reference struct {
	OriginalText string
	Owner        string
	Repo         string
	Tag          semtag.Tag
}

// RepositoryID identifies the remote repository this reference points
// at. References across files that share an ID are resolved with a
// single remote lookup.
func (r Reference) RepositoryID() string {
	return r.Owner + "/" + r.Repo
}

// File is an immutable snapshot of one configuration file together
// with the references extracted from it. Rewriting produces new text;
// Content is never edited in place.
type File struct {
	Path       string
	Mode       fs.FileMode
	Content    []byte
	References []Reference
}

// LoadFile reads a file once and extracts its module references.
func LoadFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{
		Path:       path,
		Mode:       info.Mode().Perm(),
		Content:    content,
		References: ExtractReferences(string(content)),
	}, nil
}
