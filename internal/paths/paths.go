package paths

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const appRootPrefix = "~/"

// Resolver maps application-relative references onto disk and URL space.
type Resolver struct {
	// ContentRoot is the directory "~/" refers to for files.
	ContentRoot string
	// VirtualRoot is the URL prefix "~/" refers to for links. Empty means "/".
	VirtualRoot string
}

// NewResolver returns a resolver rooted at contentRoot with the site mounted
// at the URL root.
func NewResolver(contentRoot string) *Resolver {
	return &Resolver{ContentRoot: contentRoot, VirtualRoot: "/"}
}

// ResolveFile returns the absolute path for an application-relative file
// reference. Absolute paths are returned cleaned; other relative paths are
// taken relative to the content root.
func (r *Resolver) ResolveFile(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("resolve file: empty reference")
	}
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref), nil
	}
	root := strings.TrimSpace(r.ContentRoot)
	if root == "" {
		return "", fmt.Errorf("resolve file %q: content root not set", ref)
	}
	rel := strings.TrimPrefix(ref, appRootPrefix)
	if rel == "~" {
		rel = ""
	}
	joined := filepath.Join(root, filepath.FromSlash(rel))
	absolute, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", joined, err)
	}
	return absolute, nil
}

// ResolveURL returns the site-absolute URL for an application-relative link.
// References that do not start with "~" are returned unchanged.
func (r *Resolver) ResolveURL(ref string) string {
	if ref != "~" && !strings.HasPrefix(ref, appRootPrefix) {
		return ref
	}
	root := strings.TrimSpace(r.VirtualRoot)
	if root == "" {
		root = "/"
	}
	if !strings.HasPrefix(root, "/") {
		root = "/" + root
	}
	rel := strings.TrimPrefix(strings.TrimPrefix(ref, "~"), "/")
	resolved := path.Join(root, rel)
	if strings.HasSuffix(ref, "/") && !strings.HasSuffix(resolved, "/") {
		resolved += "/"
	}
	return resolved
}

// ExpandHome expands a leading "~" to the user's home directory and returns
// an absolute, cleaned path.
func ExpandHome(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
