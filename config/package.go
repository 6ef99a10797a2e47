package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

// Package lookup errors.
var (
	ErrInvalidPackageKey   = errors.New("package key not valid")
	ErrPackageNotAvailable = errors.New("package is not available")
	ErrPackageNotDirectory = errors.New("package path is not a directory")
)

// packageKeyPattern accepts keys like "Vendor.Site" or "Neos.Demo.Blog".
var packageKeyPattern = regexp.MustCompile(`(?i)^[a-z0-9]+\.(?:[a-z0-9][.a-z0-9]*)+$`)

// ValidPackageKey reports whether key is a well-formed package key.
func ValidPackageKey(key string) bool {
	return packageKeyPattern.MatchString(key)
}

// ResolvePackageDir finds the directory of packageKey below rootDir.
// Every entry of packagePaths is searched for <path>/<key> and
// <path>/<category>/<key>, in that order; the first hit wins.
func ResolvePackageDir(fs afero.Fs, rootDir string, packagePaths []string, packageKey string) (string, error) {
	if !ValidPackageKey(packageKey) {
		return "", fmt.Errorf("%q: %w", packageKey, ErrInvalidPackageKey)
	}

	for _, p := range packagePaths {
		base := p
		if !filepath.IsAbs(base) {
			base = filepath.Join(rootDir, p)
		}

		candidates := []string{filepath.Join(base, packageKey)}
		categories, err := afero.ReadDir(fs, base)
		if err != nil {
			continue
		}
		for _, c := range categories {
			if c.IsDir() && c.Name() != packageKey {
				candidates = append(candidates, filepath.Join(base, c.Name(), packageKey))
			}
		}

		for _, dir := range candidates {
			info, err := fs.Stat(dir)
			if err != nil {
				continue
			}
			if !info.IsDir() {
				return "", fmt.Errorf("%s: %w", dir, ErrPackageNotDirectory)
			}
			return dir, nil
		}
	}

	return "", fmt.Errorf("%s: %w", packageKey, ErrPackageNotAvailable)
}
