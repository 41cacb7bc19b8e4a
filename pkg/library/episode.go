package library

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kasuboski/tvsort/pkg/episode"
)

// Series is a series directory found under one of the tv roots
type Series struct {
	Name          string `json:"name"`
	SanitizedName string `json:"sanitizedName"`
	Path          string `json:"path"`
	Root          string `json:"root"`
}

// EpisodeFile is a video file whose name parsed into an episode identity
type EpisodeFile struct {
	Name         string           `json:"name"`
	RelativePath string           `json:"path"`
	AbsolutePath string           `json:"absolutePath"`
	Size         int64            `json:"size"`
	Identity     episode.Identity `json:"-"`
}

func (ef EpisodeFile) String() string {
	return fmt.Sprintf("name: %s, identity: %s, relative path: %s, size in bytes: %d",
		ef.Name, ef.Identity.Key(), ef.RelativePath, ef.Size)
}

// IsMulti reports whether the file is a multi-episode archive
func (ef EpisodeFile) IsMulti() bool {
	_, ok := ef.Identity.(episode.MultiEpisode)
	return ok
}

// Inventory is the parsed content of one season directory
type Inventory struct {
	Dir   string
	Files []EpisodeFile
}

// Exists reports whether a file with exactly this identity is present. A single episode does not
// match a multi-episode archive that merely contains it.
func (i *Inventory) Exists(id episode.Identity) bool {
	_, ok := i.Locate(id)
	return ok
}

// Locate returns the path of the first file with exactly this identity
func (i *Inventory) Locate(id episode.Identity) (string, bool) {
	if i == nil {
		return "", false
	}
	for _, f := range i.Files {
		if episode.Same(f.Identity, id) {
			return f.AbsolutePath, true
		}
	}
	return "", false
}

// MultisContaining returns the multi-episode archives that include member
func (i *Inventory) MultisContaining(member episode.Member) []EpisodeFile {
	if i == nil {
		return nil
	}
	var out []EpisodeFile
	for _, f := range i.Files {
		multi, ok := f.Identity.(episode.MultiEpisode)
		if ok && multi.Contains(member) {
			out = append(out, f)
		}
	}
	return out
}

// Extensions is a set of lower-cased file extensions including the leading dot
type Extensions map[string]struct{}

// NewExtensions normalizes configured extensions; "nfo", ".NFO" and ".nfo" are the same entry
func NewExtensions(exts []string) Extensions {
	set := make(Extensions, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}

// Match reports whether path has one of the extensions
func (e Extensions) Match(path string) bool {
	_, ok := e[strings.ToLower(filepath.Ext(path))]
	return ok
}

// NewAliases inverts a canonical name to aliases mapping into sanitized alias -> sanitized canonical name.
// Aliases claimed by more than one series are returned in duplicates; the first claim in name order wins.
func NewAliases(aliases map[string][]string) (map[string]string, []string) {
	canonicals := make([]string, 0, len(aliases))
	for canonical := range aliases {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	out := make(map[string]string)
	var duplicates []string
	for _, canonical := range canonicals {
		target := episode.SanitizeName(canonical, true)
		for _, alias := range aliases[canonical] {
			key := episode.SanitizeName(alias, true)
			if existing, ok := out[key]; ok && existing != target {
				duplicates = append(duplicates, alias)
				continue
			}
			out[key] = target
		}
	}
	return out, duplicates
}
