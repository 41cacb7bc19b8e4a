package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/kasuboski/tvsort/pkg/episode"
	"github.com/kasuboski/tvsort/pkg/io"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/release"
	"golang.org/x/sync/errgroup"
)

var (
	_ Library = (*FileSystemLibrary)(nil)

	seasonDirRegex = regexp.MustCompile(`(?i)^(?:season|series|s)[\s._-]*0*(\d+)$`)
	yearDirRegex   = regexp.MustCompile(`^((?:19|20)\d{2})$`)
)

// FileSystemLibrary scans series directories under one or more tv roots
type FileSystemLibrary struct {
	roots   []string
	ignored Extensions
	aliases map[string]string
	parser  *release.Parser
	fileIO  io.FileIO
}

// New creates a library over roots. aliases maps a sanitized alias to the sanitized canonical name.
func New(roots []string, ignored Extensions, aliases map[string]string, parser *release.Parser, fileIO io.FileIO) *FileSystemLibrary {
	if parser == nil {
		parser = release.NewParser()
	}
	if aliases == nil {
		aliases = map[string]string{}
	}
	return &FileSystemLibrary{
		roots:   roots,
		ignored: ignored,
		aliases: aliases,
		parser:  parser,
		fileIO:  fileIO,
	}
}

func (l *FileSystemLibrary) Roots() []string {
	return l.roots
}

// Ignored reports whether path has an ignored extension
func (l *FileSystemLibrary) Ignored(path string) bool {
	return l.ignored.Match(path)
}

// Key returns the lookup key for a series name after alias resolution
func (l *FileSystemLibrary) Key(name string) string {
	key := episode.SanitizeName(name, true)
	if canonical, ok := l.aliases[key]; ok {
		return canonical
	}
	return key
}

// ListSeries returns every series directory keyed by its sanitized name. Roots are scanned
// concurrently; when two roots hold the same series the earlier root wins.
func (l *FileSystemLibrary) ListSeries(ctx context.Context) (map[string]Series, error) {
	log := logger.FromCtx(ctx)

	found := make([][]Series, len(l.roots))
	g, ctx := errgroup.WithContext(ctx)
	for i, root := range l.roots {
		g.Go(func() error {
			entries, err := l.fileIO.ReadDir(root)
			if err != nil {
				return fmt.Errorf("failed to list tv root %s: %w", root, err)
			}

			for _, e := range entries {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if strings.HasPrefix(e.Name(), ".") {
					continue
				}

				path := filepath.Join(root, e.Name())
				if !l.isDir(e, path) {
					continue
				}

				found[i] = append(found[i], Series{
					Name:          e.Name(),
					SanitizedName: l.Key(e.Name()),
					Path:          path,
					Root:          root,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := make(map[string]Series)
	for _, list := range found {
		for _, s := range list {
			if existing, ok := series[s.SanitizedName]; ok {
				log.Warnw("duplicate series directory", "series", s.SanitizedName, "kept", existing.Path, "ignored", s.Path)
				continue
			}
			series[s.SanitizedName] = s
		}
	}

	return series, nil
}

// ResolveSeries finds the directory of a series by name, applying aliases
func (l *FileSystemLibrary) ResolveSeries(ctx context.Context, name string) (Series, bool, error) {
	all, err := l.ListSeries(ctx)
	if err != nil {
		return Series{}, false, err
	}

	s, ok := all[l.Key(name)]
	return s, ok, nil
}

// LocateSeasonDirectory finds the directory the identity's season sorts into. Daily identities
// sort into a directory named after the year.
func (l *FileSystemLibrary) LocateSeasonDirectory(ctx context.Context, series Series, id episode.Identity) (string, bool, error) {
	log := logger.FromCtx(ctx)

	entries, err := l.fileIO.ReadDir(series.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to list series directory %s: %w", series.Path, err)
	}

	want := episode.SeasonOf(id)
	daily := episode.IsDaily(id)
	for _, e := range entries {
		path := filepath.Join(series.Path, e.Name())
		if strings.HasPrefix(e.Name(), ".") || !l.isDir(e, path) {
			continue
		}

		n, ok := seasonNumber(e.Name(), daily)
		if ok && n == want {
			log.Debugw("found season directory", "path", path, "season", want)
			return path, true, nil
		}
	}

	return "", false, nil
}

func seasonNumber(name string, daily bool) (int, bool) {
	if daily {
		if m := yearDirRegex.FindStringSubmatch(name); m != nil {
			n, err := strconv.Atoi(m[1])
			return n, err == nil
		}
	}

	m := seasonDirRegex.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	return n, err == nil
}

// ScanSeason parses every non-ignored file in dir. Files whose names no scheme understands are skipped.
// A missing directory is an empty inventory.
func (l *FileSystemLibrary) ScanSeason(ctx context.Context, dir string) (*Inventory, error) {
	log := logger.FromCtx(ctx)
	inventory := &Inventory{Dir: dir}

	entries, err := l.fileIO.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return inventory, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan season directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || l.Ignored(e.Name()) {
			continue
		}

		f, ok := l.parseFile(e.Name())
		if !ok {
			log.Debugw("skipping unrecognized file", "dir", dir, "file", e.Name())
			continue
		}

		f.RelativePath = e.Name()
		f.AbsolutePath = filepath.Join(dir, e.Name())
		if info, err := e.Info(); err == nil {
			f.Size = info.Size()
		}
		inventory.Files = append(inventory.Files, f)
	}

	return inventory, nil
}

func (l *FileSystemLibrary) parseFile(name string) (EpisodeFile, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	id, err := l.parser.Parse(base)
	if err != nil {
		return EpisodeFile{}, false
	}
	return EpisodeFile{Name: name, Identity: id}, true
}

func (l *FileSystemLibrary) seasonInventory(ctx context.Context, series Series, id episode.Identity) (*Inventory, error) {
	dir, ok, err := l.LocateSeasonDirectory(ctx, series, id)
	if err != nil || !ok {
		return nil, err
	}
	return l.ScanSeason(ctx, dir)
}

// EpisodeExists reports whether a file with exactly this identity is in its season directory
func (l *FileSystemLibrary) EpisodeExists(ctx context.Context, series Series, id episode.Identity) (bool, error) {
	inventory, err := l.seasonInventory(ctx, series, id)
	if err != nil {
		return false, err
	}
	return inventory.Exists(id), nil
}

func (l *FileSystemLibrary) LocateEpisodePath(ctx context.Context, series Series, id episode.Identity) (string, bool, error) {
	inventory, err := l.seasonInventory(ctx, series, id)
	if err != nil {
		return "", false, err
	}
	path, ok := inventory.Locate(id)
	return path, ok, nil
}

// FindMultiEpisodeArchivesContaining returns the multi-episode archives in member's season directory that cover member
func (l *FileSystemLibrary) FindMultiEpisodeArchivesContaining(ctx context.Context, series Series, member episode.Member) ([]EpisodeFile, error) {
	inventory, err := l.seasonInventory(ctx, series, member)
	if err != nil {
		return nil, err
	}
	return inventory.MultisContaining(member), nil
}

// FindEpisodes lists the episode files of a series, one level of season directories deep
func (l *FileSystemLibrary) FindEpisodes(ctx context.Context, series Series) ([]EpisodeFile, error) {
	log := logger.FromCtx(ctx)

	episodes := []EpisodeFile{}
	err := l.fileIO.WalkDir(os.DirFS(series.Path), ".", func(path string, d fs.DirEntry, err error) error {
		log.Debugw("episode walk", "path", path)
		if err != nil {
			// just skip this dir for now if there's an issue
			return fs.SkipDir
		}

		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), ".") || levelsOfNesting(path) > 0) {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || l.Ignored(path) {
			return nil
		}

		f, ok := l.parseFile(d.Name())
		if !ok {
			return nil
		}

		f.RelativePath = path
		f.AbsolutePath = filepath.Join(series.Path, filepath.FromSlash(path))
		if info, err := d.Info(); err == nil {
			f.Size = info.Size()
		}
		episodes = append(episodes, f)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return episodes, nil
}

func (l *FileSystemLibrary) isDir(e fs.DirEntry, path string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := l.fileIO.Stat(path)
	return err == nil && info.IsDir()
}

func levelsOfNesting(path string) int {
	return strings.Count(path, "/")
}
