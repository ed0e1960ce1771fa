// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package artifact

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const fileSuffix = ".gob.gz"

var (
	// ErrNotFound is returned when no stored version exists for a name.
	ErrNotFound = errors.New("artifact: not found")

	// ErrChecksumMismatch is returned when decompressed data does not match
	// the checksum recorded at save time.
	ErrChecksumMismatch = errors.New("artifact: checksum mismatch")
)

// Metadata describes one stored artifact version.
type Metadata struct {
	// Name is the artifact name, e.g. "scaler" or "nn_model".
	Name    string `json:"name"`
	Version int    `json:"version"`

	FittedAt time.Time `json:"fitted_at"`
	SavedAt  time.Time `json:"saved_at"`

	// RowCount is the number of dataset rows the artifact was fitted on.
	RowCount     int `json:"row_count"`
	FeatureCount int `json:"feature_count"`

	// Checksum is the hex SHA-256 of the uncompressed gob payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed payload size.
	SizeBytes     int64 `json:"size_bytes"`
	FitDurationMS int64 `json:"fit_duration_ms"`
}

// Store keeps versioned artifact files in one directory, one file per
// name and version: <name>_v<version>.gob.gz.
type Store struct {
	dir string

	mu     sync.RWMutex
	latest map[string]int
}

// NewStore opens the store at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for artifact storage
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}
	return open(dir)
}

// Open opens an existing store. A missing directory is an error.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open artifact store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open artifact store: %s is not a directory", dir)
	}
	return open(dir)
}

func open(dir string) (*Store, error) {
	s := &Store{dir: dir, latest: make(map[string]int)}

	files, err := s.files()
	if err != nil {
		return nil, fmt.Errorf("scan artifact store: %w", err)
	}
	for name, versions := range files {
		s.latest[name] = versions[0]
	}
	return s, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// files groups the versions found on disk by name, newest first.
func (s *Store) files() (map[string][]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]int)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, version, ok := parseFilename(e.Name()); ok {
			out[name] = append(out[name], version)
		}
	}
	for _, versions := range out {
		sort.Sort(sort.Reverse(sort.IntSlice(versions)))
	}
	return out, nil
}

// parseFilename splits "scaler_v3.gob.gz" into ("scaler", 3).
func parseFilename(filename string) (name string, version int, ok bool) {
	base, found := strings.CutSuffix(filename, fileSuffix)
	if !found {
		return "", 0, false
	}
	i := strings.LastIndex(base, "_v")
	if i <= 0 {
		return "", 0, false
	}
	version, err := strconv.Atoi(base[i+2:])
	if err != nil || version < 1 {
		return "", 0, false
	}
	return base[:i], version, true
}

// checkName rejects names that would escape the store directory.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("artifact name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("artifact name %q must not contain path separators", name)
	}
	return nil
}

func (s *Store) path(name string, version int) string {
	return filepath.Join(s.dir, name+"_v"+strconv.Itoa(version)+fileSuffix)
}

// NextVersion returns the version the next Save of name will use.
func (s *Store) NextVersion(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest[name] + 1
}

// Latest returns the newest stored version of name.
func (s *Store) Latest(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.latest[name]
	return v, ok
}

// Save writes data as version of name; version 0 means the next version.
// Name, version, checksum, size and save time in meta are filled in and
// the completed metadata is returned.
//
//nolint:gocritic // meta is a template copied into the envelope
func (s *Store) Save(ctx context.Context, name string, version int, data any, meta Metadata) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, fmt.Errorf("invalid version %d", version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if version == 0 {
		version = s.latest[name] + 1
	}

	env, err := pack(data)
	if err != nil {
		return nil, err
	}
	meta.Name = name
	meta.Version = version
	meta.Checksum = env.Metadata.Checksum
	meta.SizeBytes = env.Metadata.SizeBytes
	meta.SavedAt = time.Now()
	env.Metadata = meta

	if err := writeAtomic(s.dir, s.path(name, version), env); err != nil {
		return nil, err
	}

	if version > s.latest[name] {
		s.latest[name] = version
	}
	return &meta, nil
}

// Load decodes version of name into target; version 0 means the latest.
func (s *Store) Load(ctx context.Context, name string, version int, target any) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if version == 0 {
		v, ok := s.latest[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, name, s.dir)
		}
		version = v
	}

	env, err := s.read(name, version)
	if err != nil {
		return nil, err
	}
	if err := env.unpack(target); err != nil {
		return nil, fmt.Errorf("%s v%d: %w", name, version, err)
	}
	return &env.Metadata, nil
}

func (s *Store) read(name string, version int) (*envelope, error) {
	f, err := os.Open(s.path(name, version)) //nolint:gosec // path is built from a checked name
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s v%d", ErrNotFound, name, version)
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	var env envelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, fmt.Errorf("read artifact %s v%d: %w", name, version, err)
	}
	return &env, nil
}

// List returns the metadata of the latest version of every artifact,
// sorted by name. Unreadable files are skipped.
func (s *Store) List(ctx context.Context) ([]Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Metadata, 0, len(s.latest))
	for name, version := range s.latest {
		env, err := s.read(name, version)
		if err != nil {
			continue
		}
		list = append(list, env.Metadata)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Delete removes one version. Deleting the latest version makes the next
// older one, if any, the latest.
func (s *Store) Delete(ctx context.Context, name string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name, version)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s v%d", ErrNotFound, name, version)
		}
		return fmt.Errorf("delete artifact: %w", err)
	}
	if s.latest[name] != version {
		return nil
	}

	files, err := s.files()
	if err != nil {
		return fmt.Errorf("rescan artifact store: %w", err)
	}
	if remaining := files[name]; len(remaining) > 0 {
		s.latest[name] = remaining[0]
	} else {
		delete(s.latest, name)
	}
	return nil
}

// Prune keeps the newest keep versions of name (at least one) and removes
// the rest, returning how many files were removed.
func (s *Store) Prune(ctx context.Context, name string, keep int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	keep = max(keep, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.latest[name]; !ok {
		return 0, nil
	}
	files, err := s.files()
	if err != nil {
		return 0, fmt.Errorf("scan artifact store: %w", err)
	}

	removed := 0
	for _, v := range files[name][min(keep, len(files[name])):] {
		if err := os.Remove(s.path(name, v)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("prune %s v%d: %w", name, v, err)
		}
		removed++
	}
	return removed, nil
}
