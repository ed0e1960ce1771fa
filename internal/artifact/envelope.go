// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package artifact

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// envelope is the on-disk form of one artifact version: metadata in the
// clear followed by the gzip-compressed gob payload.
type envelope struct {
	Metadata Metadata
	Payload  []byte
}

//nolint:gochecknoinits // gob type registration
func init() {
	gob.Register(Metadata{})
	gob.Register(envelope{})
}

// pack gob-encodes data, records its checksum and compresses it.
func pack(data any) (*envelope, error) {
	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(data); err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	sum := sha256.Sum256(raw.Bytes())

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return nil, fmt.Errorf("compress artifact: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress artifact: %w", err)
	}

	env := &envelope{Payload: compressed.Bytes()}
	env.Metadata.Checksum = hex.EncodeToString(sum[:])
	env.Metadata.SizeBytes = int64(compressed.Len())
	return env, nil
}

// unpack decompresses the payload, verifies the checksum and decodes it
// into target.
func (e *envelope) unpack(target any) error {
	zr, err := gzip.NewReader(bytes.NewReader(e.Payload))
	if err != nil {
		return fmt.Errorf("decompress artifact: %w", err)
	}
	defer func() { _ = zr.Close() }() //nolint:errcheck // reader fully consumed

	raw, err := io.ReadAll(zr)
	if err != nil {
		return fmt.Errorf("decompress artifact: %w", err)
	}

	sum := sha256.Sum256(raw)
	if got := hex.EncodeToString(sum[:]); got != e.Metadata.Checksum {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, e.Metadata.Checksum, got)
	}

	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(target); err != nil {
		return fmt.Errorf("decode artifact: %w", err)
	}
	return nil
}

// writeAtomic writes env to a temp file in dir and renames it to dst, so
// readers never observe a partial file.
func writeAtomic(dir, dst string, env *envelope) error {
	tmp, err := os.CreateTemp(dir, ".artifact-*.tmp")
	if err != nil {
		return fmt.Errorf("create artifact file: %w", err)
	}
	name := tmp.Name()
	defer func() { _ = os.Remove(name) }() //nolint:errcheck // no-op after rename

	if err := gob.NewEncoder(tmp).Encode(env); err != nil {
		_ = tmp.Close() //nolint:errcheck // encode error takes precedence
		return fmt.Errorf("write artifact file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close artifact file: %w", err)
	}
	if err := os.Rename(name, dst); err != nil {
		return fmt.Errorf("rename artifact file: %w", err)
	}
	return nil
}
