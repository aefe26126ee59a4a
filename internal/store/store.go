// Package store persists record collections as pretty-printed JSON arrays.
// The file layout is an external contract: other tooling reads the files, so
// the format stays a UTF-8 JSON array with two-space indentation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Collection is a single JSON-array file holding records of type T.
//
// A missing or corrupt file loads as an empty collection rather than an
// error: availability is preferred over surfacing storage damage to chat
// users. Corruption is logged so the operator still sees it.
//
// All writes go through a temp-file-plus-rename so readers never observe a
// partial file, and a per-collection mutex serializes load-modify-save
// cycles between the dispatcher and the scheduler.
type Collection[T any] struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewCollection creates a collection backed by the file at path.
func NewCollection[T any](path string, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{path: path, logger: logger}
}

// Load returns all records. Missing or unparsable files yield an empty slice.
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save replaces the file contents with the given records.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update runs fn over the current records and persists its result, holding
// the collection lock for the whole load-modify-save cycle. When fn returns
// an error nothing is written and the error is passed through.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := fn(c.load())
	if err != nil {
		return err
	}
	return c.save(updated)
}

// Check verifies the collection's directory exists and is accessible.
func (c *Collection[T]) Check() error {
	if _, err := os.Stat(filepath.Dir(c.path)); err != nil {
		return fmt.Errorf("storage dir: %w", err)
	}
	return nil
}

func (c *Collection[T]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("reading collection failed, treating as empty",
				zap.String("path", c.path), zap.Error(err))
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn("collection file is corrupt, treating as empty",
			zap.String("path", c.path), zap.Error(err))
		return nil
	}
	return records
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", c.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file for %s: %w", c.path, err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
