// Package file implements a result store on the local filesystem.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

const ext = ".json"

// Store implements ports.ResultStore with one JSON file per result.
// File names are the SHA-256 of the key, so inputs of any length or
// character set map to a valid name. The key itself is kept in the document.
type Store struct {
	BasePath string
}

// document is the on-disk layout of one stored result.
type document struct {
	Key    string        `json:"key"`
	Result domain.Result `json:"result"`
}

// NewStore creates a Store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{BasePath: basePath}
}

func (s *Store) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.BasePath, hex.EncodeToString(sum[:])+ext)
}

func readDocument(path string) (document, error) {
	var doc document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return doc, nil
}

// Save writes the result through a temporary file so readers never see a
// partial document.
func (s *Store) Save(ctx context.Context, key string, result domain.Result) error {
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure result directory: %w", err)
	}

	data, err := json.MarshalIndent(document{Key: key, Result: result}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	tmp, err := os.CreateTemp(s.BasePath, "result-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write result file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("failed to commit result file: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key string) (domain.Result, error) {
	doc, err := readDocument(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Result{}, domain.ErrResultNotFound
		}
		return domain.Result{}, fmt.Errorf("failed to read result file: %w", err)
	}
	if doc.Key != key {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return doc.Result, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete result file: %w", err)
	}
	return nil
}

// List returns the stored keys. Files that do not hold a keyed document are skipped.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	keys := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		doc, err := readDocument(filepath.Join(s.BasePath, name))
		if err != nil || doc.Key == "" {
			continue
		}
		keys = append(keys, doc.Key)
	}
	return keys, nil
}
