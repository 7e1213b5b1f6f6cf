// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records conversion runs in a SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/npy2fits/pkg/types"
)

const defaultLimit = 20

// Catalog manages the conversion ledger database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at cfg.Path, creating the
// parent directory and schema when missing.
func Open(cfg types.CatalogConfig) (*Catalog, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("catalog path not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			source_dtype TEXT NOT NULL,
			shape TEXT NOT NULL,
			elements INTEGER NOT NULL,
			bytes INTEGER NOT NULL,
			sha256 TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_output ON conversions(output)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a conversion. Empty ID and zero ConvertedAt are filled in;
// the stored record is returned.
func (c *Catalog) Record(ctx context.Context, conv types.Conversion) (types.Conversion, error) {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.ConvertedAt.IsZero() {
		conv.ConvertedAt = time.Now().UTC()
	}
	shape, err := json.Marshal(conv.Shape)
	if err != nil {
		return conv, fmt.Errorf("encoding shape: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO conversions (id, input, output, source_dtype, shape, elements, bytes, sha256, duration_ns, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		conv.ID, conv.Input, conv.Output, conv.SourceDType, string(shape),
		conv.Elements, conv.Bytes, conv.SHA256, int64(conv.Duration),
		conv.ConvertedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return conv, fmt.Errorf("recording conversion %s: %w", conv.ID, err)
	}
	return conv, nil
}

// List returns the most recent conversions, newest first. limit <= 0
// uses the default of 20.
func (c *Catalog) List(ctx context.Context, limit int) ([]types.Conversion, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, input, output, source_dtype, shape, elements, bytes, sha256, duration_ns, converted_at
		 FROM conversions ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var out []types.Conversion
	for rows.Next() {
		var (
			conv     types.Conversion
			shape    string
			duration int64
			at       string
		)
		if err := rows.Scan(&conv.ID, &conv.Input, &conv.Output, &conv.SourceDType, &shape,
			&conv.Elements, &conv.Bytes, &conv.SHA256, &duration, &at); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		if err := json.Unmarshal([]byte(shape), &conv.Shape); err != nil {
			return nil, fmt.Errorf("decoding shape of %s: %w", conv.ID, err)
		}
		conv.Duration = time.Duration(duration)
		if conv.ConvertedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parsing timestamp of %s: %w", conv.ID, err)
		}
		out = append(out, conv)
	}
	return out, rows.Err()
}

// ExportYAML writes the most recent conversions to w as a YAML list.
func (c *Catalog) ExportYAML(ctx context.Context, w io.Writer, limit int) error {
	convs, err := c.List(ctx, limit)
	if err != nil {
		return err
	}
	if convs == nil {
		convs = []types.Conversion{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(convs); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
