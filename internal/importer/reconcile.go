// Package importer loads tabular record batches into the store, inserting
// only rows whose natural key is absent from both the batch itself and the
// persisted table.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ErrStoreUnavailable wraps read/write failures against the store so callers
// can treat a whole batch as failed without inspecting driver errors.
var ErrStoreUnavailable = errors.New("store unavailable")

type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindDate
)

type Column struct {
	Name string
	Kind Kind
}

// Table describes an import target: its columns in CSV order and the subset
// forming the natural key.
type Table struct {
	Name    string
	File    string
	Columns []Column
	Key     []string
}

// Row holds one record's values aligned with Table.Columns.
type Row []any

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Reconcile appends the rows whose natural key is not yet persisted and
// returns them. Intra-batch duplicates collapse to the first occurrence in
// input order. The whole batch runs in one transaction and each insert
// carries ON CONFLICT DO NOTHING on the natural key, so a concurrent import
// of the same rows cannot double-insert; re-running the same batch inserts
// nothing.
//
// Reconciliation is by value equality on the key columns only: a row whose
// key already exists is discarded even when its other columns differ from
// the persisted ones.
func Reconcile(ctx context.Context, db TxBeginner, table Table, batch []Row) ([]Row, error) {
	keyIdx, err := table.keyIndexes()
	if err != nil {
		return nil, err
	}

	survivors := dedupe(batch, keyIdx)
	if len(survivors) == 0 {
		return nil, nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := table.insertQuery()
	var inserted []Row
	for _, row := range survivors {
		var id int64
		err := tx.QueryRow(ctx, query, row...).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			// Natural key already persisted; the incoming row is dropped.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: insert into %s: %v", ErrStoreUnavailable, table.Name, err)
		}
		inserted = append(inserted, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return inserted, nil
}

// dedupe keeps the first row per natural-key tuple, preserving input order.
func dedupe(batch []Row, keyIdx []int) []Row {
	seen := make(map[string]struct{}, len(batch))
	var out []Row
	for _, row := range batch {
		key := keyOf(row, keyIdx)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}

func keyOf(row Row, keyIdx []int) string {
	parts := make([]string, len(keyIdx))
	for i, idx := range keyIdx {
		parts[i] = fmt.Sprintf("%v", row[idx])
	}
	return strings.Join(parts, "\x1f")
}

func (t Table) keyIndexes() ([]int, error) {
	idx := make([]int, 0, len(t.Key))
	for _, key := range t.Key {
		found := -1
		for i, col := range t.Columns {
			if col.Name == key {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("table %s: key column %q not in column list", t.Name, key)
		}
		idx = append(idx, found)
	}
	return idx, nil
}

func (t Table) insertQuery() string {
	names := make([]string, len(t.Columns))
	placeholders := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING RETURNING id",
		t.Name,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(t.Key, ", "),
	)
}
