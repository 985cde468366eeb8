package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niksmo/storefront/internal/core/domain"
)

// A documents table keeps one JSONB document of type D per row in the
// "doc" column.
type documents[D any] struct {
	db    sqldb
	table string
}

func (t documents[D]) selectMany(
	ctx context.Context, where string, args ...any,
) (ds []D, err error) {
	query := "SELECT doc FROM " + t.table
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ds = make([]D, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var d D
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, rows.Err()
}

func (t documents[D]) selectOne(
	ctx context.Context, where string, args ...any,
) (D, error) {
	var d D
	query := "SELECT doc FROM " + t.table + " WHERE " + where + " LIMIT 1"

	var raw []byte
	err := t.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, domain.ErrNotFound
		}
		return d, err
	}

	if err := json.Unmarshal(raw, &d); err != nil {
		return d, err
	}
	return d, nil
}

// upsert replaces the row keyed by the first column. cols and vals hold the
// extra indexed columns stored next to the document.
func (t documents[D]) upsert(
	ctx context.Context, keyCol, key string, d D, cols []string, vals []any,
) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}

	allCols := append([]string{keyCol, "doc"}, cols...)
	args := append([]any{key, string(raw)}, vals...)

	query := "INSERT INTO " + t.table + " (" + strings.Join(allCols, ", ") + ") VALUES (" +
		placeholders(len(allCols)) + ") ON CONFLICT (" + keyCol + ") DO UPDATE SET " +
		excludedSet(allCols[1:])

	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (t documents[D]) delete(ctx context.Context, keyCol, key string) error {
	query := "DELETE FROM " + t.table + " WHERE " + keyCol + " = $1"
	res, err := t.db.ExecContext(ctx, query, key)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}

func excludedSet(cols []string) string {
	set := make([]string, len(cols))
	for i, c := range cols {
		set[i] = c + " = EXCLUDED." + c
	}
	return strings.Join(set, ", ")
}
