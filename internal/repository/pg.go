package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by the PostgreSQL repositories.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	checkViolation      = "23514"
	notNullViolation    = "23502"
)

// Table describes how a record maps onto its relational table.
// Columns excludes the key column; Values must follow the same order,
// and Scan reads the key followed by Columns.
// Constraints maps this table's constraint names to request fields.
// ReferencedBy maps foreign keys on other tables that point here to the
// referencing table's name.
type Table[T any] struct {
	Name         string
	Key          string
	Columns      []string
	Values       func(record T) []any
	Scan         func(row pgx.Row) (T, error)
	Constraints  map[string]string
	ReferencedBy map[string]string
}

type PGRepository[T domain.Record[T]] struct {
	db    DB
	table Table[T]
}

func NewPGRepository[T domain.Record[T]](db DB, table Table[T]) *PGRepository[T] {
	return &PGRepository[T]{db: db, table: table}
}

func (r *PGRepository[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := r.table.Scan(r.db.QueryRow(ctx, r.table.insertSQL(), r.table.Values(record)...))
	if err != nil {
		return created, r.translate(err, 0)
	}
	return created, nil
}

func (r *PGRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := r.table.Scan(r.db.QueryRow(ctx, r.table.selectSQL(false), id))
	if err != nil {
		return rec, r.translate(err, id)
	}
	return rec, nil
}

func (r *PGRepository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	rows, err := r.db.Query(ctx, r.table.listSQL(), skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		rec, err := r.table.Scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update locks the row, overlays the patch and writes every column back.
func (r *PGRepository[T]) Update(ctx context.Context, id int64, patch Patch[T]) (T, error) {
	var zero T
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback(ctx)

	current, err := r.table.Scan(tx.QueryRow(ctx, r.table.selectSQL(true), id))
	if err != nil {
		return zero, r.translate(err, id)
	}

	next := current
	if patch != nil {
		patch.Apply(&next)
	}
	next = next.WithIdentity(id)

	args := append(r.table.Values(next), id)
	updated, err := r.table.Scan(tx.QueryRow(ctx, r.table.updateSQL(), args...))
	if err != nil {
		return zero, r.translate(err, id)
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	return updated, nil
}

// Delete refuses to remove a row that other records still point at.
func (r *PGRepository[T]) Delete(ctx context.Context, id int64) (T, error) {
	rec, err := r.table.Scan(r.db.QueryRow(ctx, r.table.deleteSQL(), id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			child := r.table.ReferencedBy[pgErr.ConstraintName]
			if child == "" {
				child = pgErr.TableName
			}
			return rec, domain.NewValidationError(r.table.Key, "is still referenced by "+child)
		}
		return rec, r.translate(err, id)
	}
	return rec, nil
}

// translate maps row misses and constraint violations raised by writes of
// this table's own rows onto domain errors. Everything else is returned
// untouched.
func (r *PGRepository[T]) translate(err error, id int64) error {
	var zero T
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFound(zero.Entity(), id)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	field := r.table.Constraints[pgErr.ConstraintName]
	if field == "" {
		field = pgErr.ColumnName
	}
	switch pgErr.Code {
	case uniqueViolation:
		return domain.NewValidationError(field, "already exists")
	case foreignKeyViolation:
		return domain.NewValidationError(field, "references a missing record")
	case checkViolation, notNullViolation:
		return domain.NewValidationError(field, "violates constraint "+pgErr.ConstraintName)
	}
	return err
}

func (t Table[T]) allColumns() string {
	return t.Key + ", " + strings.Join(t.Columns, ", ")
}

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

func (t Table[T]) insertSQL() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(t.Columns, ", "), placeholders(1, len(t.Columns)), t.allColumns())
}

func (t Table[T]) selectSQL(forUpdate bool) string {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.allColumns(), t.Name, t.Key)
	if forUpdate {
		q += " FOR UPDATE"
	}
	return q
}

func (t Table[T]) listSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s OFFSET $1 LIMIT $2", t.allColumns(), t.Name, t.Key)
}

func (t Table[T]) updateSQL() string {
	set := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		set[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		t.Name, strings.Join(set, ", "), t.Key, len(t.Columns)+1, t.allColumns())
}

func (t Table[T]) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s", t.Name, t.Key, t.allColumns())
}

var _ Repository[domain.Booking] = (*PGRepository[domain.Booking])(nil)
