package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"busbook/internal/domain"
)

// Row is one record as the gateway reads or writes it: column name to value.
type Row map[string]any

// Query selects rows by equality filters with an optional ORDER BY column.
type Query struct {
	Filters Row
	Order   string
	Desc    bool
	Limit   int
}

// Conn is satisfied by *sql.DB and *sql.Tx.
type Conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Gateway is the generic table client every repository goes through.
// Tables and columns are checked against the schema allow-list.
type Gateway struct {
	Conn Conn
}

func New(conn Conn) Gateway {
	return Gateway{Conn: conn}
}

func (g Gateway) conn() (Conn, error) {
	if g.Conn == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	return g.Conn, nil
}

func (g Gateway) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	conn, err := g.conn()
	if err != nil {
		return nil, err
	}
	stmt, args, err := buildSelect(table, q)
	if err != nil {
		return nil, err
	}
	rows, err := conn.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return out, fmt.Errorf("scan %s: %w", table, err)
	}
	return out, nil
}

// SelectOne returns the first matching row or NotFoundError.
func (g Gateway) SelectOne(ctx context.Context, table string, q Query) (Row, error) {
	q.Limit = 1
	rows, err := g.Select(ctx, table, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NotFoundError{Resource: recordName(table), Err: sql.ErrNoRows}
	}
	return rows[0], nil
}

// Insert writes one row and returns the generated id when the table has one.
func (g Gateway) Insert(ctx context.Context, table string, row Row) (int64, error) {
	conn, err := g.conn()
	if err != nil {
		return 0, err
	}
	stmt, args, err := buildInsert(table, row)
	if err != nil {
		return 0, err
	}
	res, err := conn.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil
	}
	return id, nil
}

// Update applies patch to every row matching filters and returns rows affected.
func (g Gateway) Update(ctx context.Context, table string, patch, filters Row) (int64, error) {
	conn, err := g.conn()
	if err != nil {
		return 0, err
	}
	stmt, args, err := buildUpdate(table, patch, filters)
	if err != nil {
		return 0, err
	}
	res, err := conn.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Delete removes every row matching filters. Empty filters are refused.
func (g Gateway) Delete(ctx context.Context, table string, filters Row) (int64, error) {
	conn, err := g.conn()
	if err != nil {
		return 0, err
	}
	stmt, args, err := buildDelete(table, filters)
	if err != nil {
		return 0, err
	}
	res, err := conn.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// WithTx runs fn against a transaction-bound gateway when the connection can
// begin one. Any other connection runs fn directly, without atomicity.
func (g Gateway) WithTx(ctx context.Context, fn func(Gateway) error) error {
	sqlDB, ok := g.Conn.(*sql.DB)
	if !ok {
		return fn(g)
	}
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(Gateway{Conn: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func buildSelect(table string, q Query) (string, []any, error) {
	if err := checkTable(table); err != nil {
		return "", nil, err
	}
	var b strings.Builder
	b.WriteString("SELECT * FROM " + quote(table))
	where, args, err := whereClause(table, q.Filters)
	if err != nil {
		return "", nil, err
	}
	b.WriteString(where)

	order := q.Order
	if order == "" {
		order = primaryKey(table)
	}
	if err := checkColumn(table, order); err != nil {
		return "", nil, err
	}
	b.WriteString(" ORDER BY " + quote(order))
	if q.Desc {
		b.WriteString(" DESC")
	} else {
		b.WriteString(" ASC")
	}
	// Tie-break on the primary key so equal sort values keep insertion order.
	if pk := primaryKey(table); pk != order {
		b.WriteString(", " + quote(pk) + " ASC")
	}
	if q.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}
	return b.String(), args, nil
}

func buildInsert(table string, row Row) (string, []any, error) {
	if err := checkTable(table); err != nil {
		return "", nil, err
	}
	if len(row) == 0 {
		return "", nil, domain.ValidationError{Field: table, Msg: "empty insert"}
	}
	cols := sortedKeys(row)
	quoted := make([]string, 0, len(cols))
	placeholders := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, c := range cols {
		if err := checkColumn(table, c); err != nil {
			return "", nil, err
		}
		quoted = append(quoted, quote(c))
		placeholders = append(placeholders, "?")
		args = append(args, row[c])
	}
	stmt := "INSERT INTO " + quote(table) + " (" + strings.Join(quoted, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	return stmt, args, nil
}

func buildUpdate(table string, patch, filters Row) (string, []any, error) {
	if err := checkTable(table); err != nil {
		return "", nil, err
	}
	if len(patch) == 0 {
		return "", nil, domain.ValidationError{Field: table, Msg: "empty update"}
	}
	if len(filters) == 0 {
		return "", nil, domain.ValidationError{Field: table, Msg: "update without filters"}
	}
	cols := sortedKeys(patch)
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+len(filters))
	for _, c := range cols {
		if err := checkColumn(table, c); err != nil {
			return "", nil, err
		}
		sets = append(sets, quote(c)+" = ?")
		args = append(args, patch[c])
	}
	where, whereArgs, err := whereClause(table, filters)
	if err != nil {
		return "", nil, err
	}
	args = append(args, whereArgs...)
	return "UPDATE " + quote(table) + " SET " + strings.Join(sets, ", ") + where, args, nil
}

func buildDelete(table string, filters Row) (string, []any, error) {
	if err := checkTable(table); err != nil {
		return "", nil, err
	}
	if len(filters) == 0 {
		return "", nil, domain.ValidationError{Field: table, Msg: "delete without filters"}
	}
	where, args, err := whereClause(table, filters)
	if err != nil {
		return "", nil, err
	}
	return "DELETE FROM " + quote(table) + where, args, nil
}

func whereClause(table string, filters Row) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}
	cols := sortedKeys(filters)
	conds := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, c := range cols {
		if err := checkColumn(table, c); err != nil {
			return "", nil, err
		}
		if filters[c] == nil {
			conds = append(conds, quote(c)+" IS NULL")
			continue
		}
		conds = append(conds, quote(c)+" = ?")
		args = append(args, filters[c])
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []Row{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return out, err
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			// The MySQL driver hands back text columns as []byte.
			if b, ok := vals[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func sortedKeys(r Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quote(ident string) string {
	return "`" + ident + "`"
}
