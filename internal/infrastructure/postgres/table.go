package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
)

var _ gateway.TableClient = (*TableClient)(nil)

// TableClient implementación del puerto gateway.TableClient sobre PostgreSQL.
type TableClient struct {
	q Querier
}

// NewTableClient construye el cliente de tablas. Pasar pool o tx (Querier).
func NewTableClient(q Querier) *TableClient {
	return &TableClient{q: q}
}

// From devuelve la tabla por nombre. Una tabla desconocida falla en cada operación.
func (c *TableClient) From(table string) gateway.Table {
	return &Table{q: c.q, name: table}
}

// Table operaciones genéricas sobre una tabla de la lista blanca.
type Table struct {
	q    Querier
	name string
}

// Select devuelve las filas que cumplen q, nunca nil.
func (t *Table) Select(ctx context.Context, q gateway.Query) ([]gateway.Row, error) {
	sql, args, err := buildSelect(t.name, q)
	if err != nil {
		return nil, domain.NewGatewayError("select", t.name, err)
	}
	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, gatewayError("select", t.name, err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, gatewayError("select", t.name, err)
	}
	out := make([]gateway.Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, gateway.Row(m))
	}
	return out, nil
}

// Insert inserta row y devuelve la fila con los valores asignados por la base.
func (t *Table) Insert(ctx context.Context, row gateway.Row) (gateway.Row, error) {
	sql, args, err := buildInsert(t.name, row)
	if err != nil {
		return nil, domain.NewGatewayError("insert", t.name, err)
	}
	return t.one(ctx, "insert", sql, args)
}

// Update aplica patch a la fila idField = id. Sin filas afectadas → GatewayError con ErrNotFound.
func (t *Table) Update(ctx context.Context, patch gateway.Row, idField, id string) (gateway.Row, error) {
	sql, args, err := buildUpdate(t.name, patch, idField, id)
	if err != nil {
		return nil, domain.NewGatewayError("update", t.name, err)
	}
	return t.one(ctx, "update", sql, args)
}

// Delete borra la fila idField = id. Borrar una fila inexistente no es error.
func (t *Table) Delete(ctx context.Context, idField, id string) error {
	if !hasColumn(t.name, idField) {
		return domain.NewGatewayError("delete", t.name, unknownColumn(t.name, idField))
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ident(t.name), ident(idField))
	if _, err := t.q.Exec(ctx, sql, id); err != nil {
		return gatewayError("delete", t.name, err)
	}
	return nil
}

func (t *Table) one(ctx context.Context, op, sql string, args []any) (gateway.Row, error) {
	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, gatewayError(op, t.name, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewGatewayError(op, t.name, domain.ErrNotFound)
		}
		return nil, gatewayError(op, t.name, err)
	}
	return gateway.Row(m), nil
}

func unknownColumn(table, column string) error {
	if _, ok := columns[table]; !ok {
		return fmt.Errorf("relation %q does not exist", table)
	}
	return fmt.Errorf("column %q of relation %q does not exist", column, table)
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = ident(n)
	}
	return strings.Join(quoted, ", ")
}

func selectList(table string) string {
	return identList(columns[table])
}

func buildSelect(table string, q gateway.Query) (string, []any, error) {
	if _, ok := columns[table]; !ok {
		return "", nil, unknownColumn(table, "")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", selectList(table), ident(table))
	args := make([]any, 0, len(q.Filters))
	for i, f := range q.Filters {
		if !hasColumn(table, f.Column) {
			return "", nil, unknownColumn(table, f.Column)
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, f.Value)
		fmt.Fprintf(&sb, "%s = $%d", ident(f.Column), len(args))
	}
	if q.OrderBy != "" {
		if !hasColumn(table, q.OrderBy) {
			return "", nil, unknownColumn(table, q.OrderBy)
		}
		fmt.Fprintf(&sb, " ORDER BY %s", ident(q.OrderBy))
		if q.Desc {
			sb.WriteString(" DESC")
		}
	}
	return sb.String(), args, nil
}

// sortedColumns claves de row en orden estable, validadas contra la lista blanca.
func sortedColumns(table string, row gateway.Row, skip string) ([]string, error) {
	cols := make([]string, 0, len(row))
	for c := range row {
		if c == skip {
			continue
		}
		if !hasColumn(table, c) {
			return nil, unknownColumn(table, c)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols, nil
}

func buildInsert(table string, row gateway.Row) (string, []any, error) {
	if _, ok := columns[table]; !ok {
		return "", nil, unknownColumn(table, "")
	}
	cols, err := sortedColumns(table, row, "")
	if err != nil {
		return "", nil, err
	}
	if len(cols) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", ident(table), selectList(table)), nil, nil
	}
	args := make([]any, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		args[i] = row[c]
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		ident(table), identList(cols), strings.Join(params, ", "), selectList(table))
	return sql, args, nil
}

func buildUpdate(table string, patch gateway.Row, idField, id string) (string, []any, error) {
	if _, ok := columns[table]; !ok {
		return "", nil, unknownColumn(table, "")
	}
	if !hasColumn(table, idField) {
		return "", nil, unknownColumn(table, idField)
	}
	cols, err := sortedColumns(table, patch, idField)
	if err != nil {
		return "", nil, err
	}
	if len(cols) == 0 {
		return "", nil, errors.New("empty update")
	}
	args := make([]any, 0, len(cols)+1)
	sets := make([]string, len(cols))
	for i, c := range cols {
		args = append(args, patch[c])
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), i+1)
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		ident(table), strings.Join(sets, ", "), ident(idField), len(args), selectList(table))
	return sql, args, nil
}
