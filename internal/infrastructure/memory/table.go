// Package memory implementa los puertos del gateway en memoria: desarrollo local
// sin PostgreSQL/Redis y tests de los casos de uso.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
)

var _ gateway.TableClient = (*Tables)(nil)

// Tables conjunto de tablas en memoria, seguro para uso concurrente.
type Tables struct {
	mu     sync.RWMutex
	rows   map[string][]gateway.Row
	failOn map[string]error
}

// NewTables construye un conjunto de tablas vacío.
func NewTables() *Tables {
	return &Tables{
		rows:   make(map[string][]gateway.Row),
		failOn: make(map[string]error),
	}
}

// From devuelve la tabla por nombre; se crea vacía en el primer uso.
func (ts *Tables) From(name string) gateway.Table {
	return &table{ts: ts, name: name}
}

// Fail hace que toda operación sobre table devuelva err como GatewayError; nil lo desactiva.
func (ts *Tables) Fail(table string, err error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if err == nil {
		delete(ts.failOn, table)
		return
	}
	ts.failOn[table] = err
}

// Len número de filas de table.
func (ts *Tables) Len(table string) int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.rows[table])
}

type table struct {
	ts   *Tables
	name string
}

func (t *table) failure(op string) error {
	if err, ok := t.ts.failOn[t.name]; ok {
		return domain.NewGatewayError(op, t.name, err)
	}
	return nil
}

func (t *table) Select(_ context.Context, q gateway.Query) ([]gateway.Row, error) {
	t.ts.mu.RLock()
	defer t.ts.mu.RUnlock()
	if err := t.failure("select"); err != nil {
		return nil, err
	}
	out := make([]gateway.Row, 0, len(t.ts.rows[t.name]))
	for _, r := range t.ts.rows[t.name] {
		if matches(r, q.Filters) {
			out = append(out, copyRow(r))
		}
	}
	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c := compare(out[i][q.OrderBy], out[j][q.OrderBy])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	return out, nil
}

func (t *table) Insert(_ context.Context, row gateway.Row) (gateway.Row, error) {
	t.ts.mu.Lock()
	defer t.ts.mu.Unlock()
	if err := t.failure("insert"); err != nil {
		return nil, err
	}
	r := copyRow(row)
	id, _ := r[gateway.IDField].(string)
	if id == "" {
		id = uuid.New().String()
		r[gateway.IDField] = id
	}
	for _, existing := range t.ts.rows[t.name] {
		if existing[gateway.IDField] == id {
			return nil, domain.NewGatewayError("insert", t.name,
				fmt.Errorf(`duplicate key value violates unique constraint "%s_pkey"`, t.name))
		}
	}
	t.ts.rows[t.name] = append(t.ts.rows[t.name], r)
	return copyRow(r), nil
}

func (t *table) Update(_ context.Context, patch gateway.Row, idField, id string) (gateway.Row, error) {
	t.ts.mu.Lock()
	defer t.ts.mu.Unlock()
	if err := t.failure("update"); err != nil {
		return nil, err
	}
	for _, r := range t.ts.rows[t.name] {
		if fmt.Sprint(r[idField]) != id {
			continue
		}
		for k, v := range patch {
			if k == idField {
				continue
			}
			r[k] = v
		}
		return copyRow(r), nil
	}
	return nil, domain.NewGatewayError("update", t.name, domain.ErrNotFound)
}

func (t *table) Delete(_ context.Context, idField, id string) error {
	t.ts.mu.Lock()
	defer t.ts.mu.Unlock()
	if err := t.failure("delete"); err != nil {
		return err
	}
	rows := t.ts.rows[t.name]
	kept := rows[:0]
	for _, r := range rows {
		if fmt.Sprint(r[idField]) != id {
			kept = append(kept, r)
		}
	}
	t.ts.rows[t.name] = kept
	return nil
}

func copyRow(r gateway.Row) gateway.Row {
	out := make(gateway.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func matches(r gateway.Row, filters []gateway.Filter) bool {
	for _, f := range filters {
		if fmt.Sprint(r[f.Column]) != fmt.Sprint(f.Value) {
			return false
		}
	}
	return true
}

// compare ordena nil al final, como NULLS LAST.
func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case decimal.Decimal:
		if bv, ok := b.(decimal.Decimal); ok {
			return av.Cmp(bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
