package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	conn bun.IDB
	ctx  context.Context

	tableName string

	// Query clauses
	selectCols []string
	wheres     []*WhereClause
	orders     []*OrderClause
	limitVal   *int
	offsetVal  *int

	// Relations to preload
	relations []string

	// Options
	distinct  bool
	forUpdate bool

	// Timeout
	timeout time.Duration
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
	Negate   bool
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		conn:       db.DB,
		ctx:        context.Background(),
		selectCols: []string{},
		wheres:     []*WhereClause{},
		orders:     []*OrderClause{},
		relations:  []string{},
	}
}

// QueryTx creates a QueryBuilder bound to an open transaction. Queries
// built on it see and hold the transaction's row locks.
func QueryTx[T any](tx bun.Tx) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		conn:       tx,
		ctx:        context.Background(),
		selectCols: []string{},
		wheres:     []*WhereClause{},
		orders:     []*OrderClause{},
		relations:  []string{},
	}
}

// Context sets the context for the query
func (q *QueryBuilder[T]) Context(ctx context.Context) *QueryBuilder[T] {
	q.ctx = ctx
	return q
}

// Table sets the table name explicitly
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Select specifies the columns to select
func (q *QueryBuilder[T]) Select(columns ...string) *QueryBuilder[T] {
	q.selectCols = append(q.selectCols, columns...)
	return q
}

// Distinct adds DISTINCT to the query
func (q *QueryBuilder[T]) Distinct() *QueryBuilder[T] {
	q.distinct = true
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "=",
		Value:    value,
	})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
	})
	return q
}

// WhereNot adds a WHERE NOT condition
func (q *QueryBuilder[T]) WhereNot(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "=",
		Value:    value,
		Negate:   true,
	})
	return q
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IN",
		Value:    values,
	})
	return q
}

// WhereNull adds a WHERE IS NULL condition
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NULL",
	})
	return q
}

// WhereNotNull adds a WHERE IS NOT NULL condition
func (q *QueryBuilder[T]) WhereNotNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NOT NULL",
	})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  sql,
		RawArgs: args,
	})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: string(direction),
	})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// With specifies a relation to preload
func (q *QueryBuilder[T]) With(relation string) *QueryBuilder[T] {
	q.relations = append(q.relations, relation)
	return q
}

// ForUpdate adds FOR UPDATE clause (for row locking)
func (q *QueryBuilder[T]) ForUpdate() *QueryBuilder[T] {
	q.forUpdate = true
	return q
}

// Timeout sets a timeout for the query
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// buildBunQuery assembles a bun SelectQuery from the accumulated clauses.
func (q *QueryBuilder[T]) buildBunQuery() *bun.SelectQuery {
	var model T
	return q.applyClauses(q.conn.NewSelect().Model(&model))
}

// buildBunQueryWithModel binds the query to an existing destination slice,
// which bun requires for relation preloading.
func (q *QueryBuilder[T]) buildBunQueryWithModel(dest *[]T) *bun.SelectQuery {
	return q.applyClauses(q.conn.NewSelect().Model(dest))
}

func (q *QueryBuilder[T]) applyClauses(query *bun.SelectQuery) *bun.SelectQuery {
	if q.tableName != "" {
		query = query.ModelTableExpr(q.tableName)
	}

	if q.distinct {
		query = query.Distinct()
	}
	for _, col := range q.selectCols {
		query = query.Column(col)
	}

	query = applyWheres(query, q.wheres)

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	for _, order := range q.orders {
		query = query.Order(fmt.Sprintf("%s %s", order.Column, order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	if q.forUpdate {
		query = query.For("UPDATE")
	}

	return query
}

// whereApplier is the subset of bun query types that accept WHERE clauses.
type whereApplier[Q any] interface {
	Where(query string, args ...any) Q
}

func applyWheres[Q whereApplier[Q]](query Q, wheres []*WhereClause) Q {
	for _, where := range wheres {
		switch {
		case where.IsRaw:
			query = query.Where(where.RawSQL, where.RawArgs...)
		case where.Operator == "IS NULL" || where.Operator == "IS NOT NULL":
			query = query.Where(fmt.Sprintf("%s %s", where.Column, where.Operator))
		case where.Operator == "IN":
			query = query.Where(fmt.Sprintf("%s IN (?)", where.Column), bun.In(where.Value))
		case where.Negate:
			query = query.Where(fmt.Sprintf("NOT (%s %s ?)", where.Column, where.Operator), where.Value)
		default:
			query = query.Where(fmt.Sprintf("%s %s ?", where.Column, where.Operator), where.Value)
		}
	}
	return query
}
