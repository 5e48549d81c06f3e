package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/schooladmin/internal/db"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
	"github.com/yigit/schooladmin/internal/pkg/logger"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type txKey struct{}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// PgTxManager runs work inside a PostgreSQL transaction carried on the context.
type PgTxManager struct {
	db *db.PostgresDB
}

// NewPgTxManager creates a transaction manager for database.
func NewPgTxManager(database *db.PostgresDB) *PgTxManager {
	return &PgTxManager{db: database}
}

// WithinTx implements TxManager.
func (m *PgTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}
	return m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// PgStore implements Store on PostgreSQL.
type PgStore[T any] struct {
	pool   *pgxpool.Pool
	table  Table[T]
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewPgStore creates a store for table backed by pool.
func NewPgStore[T any](pool *pgxpool.Pool, table Table[T]) *PgStore[T] {
	return &PgStore[T]{
		pool:   pool,
		table:  table,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger.Component("repository").With().Str("table", table.Name).Logger(),
	}
}

// conn returns the transaction from ctx when present, otherwise the pool.
func (s *PgStore[T]) conn(ctx context.Context) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

func (s *PgStore[T]) selectColumns() []string {
	return append([]string{"id"}, s.table.Columns...)
}

func (s *PgStore[T]) scanTargets(entity *T) []interface{} {
	return append([]interface{}{s.table.ID(entity)}, s.table.Targets(entity)...)
}

func (s *PgStore[T]) buildList() (string, []interface{}, error) {
	return s.sb.Select(s.selectColumns()...).
		From(s.table.Name).
		OrderBy("id ASC").
		ToSql()
}

func (s *PgStore[T]) buildGet(column string, value interface{}) (string, []interface{}, error) {
	return s.sb.Select(s.selectColumns()...).
		From(s.table.Name).
		Where(squirrel.Eq{column: value}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
}

func (s *PgStore[T]) buildInsert(entity *T) (string, []interface{}, error) {
	if len(s.table.Columns) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING id", s.table.Name), nil, nil
	}
	return s.sb.Insert(s.table.Name).
		Columns(s.table.Columns...).
		Values(s.table.Values(entity)...).
		Suffix("RETURNING id").
		ToSql()
}

func (s *PgStore[T]) buildUpdate(entity *T) (string, []interface{}, error) {
	q := s.sb.Update(s.table.Name)
	values := s.table.Values(entity)
	for i, column := range s.table.Columns {
		q = q.Set(column, values[i])
	}
	return q.Where(squirrel.Eq{"id": *s.table.ID(entity)}).ToSql()
}

func (s *PgStore[T]) buildDelete(id int64) (string, []interface{}, error) {
	return s.sb.Delete(s.table.Name).Where(squirrel.Eq{"id": id}).ToSql()
}

// translate maps PostgreSQL constraint failures onto application errors.
func (s *PgStore[T]) translate(err error, action string) error {
	if constraint, ok := dberrors.UniqueViolationConstraint(err); ok {
		if u, found := s.table.uniqueByConstraint(constraint); found {
			return s.table.conflict(u)
		}
	}
	if dberrors.IsForeignKeyViolation(err) {
		if r, found := s.table.referenceByConstraint(dberrors.ForeignKeyConstraint(err)); found {
			return s.table.brokenReference(r)
		}
	}
	s.logger.Error().Err(err).Str("action", action).Msg("Query failed")
	return fmt.Errorf("error %s %s: %w", action, s.table.Resource, err)
}

// List implements Store.
func (s *PgStore[T]) List(ctx context.Context) ([]*T, error) {
	sql, args, err := s.buildList()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", s.table.Resource, err)
	}

	rows, err := s.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, s.translate(err, "listing")
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		entity := new(T)
		if err := rows.Scan(s.scanTargets(entity)...); err != nil {
			return nil, s.translate(err, "scanning")
		}
		items = append(items, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, s.translate(err, "iterating")
	}
	return items, nil
}

// Get implements Store.
func (s *PgStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	entity, err := s.getBy(ctx, "id", id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.table.notFound(id)
	}
	return entity, err
}

// FindBy implements Store.
func (s *PgStore[T]) FindBy(ctx context.Context, column string, value interface{}) (*T, error) {
	if s.table.columnIndex(column) < 0 {
		return nil, fmt.Errorf("unknown %s column %q", s.table.Resource, column)
	}
	entity, err := s.getBy(ctx, column, value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.table.notFoundBy(column)
	}
	return entity, err
}

func (s *PgStore[T]) getBy(ctx context.Context, column string, value interface{}) (*T, error) {
	sql, args, err := s.buildGet(column, value)
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", s.table.Resource, err)
	}

	entity := new(T)
	err = s.conn(ctx).QueryRow(ctx, sql, args...).Scan(s.scanTargets(entity)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, s.translate(err, "getting")
	}
	return entity, nil
}

// Create implements Store.
func (s *PgStore[T]) Create(ctx context.Context, entity *T) error {
	sql, args, err := s.buildInsert(entity)
	if err != nil {
		return fmt.Errorf("failed to build create %s query: %w", s.table.Resource, err)
	}

	var id int64
	if err := s.conn(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return s.translate(err, "creating")
	}
	*s.table.ID(entity) = id
	return nil
}

// Update implements Store.
func (s *PgStore[T]) Update(ctx context.Context, entity *T) error {
	id := *s.table.ID(entity)
	if len(s.table.Columns) == 0 {
		_, err := s.Get(ctx, id)
		return err
	}

	sql, args, err := s.buildUpdate(entity)
	if err != nil {
		return fmt.Errorf("failed to build update %s query: %w", s.table.Resource, err)
	}

	tag, err := s.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return s.translate(err, "updating")
	}
	if tag.RowsAffected() == 0 {
		return s.table.notFound(id)
	}
	return nil
}

// Delete implements Store. Dependants keep existing with their link set to NULL.
func (s *PgStore[T]) Delete(ctx context.Context, id int64) error {
	sql, args, err := s.buildDelete(id)
	if err != nil {
		return fmt.Errorf("failed to build delete %s query: %w", s.table.Resource, err)
	}

	tag, err := s.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return s.translate(err, "deleting")
	}
	if tag.RowsAffected() == 0 {
		return s.table.notFound(id)
	}
	return nil
}
