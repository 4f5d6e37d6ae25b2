package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).SelectContext(ctx, dest, query, args...)
}

func (r *postgresRepo) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args := q.MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
