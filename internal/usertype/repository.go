package usertype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, ut *UserType) error
	GetByID(ctx context.Context, id string) (*UserType, error)
	GetByType(ctx context.Context, name string) (*UserType, error)
	List(ctx context.Context) ([]*UserType, error)
	Update(ctx context.Context, ut *UserType) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, ut *UserType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.user_types").
		Columns("type").
		Values(ut.Type).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user type query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ut.ID, &ut.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrTypeTaken
		}
		return fmt.Errorf("create user type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*UserType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "type", "created_at").
		From("public.user_types").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user type query failed: %w", err)
	}

	var ut UserType
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ut.ID, &ut.Type, &ut.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user type failed: %w", err)
	}
	return &ut, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*UserType, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByType(ctx context.Context, name string) (*UserType, error) {
	return r.getBy(ctx, squirrel.Eq{"type": name})
}

func (r *pgxRepository) List(ctx context.Context) ([]*UserType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "type", "created_at").
		From("public.user_types").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list user types failed: %w", err)
	}
	defer rows.Close()

	var types []*UserType
	for rows.Next() {
		var ut UserType
		if err := rows.Scan(&ut.ID, &ut.Type, &ut.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user type failed: %w", err)
		}
		types = append(types, &ut)
	}

	return types, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, ut *UserType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.user_types").
		Set("type", ut.Type).
		Where(squirrel.Eq{"id": ut.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrTypeTaken
		}
		return fmt.Errorf("update user type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.user_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete user type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
