package talent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, t *Talent) error
	GetByID(ctx context.Context, id string) (*Talent, error)
	List(ctx context.Context) ([]*Talent, error)
	Search(ctx context.Context, query string) ([]*Talent, error)
	Update(ctx context.Context, t *Talent) error
	Delete(ctx context.Context, id string) error
	SetAvatar(ctx context.Context, id, fileID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, t *Talent) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.talents").
		Columns("user_id", "skill", "is_active").
		Values(t.UserID, t.Skill, t.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create talent query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func selectTalentColumns(psql squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return psql.Select(
		"t.id", "t.user_id", "t.skill", "t.is_active", "t.avatar_file_id",
		"u.first_name", "u.last_name", "t.created_at", "t.updated_at",
	).
		From("public.talents t").
		Join("public.users u ON t.user_id = u.id")
}

func scanTalent(row pgx.Row) (*Talent, error) {
	var t Talent
	err := row.Scan(
		&t.ID, &t.UserID, &t.Skill, &t.IsActive, &t.AvatarFileID,
		&t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan talent failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Talent, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := selectTalentColumns(psql).
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get talent query failed: %w", err)
	}

	return scanTalent(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) queryTalents(ctx context.Context, builder squirrel.SelectBuilder) ([]*Talent, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list talents query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list talents failed: %w", err)
	}
	defer rows.Close()

	var talents []*Talent
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		talents = append(talents, t)
	}

	return talents, rows.Err()
}

func (r *pgxRepository) List(ctx context.Context) ([]*Talent, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return r.queryTalents(ctx, selectTalentColumns(psql).OrderBy("t.created_at DESC"))
}

func (r *pgxRepository) Search(ctx context.Context, query string) ([]*Talent, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	pattern := "%" + query + "%"

	builder := selectTalentColumns(psql).
		Where(squirrel.Or{
			squirrel.ILike{"t.skill": pattern},
			squirrel.ILike{"u.first_name": pattern},
			squirrel.ILike{"u.last_name": pattern},
		}).
		OrderBy("t.created_at DESC")

	return r.queryTalents(ctx, builder)
}

func (r *pgxRepository) Update(ctx context.Context, t *Talent) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.talents").
		Set("skill", t.Skill).
		Set("is_active", t.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update talent query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update talent failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.talents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete talent query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete talent failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetAvatar(ctx context.Context, id, fileID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.talents").
		Set("avatar_file_id", fileID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set avatar query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set avatar failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
