package place

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const placeColumns = `id::text, name, type, description, address, phone, email, website,
	images, rating, review_count, opening_hours, created_at, updated_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// whereClause renders f starting at placeholder $argn.
func whereClause(f Filter, argn int) (string, []any) {
	clauses := []string{}
	args := []any{}

	text := func(s string) {
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argn, argn))
		args = append(args, likePattern(s))
		argn++
	}
	category := func(t Type) {
		clauses = append(clauses, fmt.Sprintf("type = $%d", argn))
		args = append(args, string(t))
		argn++
	}

	switch f := f.(type) {
	case MatchAll:
	case TextFilter:
		text(f.Text)
	case CategoryFilter:
		category(f.Type)
	case TextAndCategory:
		text(f.Text)
		category(f.Type)
	default:
		panic(fmt.Sprintf("place: unhandled filter %T", f))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// likePattern turns s into a literal substring pattern.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func (r *PostgresRepo) Find(ctx context.Context, f Filter, p Page) ([]Place, error) {
	where, args := whereClause(f, 1)
	argn := len(args) + 1

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM places
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`,
		placeColumns, where, argn, argn+1)
	args = append(args, p.Limit, p.Offset())

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, dataSQL, args...)
	if err != nil {
		return nil, storeError("find places", err)
	}
	defer rows.Close()

	out := []Place{}
	for rows.Next() {
		pl, err := scanPlace(rows)
		if err != nil {
			return nil, storeError("scan place", err)
		}
		out = append(out, pl)
	}
	return out, storeError("find places", rows.Err())
}

func (r *PostgresRepo) Count(ctx context.Context, f Filter) (int, error) {
	where, args := whereClause(f, 1)
	countSQL := "SELECT COUNT(*) FROM places " + where

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return 0, storeError("count places", err)
	}
	return total, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = $1`, placeColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	p, err := scanPlace(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Place{}, ErrNotFound
		}
		return Place{}, storeError("get place", err)
	}
	return p, nil
}

func (r *PostgresRepo) Create(ctx context.Context, p *Place) error {
	const sql = `
		INSERT INTO places (id, name, type, description, address, phone, email, website,
		                    images, rating, review_count, opening_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		p.ID, p.Name, string(p.Type), p.Description, p.Address, p.Phone, p.Email, p.Website,
		p.Images, p.Rating, p.ReviewCount, p.OpeningHours, p.CreatedAt, p.UpdatedAt,
	)
	return storeError("create place", err)
}

func (r *PostgresRepo) Update(ctx context.Context, id string, patch Patch, updatedAt time.Time) (Place, error) {
	sets := []string{}
	args := []any{}
	argn := 1

	set := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argn))
		args = append(args, v)
		argn++
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Type != nil {
		set("type", string(*patch.Type))
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		set("email", optionalString(patch.Email))
	}
	if patch.Website != nil {
		set("website", optionalString(patch.Website))
	}
	if patch.Images != nil {
		set("images", *patch.Images)
	}
	if patch.Rating != nil {
		set("rating", *patch.Rating)
	}
	if patch.ReviewCount != nil {
		set("review_count", *patch.ReviewCount)
	}
	if patch.OpeningHours != nil {
		set("opening_hours", patch.OpeningHours)
	}

	// updated_at never moves behind created_at, even with clock skew
	sets = append(sets, fmt.Sprintf("updated_at = GREATEST($%d, created_at)", argn))
	args = append(args, updatedAt)
	argn++

	query := fmt.Sprintf(`UPDATE places SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argn, placeColumns)
	args = append(args, id)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	p, err := scanPlace(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Place{}, ErrNotFound
		}
		return Place{}, storeError("update place", err)
	}
	return p, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return storeError("delete place", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPlace(row pgx.Row) (Place, error) {
	var (
		p   Place
		typ string
	)
	if err := row.Scan(
		&p.ID, &p.Name, &typ, &p.Description, &p.Address, &p.Phone, &p.Email, &p.Website,
		&p.Images, &p.Rating, &p.ReviewCount, &p.OpeningHours, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return Place{}, err
	}
	p.Type = Type(typ)
	if p.Images == nil {
		p.Images = []string{}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
