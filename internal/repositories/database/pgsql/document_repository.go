package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentRepository stores one document type as JSONB rows of its own table.
// PT is the pointer type of T and exposes the document envelope.
type PgxDocumentRepository[T any, PT interface {
	*T
	domain.Entity
}] struct {
	BaseRepository
	schema documentSchema
	now    func() time.Time
}

func newPgxDocumentRepository[T any, PT interface {
	*T
	domain.Entity
}](pool *pgxpool.Pool, schema documentSchema) *PgxDocumentRepository[T, PT] {
	return &PgxDocumentRepository[T, PT]{
		BaseRepository: BaseRepository{Pool: pool},
		schema:         schema,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func naturalKey(e domain.Entity) *string {
	if k := e.NaturalKey(); k != "" {
		return &k
	}
	return nil
}

func (r *PgxDocumentRepository[T, PT]) decode(body []byte) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", r.schema.table, err)
	}
	return doc, nil
}

func (r *PgxDocumentRepository[T, PT]) Create(ctx context.Context, doc *T) error {
	entity := PT(doc)
	meta := entity.Meta()
	if meta.ID == "" {
		meta.ID = utils.NewObjectID()
	}
	now := r.now()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", r.schema.table, err)
	}
	query := `INSERT INTO ` + r.schema.table + ` (id, natural_key, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.Pool.Exec(ctx, query, meta.ID, naturalKey(entity), body, now, now)
	return mapPgError(err, "failed to insert into "+r.schema.table)
}

func (r *PgxDocumentRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	var body []byte
	err := r.Pool.QueryRow(ctx, `SELECT doc FROM `+r.schema.table+` WHERE id = $1`, id).Scan(&body)
	if err != nil {
		return nil, mapPgError(err, "failed to find document in "+r.schema.table)
	}
	return r.decode(body)
}

func (r *PgxDocumentRepository[T, PT]) FindAll(ctx context.Context, q domain.ListQuery) ([]T, int64, error) {
	where, args, err := r.schema.buildWhere(q)
	if err != nil {
		return nil, 0, err
	}
	order, err := r.schema.buildOrder(q.Sort)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM `+r.schema.table+where, args...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "failed to count "+r.schema.table)
	}

	query := `SELECT doc FROM ` + r.schema.table + where + order
	if q.Limit > 0 {
		args = append(args, q.Limit, pagination.Offset(q.Page, q.Limit))
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "failed to query "+r.schema.table)
	}
	defer rows.Close()

	docs := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s row: %w", r.schema.table, err)
		}
		doc, err := r.decode(body)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating %s rows: %w", r.schema.table, err)
	}
	return docs, total, nil
}

func (r *PgxDocumentRepository[T, PT]) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	where, args, err := r.schema.buildWhere(domain.ListQuery{Filter: filter})
	if err != nil {
		return 0, err
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM `+r.schema.table+where, args...).Scan(&total); err != nil {
		return 0, mapPgError(err, "failed to count "+r.schema.table)
	}
	return total, nil
}

func (r *PgxDocumentRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	entity := PT(doc)
	meta := entity.Meta()
	meta.UpdatedAt = r.now()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", r.schema.table, err)
	}
	query := `UPDATE ` + r.schema.table + ` SET natural_key = $2, doc = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.Pool.Exec(ctx, query, meta.ID, naturalKey(entity), body, meta.UpdatedAt)
	if err != nil {
		return mapPgError(err, "failed to update "+r.schema.table)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s document %s: %w", r.schema.table, meta.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDocumentRepository[T, PT]) Mutate(ctx context.Context, id string, fn func(doc *T) error) (*T, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var body []byte
	err = tx.QueryRow(ctx, `SELECT doc FROM `+r.schema.table+` WHERE id = $1 FOR UPDATE`, id).Scan(&body)
	if err != nil {
		return nil, mapPgError(err, "failed to lock document in "+r.schema.table)
	}
	doc, err := r.decode(body)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}

	entity := PT(doc)
	meta := entity.Meta()
	meta.ID = id
	meta.UpdatedAt = r.now()
	if body, err = json.Marshal(doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s document: %w", r.schema.table, err)
	}
	query := `UPDATE ` + r.schema.table + ` SET natural_key = $2, doc = $3, updated_at = $4 WHERE id = $1`
	if _, err := tx.Exec(ctx, query, id, naturalKey(entity), body, meta.UpdatedAt); err != nil {
		return nil, mapPgError(err, "failed to update "+r.schema.table)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *PgxDocumentRepository[T, PT]) Delete(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM `+r.schema.table+` WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err, "failed to delete from "+r.schema.table)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s document %s: %w", r.schema.table, id, apperrors.ErrNotFound)
	}
	return nil
}
