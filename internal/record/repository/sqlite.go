package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-weighing-service/internal/catalog"
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/fekuna/omnipos-weighing-service/internal/record"
	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    product        TEXT    NOT NULL,
    packaging_type TEXT    NOT NULL,
    quantity       INTEGER NOT NULL DEFAULT 0,
    gross_weight   REAL    NOT NULL DEFAULT 0,
    discount       REAL    NOT NULL DEFAULT 0,
    net_weight     REAL    NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_product_packaging
    ON products (product, packaging_type);
`

const selectColumns = `id, product, packaging_type, quantity, gross_weight, discount, net_weight`

type SQLiteRepository struct {
	DB *sqlx.DB

	// ext is either DB or the transaction this repository is bound to.
	ext  sqlx.ExtContext
	inTx bool
}

var _ record.Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db, ext: db}
}

func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if _, err := r.ext.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByKey(ctx context.Context, product string, packaging model.PackagingType) (*model.ProductRecord, error) {
	var rec model.ProductRecord
	query := `SELECT ` + selectColumns + ` FROM products WHERE product = ? AND packaging_type = ? LIMIT 1`
	err := sqlx.GetContext(ctx, r.ext, &rec, query, product, packaging)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Caller decides whether to insert
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.RecordFilters) ([]model.ProductRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM products`
	args := []interface{}{}

	if f != nil && !catalog.IsAll(f.Product) {
		query += ` WHERE product = ?`
		args = append(args, f.Product)
	}
	query += ` ORDER BY id ASC`

	items := []model.ProductRecord{}
	if err := sqlx.SelectContext(ctx, r.ext, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *model.ProductRecord) (int64, error) {
	query := `
        INSERT INTO products (product, packaging_type, quantity, gross_weight, discount, net_weight)
        VALUES (:product, :packaging_type, :quantity, :gross_weight, :discount, :net_weight)
    `
	res, err := sqlx.NamedExecContext(ctx, r.ext, query, rec)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	rec.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, rec *model.ProductRecord) error {
	query := `
        UPDATE products
        SET quantity = :quantity,
            gross_weight = :gross_weight,
            discount = :discount,
            net_weight = :net_weight
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, r.ext, query, rec)
	if err != nil {
		return fmt.Errorf("failed to update record %d: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.ext.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.ext.ExecContext(ctx, "DELETE FROM products")
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	return res.RowsAffected()
}

// WithinTx runs fn against a repository bound to a single transaction.
// Nested calls reuse the outer transaction.
func (r *SQLiteRepository) WithinTx(ctx context.Context, fn func(repo record.Repository) error) error {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&SQLiteRepository{DB: r.DB, ext: tx, inTx: true}); err != nil {
		return err
	}
	return tx.Commit()
}
