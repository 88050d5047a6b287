package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-weighing-service/internal/database"
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/fekuna/omnipos-weighing-service/internal/record"
	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.NewSQLite(&database.Config{Path: filepath.Join(t.TempDir(), "products.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Initialize(context.Background()))
	return repo
}

func newRecord(product string, packaging model.PackagingType, qty int64, gross, discount, net string) *model.ProductRecord {
	return &model.ProductRecord{
		Product:       product,
		PackagingType: packaging,
		Quantity:      qty,
		GrossWeight:   decimal.RequireFromString(gross),
		Discount:      decimal.RequireFromString(discount),
		NetWeight:     decimal.RequireFromString(net),
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newRecord("tomate", model.PackagingBox, 1, "10", "0", "10"))
	require.NoError(t, err)

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.Initialize(ctx))

	items, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInsertAndFindByKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := newRecord("melão", model.PackagingBag, 3, "12.5", "0.5", "12")
	id, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)

	got, err := repo.FindByKey(ctx, "melão", model.PackagingBag)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "melão", got.Product)
	assert.Equal(t, model.PackagingBag, got.PackagingType)
	assert.Equal(t, int64(3), got.Quantity)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.GrossWeight))
	assert.True(t, decimal.RequireFromString("0.5").Equal(got.Discount))
	assert.True(t, decimal.RequireFromString("12").Equal(got.NetWeight))

	missing, err := repo.FindByKey(ctx, "melão", model.PackagingBox)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, newRecord("tomate", model.PackagingBox, 1, "1", "0", "1"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, newRecord("cebola", model.PackagingBox, 1, "1", "0", "1"))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	// AUTOINCREMENT never reuses an id, even after the newest row is removed.
	_, err = repo.DeleteByID(ctx, second)
	require.NoError(t, err)
	third, err := repo.Insert(ctx, newRecord("coco", model.PackagingBag, 1, "1", "0", "1"))
	require.NoError(t, err)
	assert.Greater(t, third, second)
}

func TestInsertRejectsDuplicateKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newRecord("tomate", model.PackagingBox, 1, "1", "0", "1"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newRecord("tomate", model.PackagingBox, 1, "1", "0", "1"))
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := newRecord("manga", model.PackagingBox, 1, "5", "1", "4")
	_, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	rec.Quantity = 4
	rec.GrossWeight = decimal.RequireFromString("20.3")
	rec.Discount = decimal.RequireFromString("2")
	rec.NetWeight = decimal.RequireFromString("18.3")
	require.NoError(t, repo.Update(ctx, rec))

	got, err := repo.FindByKey(ctx, "manga", model.PackagingBox)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, int64(4), got.Quantity)
	assert.Equal(t, "20.3", got.GrossWeight.String())
	assert.Equal(t, "18.3", got.NetWeight.String())
}

func TestFindAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, rec := range []*model.ProductRecord{
		newRecord("tomate", model.PackagingBox, 1, "10", "0", "10"),
		newRecord("cebola", model.PackagingBag, 2, "8", "1", "7"),
		newRecord("tomate", model.PackagingBag, 3, "6", "0", "6"),
	} {
		_, err := repo.Insert(ctx, rec)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		filters  *dto.RecordFilters
		expected []string
	}{
		{name: "nil filters", filters: nil, expected: []string{"tomate", "cebola", "tomate"}},
		{name: "all sentinel", filters: &dto.RecordFilters{Product: "all"}, expected: []string{"tomate", "cebola", "tomate"}},
		{name: "single product", filters: &dto.RecordFilters{Product: "tomate"}, expected: []string{"tomate", "tomate"}},
		{name: "no match", filters: &dto.RecordFilters{Product: "kiwí"}, expected: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := repo.FindAll(ctx, tc.filters)
			require.NoError(t, err)
			names := make([]string, len(items))
			for i, it := range items {
				names[i] = it.Product
			}
			assert.Equal(t, tc.expected, names)

			again, err := repo.FindAll(ctx, tc.filters)
			require.NoError(t, err)
			assert.Equal(t, items, again)
		})
	}
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, newRecord("coco", model.PackagingBag, 1, "2", "0", "2"))
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, id+100)
	require.NoError(t, err)
	assert.False(t, deleted)

	items, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	deleted, err = repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	items, err = repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, p := range []string{"tomate", "cebola", "cenoura"} {
		_, err := repo.Insert(ctx, newRecord(p, model.PackagingBox, 1, "1", "0", "1"))
		require.NoError(t, err)
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	items, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWithinTx(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := repo.WithinTx(ctx, func(tx record.Repository) error {
			_, err := tx.Insert(ctx, newRecord("goiaba", model.PackagingBox, 1, "1", "0", "1"))
			return err
		})
		require.NoError(t, err)

		got, err := repo.FindByKey(ctx, "goiaba", model.PackagingBox)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.WithinTx(ctx, func(tx record.Repository) error {
			if _, err := tx.Insert(ctx, newRecord("pepino", model.PackagingBag, 1, "1", "0", "1")); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := repo.FindByKey(ctx, "pepino", model.PackagingBag)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nested calls share the transaction", func(t *testing.T) {
		err := repo.WithinTx(ctx, func(tx record.Repository) error {
			return tx.WithinTx(ctx, func(inner record.Repository) error {
				_, err := inner.Insert(ctx, newRecord("chuchu", model.PackagingBox, 1, "1", "0", "1"))
				return err
			})
		})
		require.NoError(t, err)

		got, err := repo.FindByKey(ctx, "chuchu", model.PackagingBox)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
