package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/swipeshop-backend/pkg/db/dbtest"
	"github.com/angelmondragon/swipeshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestBaseDBBindsContext(t *testing.T) {
	conn := dbtest.Open(t)
	base := NewBase(conn)

	ctx := context.WithValue(context.Background(), ctxKey{}, "value")
	withCtx := base.DB(ctx)
	require.NotNil(t, withCtx.Statement)
	assert.Equal(t, ctx, withCtx.Statement.Context)

	assert.Same(t, conn, base.DB(nil))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	base := NewBase(dbtest.Open(t))
	boom := errors.New("boom")

	err := base.WithTx(ctx, func(tx Base) error {
		row := models.CatalogProduct{ID: "p1", Name: "Jacket", Rank: 10, Price: decimal.Zero}
		require.NoError(t, tx.DB(ctx).Create(&row).Error)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, base.DB(ctx).Model(&models.CatalogProduct{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	base := NewBase(dbtest.Open(t))

	err := base.WithTx(ctx, func(tx Base) error {
		row := models.CatalogProduct{
			ID:         "p1",
			Name:       "Jacket",
			Rank:       10,
			Categories: []models.ProductCategory{{Category: "outerwear"}},
		}
		return tx.DB(ctx).Create(&row).Error
	})
	require.NoError(t, err)

	var tags int64
	require.NoError(t, base.DB(ctx).Model(&models.ProductCategory{}).Where("product_id = ?", "p1").Count(&tags).Error)
	assert.EqualValues(t, 1, tags)
}
