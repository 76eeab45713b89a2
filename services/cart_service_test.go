package services

import (
	"testing"

	"babylone/pkg/money"
	"babylone/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCartServiceAddMergesPerSession(t *testing.T) {
	db := testDB(t)
	seedBurger(t, db)
	svc := NewCartService(repository.NewMenuRepository(db))

	in := &AddToCartIn{ItemID: "cheese", AddonIDs: []string{"cheddar"}}
	line, err := svc.Add("sess-1", in)
	require.NoError(t, err)
	require.Equal(t, "cheese-cheddar", line.LineID)
	require.Equal(t, money.Cents(900), line.UnitPrice)

	_, err = svc.Add("sess-1", in)
	require.NoError(t, err)

	view := svc.Get("sess-1")
	require.Len(t, view.Lines, 1)
	require.Equal(t, 2, view.TotalItemCount)
	require.Equal(t, money.Cents(1800), view.TotalAmount)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	db := testDB(t)
	seedBurger(t, db)
	svc := NewCartService(repository.NewMenuRepository(db))

	_, err := svc.Add("sess-a", &AddToCartIn{ItemID: "cheese"})
	require.NoError(t, err)

	require.Empty(t, svc.Get("sess-b").Lines)
	require.Len(t, svc.Get("sess-a").Lines, 1)
}

func TestCartServiceUnknownItem(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(repository.NewMenuRepository(db))

	_, err := svc.Add("sess-1", &AddToCartIn{ItemID: "nope"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.Empty(t, svc.Get("sess-1").Lines)
}

func TestCartServiceQtyAndRemove(t *testing.T) {
	db := testDB(t)
	seedBurger(t, db)
	svc := NewCartService(repository.NewMenuRepository(db))

	_, err := svc.Add("s", &AddToCartIn{ItemID: "cheese"})
	require.NoError(t, err)

	svc.UpdateQty("s", "cheese", 4)
	require.Equal(t, 4, svc.Get("s").TotalItemCount)

	svc.UpdateQty("s", "cheese", 0)
	require.Empty(t, svc.Get("s").Lines)

	// removing again stays silent
	svc.Remove("s", "cheese")
	require.Empty(t, svc.Get("s").Lines)
}
