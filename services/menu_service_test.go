package services

import (
	"testing"

	"babylone/entity"
	"babylone/pkg/money"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogGroupsByCategory(t *testing.T) {
	db := testDB(t)
	seedBurger(t, db)
	require.NoError(t, db.Create(&entity.MenuItem{
		ID: "frites", Name: "Frites", Price: 300, Category: "Nos Accompagnements",
	}).Error)

	svc := newMenuService(t, db)
	cats, err := svc.Catalog()
	require.NoError(t, err)
	require.Len(t, cats, 2)

	byID := map[string]CategoryView{}
	for _, c := range cats {
		byID[c.ID] = c
	}
	burgers := byID["nos-hamburgers"]
	require.Equal(t, "Nos Hamburgers", burgers.Name)
	require.Len(t, burgers.Items, 1)
	require.Len(t, burgers.Items[0].Addons, 2) // nested addons come along
	require.Len(t, byID["nos-accompagnements"].Items, 1)
}

func TestAddItemRequiresNamePriceCategory(t *testing.T) {
	db := testDB(t)
	svc := newMenuService(t, db)

	cases := []AddItemIn{
		{Name: "", Price: 500, Category: "Nos Hamburgers"},
		{Name: "TACOS", Price: 0, Category: "Nos Hamburgers"},
		{Name: "TACOS", Price: 500, Category: "  "},
	}
	for _, in := range cases {
		in := in
		_, err := svc.AddItem(&in)
		require.ErrorIs(t, err, ErrValidation)
	}

	// nothing was committed
	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	require.Zero(t, count)
}

func TestAddItemCreatesRow(t *testing.T) {
	db := testDB(t)
	svc := newMenuService(t, db)

	item, err := svc.AddItem(&AddItemIn{
		Name: "TACOS L", Description: "Deux viandes au choix",
		Price: money.Cents(850), Category: "Nos Tacos", IsPopular: true,
	})
	require.NoError(t, err)
	require.Equal(t, "tacos-l", item.ID) // slug from the name when no id given

	got, err := svc.Item("tacos-l")
	require.NoError(t, err)
	require.Equal(t, money.Cents(850), got.Price)
	require.True(t, got.IsPopular)
}

func TestUpdateItem(t *testing.T) {
	db := testDB(t)
	seedBurger(t, db)
	svc := newMenuService(t, db)

	price := money.Cents(950)
	require.NoError(t, svc.UpdateItem("cheese", &UpdateItemIn{Price: &price}))

	got, err := svc.Item("cheese")
	require.NoError(t, err)
	require.Equal(t, price, got.Price)
	require.Equal(t, "CHEESE", got.Name) // untouched fields stay

	zero := money.Cents(0)
	require.ErrorIs(t, svc.UpdateItem("cheese", &UpdateItemIn{Price: &zero}), ErrValidation)
	require.ErrorIs(t, svc.UpdateItem("nope", &UpdateItemIn{Price: &price}), gorm.ErrRecordNotFound)
}

func TestDeleteItem(t *testing.T) {
	db := testDB(t)
	seedBurger(t, db)
	svc := newMenuService(t, db)

	require.NoError(t, svc.DeleteItem("cheese"))
	_, err := svc.Item("cheese")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, svc.DeleteItem("cheese"), gorm.ErrRecordNotFound)
}
