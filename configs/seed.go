package configs

import (
	"log"
	"time"

	"babylone/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the dashboard account on first boot.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Babylone",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads the restaurant's menu on an empty database.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	ingredients := map[string]*entity.Ingredient{}
	for _, ing := range []entity.Ingredient{
		{ID: "steak", Name: "Steak", StockLevel: 100},
		{ID: "cheddar", Name: "Cheddar", StockLevel: 100},
		{ID: "chicken", Name: "Chicken", StockLevel: 80},
		{ID: "fish", Name: "Fish", StockLevel: 40},
		{ID: "salade", Name: "Salade", StockLevel: 60},
		{ID: "tomate", Name: "Tomate", StockLevel: 60},
		{ID: "oignons", Name: "Oignons", StockLevel: 60},
		{ID: "bacon", Name: "Bacon", StockLevel: 50},
		{ID: "oeuf", Name: "Œuf", StockLevel: 50},
		{ID: "kebab", Name: "Viande kebab", StockLevel: 40},
	} {
		ing := ing
		if err := db.Create(&ing).Error; err != nil {
			return err
		}
		ingredients[ing.ID] = &ing
	}

	addons := map[string]*entity.Addon{}
	for _, a := range []entity.Addon{
		{ID: "cheddar", Name: "Cheddar", Price: 100, StockLevel: 100},
		{ID: "bacon", Name: "Bacon", Price: 150, StockLevel: 50},
		{ID: "oeuf", Name: "Œuf", Price: 100, StockLevel: 50},
		{ID: "sauce-algerienne", Name: "Sauce algérienne", Price: 50, StockLevel: 200},
	} {
		a := a
		if err := db.Create(&a).Error; err != nil {
			return err
		}
		addons[a.ID] = &a
	}

	ings := func(ids ...string) []entity.Ingredient {
		out := make([]entity.Ingredient, len(ids))
		for i, id := range ids {
			out[i] = *ingredients[id]
		}
		return out
	}
	adds := func(ids ...string) []entity.Addon {
		out := make([]entity.Addon, len(ids))
		for i, id := range ids {
			out[i] = *addons[id]
		}
		return out
	}

	items := []entity.MenuItem{
		{ID: "cheese", Name: "CHEESE", Description: "Steak, cheddar", Price: 800,
			Category: "Nos Hamburgers", IsPopular: true,
			Ingredients: ings("steak", "cheddar"), Addons: adds("cheddar", "bacon", "oeuf")},
		{ID: "fish", Name: "FISH", Description: "Fish, cheddar, sauce fish", Price: 800,
			Category: "Nos Hamburgers",
			Ingredients: ings("fish", "cheddar"), Addons: adds("cheddar", "sauce-algerienne")},
		{ID: "chicken-burger", Name: "CHICKEN BURGER", Description: "Chicken, cheddar", Price: 850,
			Category: "Nos Hamburgers",
			Ingredients: ings("chicken", "cheddar"), Addons: adds("cheddar", "bacon", "oeuf")},
		{ID: "mexicain", Name: "MEXICAIN",
			Description: "Salade, tomate, oignons, chicken, bacon, toastinette", Price: 1000,
			Category:    "Nos Hamburgers", IsPopular: true,
			Ingredients: ings("salade", "tomate", "oignons", "chicken", "bacon"),
			Addons:      adds("cheddar", "oeuf", "sauce-algerienne")},
		{ID: "doner-kebab", Name: "DONER KEBAB", Description: "Viande kebab, salade, tomate, oignons", Price: 750,
			Category:    "Nos Sandwichs",
			Ingredients: ings("kebab", "salade", "tomate", "oignons"),
			Addons:      adds("cheddar", "sauce-algerienne")},
		{ID: "frites", Name: "Frites", Price: 300, Category: "Nos Accompagnements",
			Addons: adds("cheddar", "sauce-algerienne")},
		{ID: "canette-33cl", Name: "CANETTE 33cl", Price: 200, Category: "Nos Boissons"},
	}
	for _, it := range items {
		it := it
		if err := db.Create(&it).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}

// SeedDemoOrders loads two sample orders so the dashboard has something to
// show in demos.
func SeedDemoOrders() error {
	db := DB()

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count > 0 {
		return nil
	}

	created := time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local)
	orders := []entity.Order{
		{
			ID: "ORD-001", CustomerName: "Ahmed Benali",
			CustomerPhone: "06 12 34 56 78", CustomerEmail: "ahmed.benali@email.com",
			Total: 1900, Status: entity.StatusConfirmed,
			DeliveryAddress: "15 Avenue de la République, 13001 Marseille",
			CreatedAt:       created, EstimatedDelivery: created.Add(45 * time.Minute),
			Items: []entity.OrderItem{
				{ItemID: "cheese", Name: "CHEESE", Qty: 2, UnitPrice: 800},
				{ItemID: "frites", Name: "Frites", Qty: 1, UnitPrice: 300},
			},
		},
		{
			ID: "ORD-002", CustomerName: "Fatima Zahra",
			CustomerPhone: "06 98 76 54 32", CustomerEmail: "fatima.zahra@email.com",
			Total: 950, Status: entity.StatusPreparing,
			DeliveryAddress: "8 Rue de la Paix, 13002 Marseille",
			CreatedAt:       created.Add(75 * time.Minute),
			EstimatedDelivery: created.Add(2 * time.Hour),
			Items: []entity.OrderItem{
				{ItemID: "doner-kebab", Name: "DONER KEBAB", Qty: 1, UnitPrice: 750},
				{ItemID: "canette-33cl", Name: "CANETTE 33cl", Qty: 1, UnitPrice: 200},
			},
		},
	}
	for _, o := range orders {
		o := o
		if err := db.Create(&o).Error; err != nil {
			return err
		}
	}
	return nil
}
