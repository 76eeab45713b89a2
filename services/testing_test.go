package services

import (
	"strings"
	"sync"
	"testing"

	"babylone/entity"
	"babylone/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a per-test in-memory sqlite. The shared-cache DSN keeps every
// connection in the pool pointed at the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Ingredient{}, &entity.Addon{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedBurger(t *testing.T, db *gorm.DB) {
	t.Helper()
	item := entity.MenuItem{
		ID: "cheese", Name: "CHEESE", Description: "Steak, cheddar",
		Price: 800, Category: "Nos Hamburgers", IsPopular: true,
		Ingredients: []entity.Ingredient{
			{ID: "steak", Name: "Steak", StockLevel: 100},
		},
		Addons: []entity.Addon{
			{ID: "cheddar", Name: "Cheddar", Price: 100, StockLevel: 100},
			{ID: "bacon", Name: "Bacon", Price: 150, StockLevel: 50},
		},
	}
	require.NoError(t, db.Create(&item).Error)
}

func newMenuService(t *testing.T, db *gorm.DB) *MenuService {
	t.Helper()
	return NewMenuService(repository.NewMenuRepository(db))
}

// fakeNotifier records pushes instead of touching a websocket.
type fakeNotifier struct {
	mu         sync.Mutex
	orders     []string
	messages   []string
	broadcasts []string
}

func (f *fakeNotifier) NotifyOrder(orderID, message string, _ entity.OrderStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, orderID)
	f.messages = append(f.messages, message)
}

func (f *fakeNotifier) Broadcast(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcasts = append(f.broadcasts, message)
}
