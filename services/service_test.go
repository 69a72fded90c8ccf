package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.FlowerProduct{},
		&models.CartItem{},
		&models.Order{},
		&models.Contact{},
		&models.StudioInfo{},
		&models.BusinessHour{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testProduct(id, name string, price float64) *models.FlowerProduct {
	return &models.FlowerProduct{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: models.CategoryBirthday,
	}
}

// stubDispatcher records announcements and signals each one on a channel so
// tests can wait for the fire-and-forget goroutine.
type stubDispatcher struct {
	mu      sync.Mutex
	created []string
	changed []string
	err     error
	events  chan string
}

func newStubDispatcher() *stubDispatcher {
	return &stubDispatcher{events: make(chan string, 32)}
}

func (d *stubDispatcher) OrderCreated(_ context.Context, orderNumber, _ string) error {
	d.mu.Lock()
	d.created = append(d.created, orderNumber)
	d.mu.Unlock()
	d.events <- "created"
	return d.err
}

func (d *stubDispatcher) StatusChanged(_ context.Context, orderNumber string, status models.OrderStatus, _ string) error {
	d.mu.Lock()
	d.changed = append(d.changed, orderNumber+":"+string(status))
	d.mu.Unlock()
	d.events <- "changed"
	return d.err
}

func (d *stubDispatcher) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-d.events:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for dispatch %d of %d", i+1, n)
		}
	}
}

type stubSyncer struct {
	mu       sync.Mutex
	uploads  []string
	statuses []string
	err      error
}

func (s *stubSyncer) UploadOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = append(s.uploads, order.OrderNumber)
	return s.err
}

func (s *stubSyncer) UpdateOrderStatus(_ context.Context, orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, orderID+":"+string(status))
	return s.err
}

func newTestOrderService(t *testing.T, db *gorm.DB) (*OrderService, *stubDispatcher, *stubSyncer) {
	t.Helper()
	dispatcher := newStubDispatcher()
	syncer := &stubSyncer{}
	return NewOrderService(db, dispatcher, syncer, zap.NewNop()), dispatcher, syncer
}
