package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
)

const orderNumberPrefix = "FL"

// Dispatcher announces order events. Delivery is best-effort; a failed
// dispatch never fails the operation that triggered it.
type Dispatcher interface {
	OrderCreated(ctx context.Context, orderNumber, customerName string) error
	StatusChanged(ctx context.Context, orderNumber string, status models.OrderStatus, customerName string) error
}

// Syncer mirrors order documents to the cloud store, fire-and-forget.
type Syncer interface {
	UploadOrder(ctx context.Context, order *models.Order) error
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

// CheckoutInfo carries the buyer, recipient and delivery details shared by
// every order created from the current cart.
type CheckoutInfo struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	RecipientName  string
	RecipientPhone string

	DeliveryMethod  models.DeliveryMethod
	DeliveryAddress string
	PreferredDate   time.Time
	PreferredTime   string

	Notes string
}

func (info *CheckoutInfo) missingFields() []string {
	var missing []string
	if info.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if info.CustomerPhone == "" {
		missing = append(missing, "customer_phone")
	}
	if info.RecipientName == "" {
		missing = append(missing, "recipient_name")
	}
	if info.RecipientPhone == "" {
		missing = append(missing, "recipient_phone")
	}
	if info.DeliveryMethod != models.DeliveryMethodPickup && info.DeliveryMethod != models.DeliveryMethodDelivery {
		missing = append(missing, "delivery_method")
	}
	if info.DeliveryMethod == models.DeliveryMethodDelivery && info.DeliveryAddress == "" {
		missing = append(missing, "delivery_address")
	}
	return missing
}

// OrderService converts cart lines into orders and governs status
// transitions. Checkout and status changes mutate the store synchronously;
// cloud sync and notifications run out-of-band afterwards.
type OrderService struct {
	db         *gorm.DB
	dispatcher Dispatcher
	syncer     Syncer
	logger     *zap.Logger
}

func NewOrderService(db *gorm.DB, dispatcher Dispatcher, syncer Syncer, logger *zap.Logger) *OrderService {
	return &OrderService{
		db:         db,
		dispatcher: dispatcher,
		syncer:     syncer,
		logger:     logger,
	}
}

// generateOrderNumber builds a display reference like FL202506081234. The
// random suffix makes same-day collisions unlikely, not impossible; the
// UUID primary key is the real identity.
func generateOrderNumber() string {
	return fmt.Sprintf("%s%s%04d", orderNumberPrefix, time.Now().Format("20060102"), 1000+rand.Intn(9000))
}

// Checkout turns every cart line into one pending order. Orders are inserted
// and the consumed lines deleted in a single transaction; on any store
// failure the cart keeps its pre-checkout state.
func (s *OrderService) Checkout(ctx context.Context, info CheckoutInfo) ([]models.Order, error) {
	if missing := info.missingFields(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var lines []models.CartItem
	if err := s.db.WithContext(ctx).Order("added_at").Find(&lines).Error; err != nil {
		return nil, &PersistenceError{Op: "load cart", Err: err}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	deliveryAddress := ""
	if info.DeliveryMethod == models.DeliveryMethodDelivery {
		deliveryAddress = info.DeliveryAddress
	}

	now := time.Now()
	orders := make([]models.Order, 0, len(lines))
	lineIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		orders = append(orders, models.Order{
			ID:                 uuid.NewString(),
			OrderNumber:        generateOrderNumber(),
			CustomerName:       info.CustomerName,
			CustomerPhone:      info.CustomerPhone,
			CustomerEmail:      info.CustomerEmail,
			ProductID:          line.ProductID,
			ProductName:        line.ProductName,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			TotalAmount:        float64(line.Quantity) * line.UnitPrice,
			CustomRequirements: line.CustomRequirements,
			RecipientName:      info.RecipientName,
			RecipientPhone:     info.RecipientPhone,
			DeliveryAddress:    deliveryAddress,
			DeliveryMethod:     info.DeliveryMethod,
			PreferredDate:      info.PreferredDate,
			PreferredTime:      info.PreferredTime,
			Status:             models.OrderStatusPending,
			Notes:              info.Notes,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		lineIDs = append(lineIDs, line.ID)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", lineIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, &PersistenceError{Op: "checkout", Err: err}
	}

	s.logger.Info("checkout completed",
		zap.Int("orders", len(orders)),
		zap.String("customer_name", info.CustomerName))

	go s.afterCheckout(orders)

	return orders, nil
}

// afterCheckout runs the best-effort side effects: cloud upload and creation
// notifications. Failures are logged and discarded, no retry.
func (s *OrderService) afterCheckout(orders []models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for i := range orders {
		order := orders[i]
		if err := s.syncer.UploadOrder(ctx, &order); err != nil {
			s.logger.Warn("order cloud sync failed",
				zap.String("order_number", order.OrderNumber),
				zap.Error(err))
		}
		if err := s.dispatcher.OrderCreated(ctx, order.OrderNumber, order.CustomerName); err != nil {
			s.logger.Warn("order notification failed",
				zap.String("order_number", order.OrderNumber),
				zap.Error(err))
		}
	}
}

// GetOrder looks an order up by id or order number.
func (s *OrderService) GetOrder(ctx context.Context, key string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Where("id = ? OR order_number = ?", key, key).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load order", Err: err}
	}
	return &order, nil
}

// ListOrders returns all orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, &PersistenceError{Op: "list orders", Err: err}
	}
	return orders, nil
}

// AdvanceStatus sets an order's status. Changes out of a terminal status
// (completed, cancelled) are rejected; any other assignment is allowed so
// the merchant dashboard can move orders freely. Notification and cloud sync
// happen after a successful persist and cannot fail the call.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// The terminal guard lives in the UPDATE's WHERE clause; a concurrent
	// request that just cancelled the order cannot be overwritten through a
	// stale read.
	order.UpdatedAt = time.Now()
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status NOT IN ?", order.ID,
			[]models.OrderStatus{models.OrderStatusCompleted, models.OrderStatusCancelled}).
		Updates(map[string]interface{}{"status": newStatus, "updated_at": order.UpdatedAt})
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update order status", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}
	order.Status = newStatus

	s.logger.Info("order status updated",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", string(newStatus)))

	go s.afterStatusChange(*order)

	return order, nil
}

func (s *OrderService) afterStatusChange(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.syncer.UpdateOrderStatus(ctx, order.ID, order.Status); err != nil {
		s.logger.Warn("order status cloud sync failed",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err))
	}
	if err := s.dispatcher.StatusChanged(ctx, order.OrderNumber, order.Status, order.CustomerName); err != nil {
		s.logger.Warn("status notification failed",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err))
	}
}
