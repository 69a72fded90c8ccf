package cloudsync

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"go.uber.org/zap"

	"github.com/HenryHan168/FlowerStudio/models"
)

const ordersCollection = "orders"

// FirestoreSyncer mirrors orders into a Firestore collection as flattened
// documents keyed by order id. Uploads are best-effort; the local store is
// the source of truth.
type FirestoreSyncer struct {
	client *firestore.Client
	logger *zap.Logger
}

func NewFirestoreSyncer(ctx context.Context, app *firebase.App, logger *zap.Logger) (*FirestoreSyncer, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}
	return &FirestoreSyncer{client: client, logger: logger}, nil
}

func (s *FirestoreSyncer) UploadOrder(ctx context.Context, order *models.Order) error {
	doc := map[string]interface{}{
		"id":                 order.ID,
		"orderNumber":        order.OrderNumber,
		"customerName":       order.CustomerName,
		"customerPhone":      order.CustomerPhone,
		"customerEmail":      order.CustomerEmail,
		"productName":        order.ProductName,
		"quantity":           order.Quantity,
		"unitPrice":          order.UnitPrice,
		"totalAmount":        order.TotalAmount,
		"customRequirements": order.CustomRequirements,
		"recipientName":      order.RecipientName,
		"recipientPhone":     order.RecipientPhone,
		"deliveryAddress":    order.DeliveryAddress,
		"deliveryMethod":     string(order.DeliveryMethod),
		"preferredDate":      order.PreferredDate,
		"preferredTime":      order.PreferredTime,
		"status":             string(order.Status),
		"notes":              order.Notes,
		"createdAt":          order.CreatedAt,
		"updatedAt":          order.UpdatedAt,
	}
	if _, err := s.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, doc); err != nil {
		return err
	}
	s.logger.Debug("order uploaded", zap.String("order_number", order.OrderNumber))
	return nil
}

func (s *FirestoreSyncer) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	_, err := s.client.Collection(ordersCollection).Doc(orderID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now()},
	})
	return err
}

func (s *FirestoreSyncer) Close() error {
	return s.client.Close()
}
