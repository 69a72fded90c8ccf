package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"go.uber.org/zap"

	"github.com/HenryHan168/FlowerStudio/models"
)

// Merchant devices subscribe to this topic to hear about new orders and
// dashboard activity.
const merchantTopic = "merchant_notifications"

// FCMDispatcher announces order events over Firebase Cloud Messaging.
type FCMDispatcher struct {
	client *messaging.Client
	logger *zap.Logger
}

func NewFCMDispatcher(ctx context.Context, app *firebase.App, logger *zap.Logger) (*FCMDispatcher, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}
	return &FCMDispatcher{client: client, logger: logger}, nil
}

func (d *FCMDispatcher) OrderCreated(ctx context.Context, orderNumber, customerName string) error {
	msg := &messaging.Message{
		Topic: merchantTopic,
		Notification: &messaging.Notification{
			Title: "New order",
			Body:  fmt.Sprintf("Customer %s placed order #%s", customerName, orderNumber),
		},
		Data: map[string]string{
			"type":         "new_order",
			"orderNumber":  orderNumber,
			"customerName": customerName,
		},
	}
	id, err := d.client.Send(ctx, msg)
	if err != nil {
		return err
	}
	d.logger.Debug("push sent", zap.String("message_id", id), zap.String("order_number", orderNumber))
	return nil
}

func (d *FCMDispatcher) StatusChanged(ctx context.Context, orderNumber string, status models.OrderStatus, customerName string) error {
	msg := &messaging.Message{
		Topic: merchantTopic,
		Notification: &messaging.Notification{
			Title: "Order status updated",
			Body:  fmt.Sprintf("Order #%s for %s is now %s", orderNumber, customerName, status),
		},
		Data: map[string]string{
			"type":         "status_update",
			"orderNumber":  orderNumber,
			"newStatus":    string(status),
			"customerName": customerName,
		},
	}
	id, err := d.client.Send(ctx, msg)
	if err != nil {
		return err
	}
	d.logger.Debug("push sent", zap.String("message_id", id), zap.String("order_number", orderNumber))
	return nil
}
