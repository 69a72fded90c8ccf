package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/HenryHan168/FlowerStudio/models"
)

// LogDispatcher records order announcements in the service log. It stands in
// for push delivery when Firebase is not configured.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) OrderCreated(_ context.Context, orderNumber, customerName string) error {
	d.logger.Info("order created notification",
		zap.String("order_number", orderNumber),
		zap.String("customer_name", customerName))
	return nil
}

func (d *LogDispatcher) StatusChanged(_ context.Context, orderNumber string, status models.OrderStatus, customerName string) error {
	d.logger.Info("order status notification",
		zap.String("order_number", orderNumber),
		zap.String("status", string(status)),
		zap.String("customer_name", customerName))
	return nil
}
