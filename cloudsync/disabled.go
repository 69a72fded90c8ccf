package cloudsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/HenryHan168/FlowerStudio/models"
)

// DisabledSyncer is used when Firebase is not configured. Uploads are
// skipped and noted at debug level.
type DisabledSyncer struct {
	logger *zap.Logger
}

func NewDisabledSyncer(logger *zap.Logger) *DisabledSyncer {
	return &DisabledSyncer{logger: logger}
}

func (s *DisabledSyncer) UploadOrder(_ context.Context, order *models.Order) error {
	s.logger.Debug("cloud sync disabled, skipping order upload",
		zap.String("order_number", order.OrderNumber))
	return nil
}

func (s *DisabledSyncer) UpdateOrderStatus(_ context.Context, orderID string, _ models.OrderStatus) error {
	s.logger.Debug("cloud sync disabled, skipping status upload",
		zap.String("order_id", orderID))
	return nil
}
