package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
)

// CartService maintains the set of pending cart lines and computes derived
// totals. Every mutation is persisted before the call returns.
type CartService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCartService(db *gorm.DB, logger *zap.Logger) *CartService {
	return &CartService{db: db, logger: logger}
}

// AddLine creates a new cart line from a product snapshot. Quantity defaults
// to 1 when not positive.
func (s *CartService) AddLine(ctx context.Context, product *models.FlowerProduct, quantity int, customRequirements string) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	now := time.Now()
	line := models.CartItem{
		ID:                 uuid.NewString(),
		ProductID:          product.ID,
		ProductName:        product.Name,
		UnitPrice:          product.Price,
		ProductCategory:    product.Category,
		ProductImageName:   product.ImageName,
		Quantity:           quantity,
		CustomRequirements: customRequirements,
		AddedAt:            now,
		UpdatedAt:          now,
	}
	if err := s.db.WithContext(ctx).Create(&line).Error; err != nil {
		return nil, &PersistenceError{Op: "add cart line", Err: err}
	}
	s.logger.Debug("cart line added",
		zap.String("line_id", line.ID),
		zap.String("product_name", line.ProductName),
		zap.Int("quantity", line.Quantity))
	return &line, nil
}

// Lines returns all cart lines in the order they were added.
func (s *CartService) Lines(ctx context.Context) ([]models.CartItem, error) {
	var lines []models.CartItem
	if err := s.db.WithContext(ctx).Order("added_at").Find(&lines).Error; err != nil {
		return nil, &PersistenceError{Op: "list cart lines", Err: err}
	}
	return lines, nil
}

// SetQuantity updates a line's quantity. A quantity of zero or less deletes
// the line; a zero-quantity line is never stored.
func (s *CartService) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveLine(ctx, lineID)
	}
	res := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", lineID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if res.Error != nil {
		return &PersistenceError{Op: "set cart quantity", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrCartLineNotFound
	}
	return nil
}

// UpdateRequirements replaces a line's customization text.
func (s *CartService) UpdateRequirements(ctx context.Context, lineID, requirements string) error {
	res := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", lineID).
		Updates(map[string]interface{}{"custom_requirements": requirements, "updated_at": time.Now()})
	if res.Error != nil {
		return &PersistenceError{Op: "update cart requirements", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrCartLineNotFound
	}
	return nil
}

// RemoveLine deletes a line. Removing an unknown id is a no-op.
func (s *CartService) RemoveLine(ctx context.Context, lineID string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", lineID).Delete(&models.CartItem{}).Error; err != nil {
		return &PersistenceError{Op: "remove cart line", Err: err}
	}
	return nil
}

// Clear deletes every cart line.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.CartItem{}).Error; err != nil {
		return &PersistenceError{Op: "clear cart", Err: err}
	}
	return nil
}

// Subtotal returns unit price times quantity for one line.
func (s *CartService) Subtotal(ctx context.Context, lineID string) (float64, error) {
	var line models.CartItem
	err := s.db.WithContext(ctx).Where("id = ?", lineID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrCartLineNotFound
	}
	if err != nil {
		return 0, &PersistenceError{Op: "load cart line", Err: err}
	}
	return line.Subtotal(), nil
}

// Total sums the subtotals of all lines.
func (s *CartService) Total(ctx context.Context) (float64, error) {
	lines, err := s.Lines(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total, nil
}

// TotalQuantity sums the quantities of all lines.
func (s *CartService) TotalQuantity(ctx context.Context) (int, error) {
	lines, err := s.Lines(ctx)
	if err != nil {
		return 0, err
	}
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count, nil
}
