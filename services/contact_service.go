package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/models"
)

// ContactInput carries the writable fields of a contact.
type ContactInput struct {
	Name      string
	Phone     string
	Email     string
	Address   string
	Type      models.ContactType
	IsDefault bool
}

func (in *ContactInput) missingFields() []string {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if _, err := models.ParseContactType(string(in.Type)); err != nil {
		missing = append(missing, "type")
	}
	return missing
}

// ContactService keeps the frequent-contacts book: saved buyers and
// recipients, at most one default per role, ordered by how often they are
// used.
type ContactService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewContactService(db *gorm.DB, logger *zap.Logger) *ContactService {
	return &ContactService{db: db, logger: logger}
}

// AddContact stores a new contact. Marking it default demotes any other
// default serving the same role.
func (s *ContactService) AddContact(ctx context.Context, input ContactInput) (*models.Contact, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	now := time.Now()
	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		Type:      input.Type,
		IsDefault: input.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			if err := clearDefaultContacts(tx, input.Type, contact.ID); err != nil {
				return err
			}
		}
		return tx.Create(&contact).Error
	})
	if err != nil {
		return nil, &PersistenceError{Op: "add contact", Err: err}
	}
	s.logger.Debug("contact added",
		zap.String("contact_id", contact.ID),
		zap.String("name", contact.Name))
	return &contact, nil
}

// UpdateContact replaces a contact's fields.
func (s *ContactService) UpdateContact(ctx context.Context, id string, input ContactInput) (*models.Contact, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var contact models.Contact
	err := s.db.WithContext(ctx).First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load contact", Err: err}
	}

	contact.Name = input.Name
	contact.Phone = input.Phone
	contact.Email = input.Email
	contact.Address = input.Address
	contact.Type = input.Type
	contact.IsDefault = input.IsDefault
	contact.UpdatedAt = time.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			if err := clearDefaultContacts(tx, input.Type, contact.ID); err != nil {
				return err
			}
		}
		return tx.Save(&contact).Error
	})
	if err != nil {
		return nil, &PersistenceError{Op: "update contact", Err: err}
	}
	return &contact, nil
}

// DeleteContact removes a contact.
func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contact{})
	if res.Error != nil {
		return &PersistenceError{Op: "delete contact", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// ListContacts returns contacts serving the given role ("" for all), most
// relevant first: defaults, then by usage count, recency, and name.
func (s *ContactService) ListContacts(ctx context.Context, role models.ContactType) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.WithContext(ctx).Find(&contacts).Error; err != nil {
		return nil, &PersistenceError{Op: "list contacts", Err: err}
	}
	if role != "" {
		filtered := contacts[:0]
		for _, contact := range contacts {
			if contact.Type.Matches(role) {
				filtered = append(filtered, contact)
			}
		}
		contacts = filtered
	}
	sortContacts(contacts)
	return contacts, nil
}

func sortContacts(contacts []models.Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i], contacts[j]
		if a.IsDefault != b.IsDefault {
			return a.IsDefault
		}
		if a.UsageCount != b.UsageCount {
			return a.UsageCount > b.UsageCount
		}
		switch {
		case a.LastUsedAt != nil && b.LastUsedAt != nil:
			if !a.LastUsedAt.Equal(*b.LastUsedAt) {
				return a.LastUsedAt.After(*b.LastUsedAt)
			}
		case a.LastUsedAt != nil:
			return true
		case b.LastUsedAt != nil:
			return false
		}
		return a.Name < b.Name
	})
}

// DefaultContact returns the default contact serving the given role.
func (s *ContactService) DefaultContact(ctx context.Context, role models.ContactType) (*models.Contact, error) {
	contacts, err := s.ListContacts(ctx, role)
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].IsDefault {
			return &contacts[i], nil
		}
	}
	return nil, ErrContactNotFound
}

// TouchUsage records one use of a contact for the frequency ordering.
func (s *ContactService) TouchUsage(ctx context.Context, id string) error {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&models.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return &PersistenceError{Op: "record contact usage", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// QuickAddFromOrder saves the checkout parties as contacts when they are not
// already known (matched by name and phone). When buyer and recipient are the
// same person a single "both" contact is stored.
func (s *ContactService) QuickAddFromOrder(ctx context.Context, info CheckoutInfo) error {
	samePerson := info.CustomerName == info.RecipientName && info.CustomerPhone == info.RecipientPhone
	if samePerson {
		known, err := s.contactExists(ctx, info.CustomerName, info.CustomerPhone)
		if err != nil || known {
			return err
		}
		_, err = s.AddContact(ctx, ContactInput{
			Name:    info.CustomerName,
			Phone:   info.CustomerPhone,
			Email:   info.CustomerEmail,
			Address: info.DeliveryAddress,
			Type:    models.ContactTypeBoth,
		})
		return err
	}

	known, err := s.contactExists(ctx, info.CustomerName, info.CustomerPhone)
	if err != nil {
		return err
	}
	if !known {
		_, err = s.AddContact(ctx, ContactInput{
			Name:  info.CustomerName,
			Phone: info.CustomerPhone,
			Email: info.CustomerEmail,
			Type:  models.ContactTypeCustomer,
		})
		if err != nil {
			return err
		}
	}

	known, err = s.contactExists(ctx, info.RecipientName, info.RecipientPhone)
	if err != nil {
		return err
	}
	if !known {
		_, err = s.AddContact(ctx, ContactInput{
			Name:    info.RecipientName,
			Phone:   info.RecipientPhone,
			Address: info.DeliveryAddress,
			Type:    models.ContactTypeRecipient,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *ContactService) contactExists(ctx context.Context, name, phone string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Contact{}).
		Where("name = ? AND phone = ?", name, phone).
		Count(&count).Error
	if err != nil {
		return false, &PersistenceError{Op: "lookup contact", Err: err}
	}
	return count > 0, nil
}

// clearDefaultContacts demotes defaults serving the given role so at most one
// default exists per role.
func clearDefaultContacts(tx *gorm.DB, role models.ContactType, exceptID string) error {
	types := []models.ContactType{models.ContactTypeBoth}
	if role != models.ContactTypeBoth {
		types = append(types, role)
	}
	return tx.Model(&models.Contact{}).
		Where("is_default = ? AND type IN ? AND id <> ?", true, types, exceptID).
		Updates(map[string]interface{}{"is_default": false, "updated_at": time.Now()}).Error
}
