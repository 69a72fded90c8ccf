package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/HenryHan168/FlowerStudio/models"
)

func newTestContactService(t *testing.T) *ContactService {
	t.Helper()
	return NewContactService(newTestDB(t), zap.NewNop())
}

func TestAddContactValidation(t *testing.T) {
	contacts := newTestContactService(t)

	_, err := contacts.AddContact(context.Background(), ContactInput{
		Phone: "0911111111",
		Type:  "friend",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	want := map[string]bool{"name": true, "type": true}
	for _, field := range verr.Fields {
		delete(want, field)
	}
	if len(want) != 0 {
		t.Errorf("fields = %v, missing %v", verr.Fields, want)
	}
}

func TestAddContactDefaultIsExclusivePerRole(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	first, err := contacts.AddContact(ctx, ContactInput{
		Name: "Chen Mei", Phone: "0911111111",
		Type: models.ContactTypeCustomer, IsDefault: true,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	second, err := contacts.AddContact(ctx, ContactInput{
		Name: "Lin Ya", Phone: "0922222222",
		Type: models.ContactTypeCustomer, IsDefault: true,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	got, err := contacts.DefaultContact(ctx, models.ContactTypeCustomer)
	if err != nil {
		t.Fatalf("DefaultContact: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("default = %q, want the newer contact %q", got.ID, second.ID)
	}

	list, err := contacts.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	for _, contact := range list {
		if contact.ID == first.ID && contact.IsDefault {
			t.Error("older default was not demoted")
		}
	}

	// A "both" default also serves the customer role, so it is demoted too.
	if _, err := contacts.AddContact(ctx, ContactInput{
		Name: "Wang Fang", Phone: "0933333333",
		Type: models.ContactTypeBoth, IsDefault: true,
	}); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	third, err := contacts.AddContact(ctx, ContactInput{
		Name: "Huang Jie", Phone: "0944444444",
		Type: models.ContactTypeCustomer, IsDefault: true,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	got, err = contacts.DefaultContact(ctx, models.ContactTypeCustomer)
	if err != nil {
		t.Fatalf("DefaultContact: %v", err)
	}
	if got.ID != third.ID {
		t.Errorf("default = %q, want %q", got.ID, third.ID)
	}
}

func TestListContactsOrdering(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	frequent, err := contacts.AddContact(ctx, ContactInput{
		Name: "Zhang San", Phone: "0911111111", Type: models.ContactTypeCustomer,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if _, err := contacts.AddContact(ctx, ContactInput{
		Name: "Ah Hua", Phone: "0922222222", Type: models.ContactTypeCustomer,
	}); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	preferred, err := contacts.AddContact(ctx, ContactInput{
		Name: "Zhou Yu", Phone: "0933333333",
		Type: models.ContactTypeCustomer, IsDefault: true,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := contacts.TouchUsage(ctx, frequent.ID); err != nil {
			t.Fatalf("TouchUsage: %v", err)
		}
	}

	list, err := contacts.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("listed %d contacts, want 3", len(list))
	}
	// Default first, then by usage count, then by name.
	if list[0].ID != preferred.ID {
		t.Errorf("first = %q, want the default contact", list[0].Name)
	}
	if list[1].ID != frequent.ID {
		t.Errorf("second = %q, want the most-used contact", list[1].Name)
	}
	if list[2].Name != "Ah Hua" {
		t.Errorf("third = %q, want Ah Hua", list[2].Name)
	}
}

func TestListContactsRoleFilterIncludesBoth(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	if _, err := contacts.AddContact(ctx, ContactInput{
		Name: "Buyer Only", Phone: "0911111111", Type: models.ContactTypeCustomer,
	}); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if _, err := contacts.AddContact(ctx, ContactInput{
		Name: "Recipient Only", Phone: "0922222222", Type: models.ContactTypeRecipient,
	}); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if _, err := contacts.AddContact(ctx, ContactInput{
		Name: "Either Role", Phone: "0933333333", Type: models.ContactTypeBoth,
	}); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	list, err := contacts.ListContacts(ctx, models.ContactTypeRecipient)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("listed %d recipient contacts, want 2", len(list))
	}
	for _, contact := range list {
		if contact.Type == models.ContactTypeCustomer {
			t.Errorf("customer-only contact %q in recipient listing", contact.Name)
		}
	}
}

func TestUpdateContact(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	contact, err := contacts.AddContact(ctx, ContactInput{
		Name: "Chen Mei", Phone: "0911111111", Type: models.ContactTypeCustomer,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	updated, err := contacts.UpdateContact(ctx, contact.ID, ContactInput{
		Name: "Chen Mei-Ling", Phone: "0911111111",
		Email: "mei@example.com", Type: models.ContactTypeBoth, IsDefault: true,
	})
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if updated.Name != "Chen Mei-Ling" || updated.Email != "mei@example.com" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Type != models.ContactTypeBoth || !updated.IsDefault {
		t.Errorf("type/default = %v/%v, want both/true", updated.Type, updated.IsDefault)
	}

	_, err = contacts.UpdateContact(ctx, "no-such-contact", ContactInput{
		Name: "X", Phone: "1", Type: models.ContactTypeCustomer,
	})
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("err = %v, want ErrContactNotFound", err)
	}
}

func TestDeleteContact(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	contact, err := contacts.AddContact(ctx, ContactInput{
		Name: "Chen Mei", Phone: "0911111111", Type: models.ContactTypeCustomer,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if err := contacts.DeleteContact(ctx, contact.ID); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if err := contacts.DeleteContact(ctx, contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("second delete: err = %v, want ErrContactNotFound", err)
	}
}

func TestTouchUsage(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	contact, err := contacts.AddContact(ctx, ContactInput{
		Name: "Chen Mei", Phone: "0911111111", Type: models.ContactTypeCustomer,
	})
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if err := contacts.TouchUsage(ctx, contact.ID); err != nil {
		t.Fatalf("TouchUsage: %v", err)
	}

	list, err := contacts.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if list[0].UsageCount != 1 {
		t.Errorf("usage count = %d, want 1", list[0].UsageCount)
	}
	if list[0].LastUsedAt == nil || time.Since(*list[0].LastUsedAt) > time.Minute {
		t.Errorf("last used at = %v, want just now", list[0].LastUsedAt)
	}

	if err := contacts.TouchUsage(ctx, "no-such-contact"); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("err = %v, want ErrContactNotFound", err)
	}
}

func TestDefaultContactMissing(t *testing.T) {
	contacts := newTestContactService(t)

	_, err := contacts.DefaultContact(context.Background(), models.ContactTypeCustomer)
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("err = %v, want ErrContactNotFound", err)
	}
}

func TestQuickAddSamePersonStoresOneBothContact(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	info := validCheckoutInfo()
	info.RecipientName = info.CustomerName
	info.RecipientPhone = info.CustomerPhone
	info.CustomerEmail = "mei@example.com"

	if err := contacts.QuickAddFromOrder(ctx, info); err != nil {
		t.Fatalf("QuickAddFromOrder: %v", err)
	}

	list, err := contacts.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("stored %d contacts, want 1", len(list))
	}
	if list[0].Type != models.ContactTypeBoth {
		t.Errorf("type = %q, want both", list[0].Type)
	}
	if list[0].Email != "mei@example.com" {
		t.Errorf("email = %q", list[0].Email)
	}
}

func TestQuickAddDistinctPeopleStoresTwoContacts(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	info := validCheckoutInfo()
	info.CustomerEmail = "mei@example.com"
	info.DeliveryMethod = models.DeliveryMethodDelivery
	info.DeliveryAddress = "No. 5, Some Road"

	if err := contacts.QuickAddFromOrder(ctx, info); err != nil {
		t.Fatalf("QuickAddFromOrder: %v", err)
	}

	list, err := contacts.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("stored %d contacts, want 2", len(list))
	}
	for _, contact := range list {
		switch contact.Type {
		case models.ContactTypeCustomer:
			if contact.Name != info.CustomerName || contact.Email != "mei@example.com" {
				t.Errorf("customer contact = %+v", contact)
			}
		case models.ContactTypeRecipient:
			if contact.Name != info.RecipientName || contact.Address != "No. 5, Some Road" {
				t.Errorf("recipient contact = %+v", contact)
			}
		default:
			t.Errorf("unexpected contact type %q", contact.Type)
		}
	}
}

func TestQuickAddSkipsKnownContacts(t *testing.T) {
	contacts := newTestContactService(t)
	ctx := context.Background()

	info := validCheckoutInfo()
	if _, err := contacts.AddContact(ctx, ContactInput{
		Name: info.CustomerName, Phone: info.CustomerPhone,
		Type: models.ContactTypeCustomer,
	}); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	if err := contacts.QuickAddFromOrder(ctx, info); err != nil {
		t.Fatalf("QuickAddFromOrder: %v", err)
	}
	if err := contacts.QuickAddFromOrder(ctx, info); err != nil {
		t.Fatalf("repeat QuickAddFromOrder: %v", err)
	}

	list, err := contacts.ListContacts(ctx, "")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("stored %d contacts, want 2 (known buyer plus new recipient)", len(list))
	}
}
