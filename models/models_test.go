package models

import (
	"testing"
	"time"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "preparing", "ready", "delivered", "completed", "cancelled"} {
		status, err := ParseOrderStatus(valid)
		if err != nil {
			t.Errorf("ParseOrderStatus(%q): %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("ParseOrderStatus(%q) = %q", valid, status)
		}
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestTerminalStatuses(t *testing.T) {
	cases := map[OrderStatus]bool{
		OrderStatusPending:   false,
		OrderStatusConfirmed: false,
		OrderStatusPreparing: false,
		OrderStatusReady:     false,
		OrderStatusDelivered: false,
		OrderStatusCompleted: true,
		OrderStatusCancelled: true,
	}
	for status, want := range cases {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestParseProductCategory(t *testing.T) {
	for _, valid := range []string{"wedding", "birthday", "festival", "congratulation", "funeral", "decoration", "potted"} {
		if _, err := ParseProductCategory(valid); err != nil {
			t.Errorf("ParseProductCategory(%q): %v", valid, err)
		}
	}
	if _, err := ParseProductCategory("succulents"); err == nil {
		t.Error("unknown category accepted")
	}
}

func TestCartItemSubtotal(t *testing.T) {
	line := CartItem{UnitPrice: 1200, Quantity: 2}
	if got := line.Subtotal(); got != 2400 {
		t.Errorf("Subtotal() = %v, want 2400", got)
	}
}

func TestStudioIsOpenAt(t *testing.T) {
	studio := StudioInfo{
		BusinessHours: []BusinessHour{
			{DayOfWeek: time.Monday, OpenHour: 9, CloseHour: 18},
			{DayOfWeek: time.Sunday, IsClosed: true},
		},
	}

	monday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.Local) // a Monday
	if !studio.IsOpenAt(monday) {
		t.Error("closed during Monday business hours")
	}
	if studio.IsOpenAt(monday.Add(10 * time.Hour)) {
		t.Error("open at 20:00 Monday")
	}

	sunday := time.Date(2025, 6, 8, 10, 0, 0, 0, time.Local) // a Sunday
	if studio.IsOpenAt(sunday) {
		t.Error("open on a closed day")
	}
}
