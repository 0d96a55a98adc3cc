package orders

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusPending, "yellow"},
		{StatusProcessing, "blue"},
		{StatusShipped, "purple"},
		{StatusDelivered, "green"},
		{StatusCancelled, "red"},
		{"on-hold", "gray"},
		{"", "gray"},
	}
	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name  string
		q     int
		stock int
		want  int
	}{
		{"in range", 3, 10, 3},
		{"zero", 0, 10, 1},
		{"negative", -5, 10, 1},
		{"at stock", 10, 10, 10},
		{"over stock", 15, 10, 10},
		{"single unit stock", 4, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampQuantity(tt.q, tt.stock); got != tt.want {
				t.Errorf("ClampQuantity(%d, %d) = %d, want %d", tt.q, tt.stock, got, tt.want)
			}
		})
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	item := &OrderItem{Quantity: 3, Price: decimal.NewFromFloat(25.50)}
	want := decimal.NewFromFloat(76.50)
	if !item.Subtotal().Equal(want) {
		t.Errorf("expected subtotal %s, got %s", want, item.Subtotal())
	}
}
