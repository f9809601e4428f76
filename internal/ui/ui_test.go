package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/example/shopfront/internal/domain/model"
)

func TestTermNotifierExpiry(t *testing.T) {
	var out bytes.Buffer
	n := NewTermNotifier(&out, 5*time.Second)

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return clock }

	n.Success("saved")
	n.Error("broken")

	if got := n.Active(); len(got) != 2 {
		t.Fatalf("active toasts = %d, want 2", len(got))
	}

	clock = clock.Add(6 * time.Second)
	if got := n.Active(); len(got) != 0 {
		t.Fatalf("active toasts after expiry = %d, want 0", len(got))
	}

	printed := out.String()
	if !strings.Contains(printed, "[ok] saved") || !strings.Contains(printed, "[error] broken") {
		t.Fatalf("printed output %q missing toasts", printed)
	}
}

func TestTermConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes word", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "default declines", input: "\n", want: false},
		{name: "eof declines", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewTermConfirmer(bufio.NewReader(strings.NewReader(tt.input)), &out)
			if got := c.Confirm("Delete order", "Sure?"); got != tt.want {
				t.Fatalf("Confirm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTermOrderEditor(t *testing.T) {
	current := model.UpdateOrderRequest{
		DeliveryAddress:  "old street",
		DeliveryDate:     "2024-05-01",
		DeliveryInterval: "08:00-12:00",
		Comment:          "old",
	}

	t.Run("save with partial answers", func(t *testing.T) {
		// New address, keep date, new interval, keep comment, save.
		input := "new street\n\n14:00-18:00\n\ny\n"
		var out bytes.Buffer
		e := NewTermOrderEditor(bufio.NewReader(strings.NewReader(input)), &out)

		updated, save := e.Edit(current)
		if !save {
			t.Fatal("expected the edit to be saved")
		}
		if updated.DeliveryAddress != "new street" {
			t.Fatalf("address = %q", updated.DeliveryAddress)
		}
		if updated.DeliveryDate != "2024-05-01" {
			t.Fatalf("blank answer changed the date to %q", updated.DeliveryDate)
		}
		if updated.DeliveryInterval != "14:00-18:00" {
			t.Fatalf("interval = %q", updated.DeliveryInterval)
		}
		if updated.Comment != "old" {
			t.Fatalf("comment = %q", updated.Comment)
		}
	})

	t.Run("declined save keeps current", func(t *testing.T) {
		input := "new street\n\n\n\nn\n"
		var out bytes.Buffer
		e := NewTermOrderEditor(bufio.NewReader(strings.NewReader(input)), &out)

		updated, save := e.Edit(current)
		if save {
			t.Fatal("declined edit reported as saved")
		}
		if updated != current {
			t.Fatalf("declined edit returned %+v, want the original", updated)
		}
	})
}

func TestViewsSmoke(t *testing.T) {
	discount := 5.0
	var out bytes.Buffer

	catalogView := NewCatalogView(&out)
	catalogView.RenderGoods([]model.Good{{ID: 1, Name: "mug", MainCategory: "Kitchen", ActualPrice: 10, DiscountPrice: &discount, Rating: 4.2}}, true)
	catalogView.RenderCategories([]string{"Kitchen"}, map[string]bool{"Kitchen": true})
	if !strings.Contains(out.String(), "mug") || !strings.Contains(out.String(), "[x] Kitchen") {
		t.Fatalf("catalog output %q", out.String())
	}

	out.Reset()
	cartView := NewCartView(&out)
	cartView.RenderItems([]model.Good{{ID: 1, Name: "mug", ActualPrice: 10}}, 10)
	if !strings.Contains(out.String(), "total: 10.00") {
		t.Fatalf("cart output %q", out.String())
	}

	out.Reset()
	ordersView := NewOrdersView(&out)
	ordersView.RenderOrders(
		[]model.Order{{ID: 7, CreatedAt: "bad-stamp", DeliveryDate: "01.05.2024", DeliveryInterval: "08:00-12:00"}},
		[]string{"mug and 1 more"},
		[]float64{15},
	)
	if !strings.Contains(out.String(), "#7 bad-stamp | mug and 1 more | 15.00 | 01.05.2024 08:00-12:00") {
		t.Fatalf("orders output %q", out.String())
	}
}
