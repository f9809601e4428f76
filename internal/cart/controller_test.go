package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/example/shopfront/internal/adapter/storeapi"
	"github.com/example/shopfront/internal/domain/model"
	"github.com/example/shopfront/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type cartFixture struct {
	controller *Controller
	client     *test.ClientStub
	keys       *test.KeyStoreStub
	cart       *test.CartStoreStub
	view       *test.CartViewRecorder
	notifier   *test.NotifierRecorder
}

func newCartFixture(client *test.ClientStub) *cartFixture {
	f := &cartFixture{
		client:   client,
		keys:     &test.KeyStoreStub{Value: "key"},
		cart:     &test.CartStoreStub{},
		view:     &test.CartViewRecorder{},
		notifier: &test.NotifierRecorder{},
	}
	f.controller = NewController(client, f.keys, f.cart, f.view, f.notifier, discardLogger())
	return f
}

// validForm returns a form that passes every checkout check.
func validForm() Form {
	return Form{
		FullName:         "Ada Lovelace",
		DeliveryAddress:  "12 Analytical St",
		Phone:            "+1 555 0100",
		Email:            "ada@example.com",
		DeliveryDate:     "2024-05-01",
		DeliveryInterval: "12:00-14:00",
		Comment:          "leave at the door",
		Subscribe:        true,
		CardNumber:       "4111 1111 1111 1111",
		CardHolder:       "ADA LOVELACE",
		CardExpiry:       "12/27",
		CardCVC:          "123",
	}
}

func TestRenderResolvesGoods(t *testing.T) {
	discount := 30.0
	goods := map[int64]model.Good{
		1: {ID: 1, Name: "mug", ActualPrice: 40, DiscountPrice: &discount},
		2: {ID: 2, Name: "plate", ActualPrice: 60},
	}

	f := newCartFixture(&test.ClientStub{
		GetGoodFn: func(ctx context.Context, id int64) (*model.Good, error) {
			g, ok := goods[id]
			if !ok {
				return nil, errors.New("not found")
			}
			return &g, nil
		},
	})
	f.cart.SetIDs([]int64{1, 2})

	f.controller.Render(context.Background())

	if len(f.view.Items) != 2 {
		t.Fatalf("rendered %d items, want 2", len(f.view.Items))
	}
	if f.view.Items[0].ID != 1 || f.view.Items[1].ID != 2 {
		t.Fatalf("item order %v, want insertion order", f.view.Items)
	}
	if f.view.Total != 90 {
		t.Fatalf("total = %v, want 90 (effective prices)", f.view.Total)
	}
}

func TestRenderSkipsFailedLookups(t *testing.T) {
	f := newCartFixture(&test.ClientStub{
		GetGoodFn: func(ctx context.Context, id int64) (*model.Good, error) {
			if id == 2 {
				return nil, errors.New("gone")
			}
			return &model.Good{ID: id, ActualPrice: 10}, nil
		},
	})
	f.cart.SetIDs([]int64{1, 2, 3})

	f.controller.Render(context.Background())

	if len(f.view.Items) != 2 {
		t.Fatalf("rendered %d items, want 2 (failed lookup skipped)", len(f.view.Items))
	}
	if f.view.Total != 20 {
		t.Fatalf("total = %v, want 20", f.view.Total)
	}
}

func TestRenderEmptyCart(t *testing.T) {
	f := newCartFixture(&test.ClientStub{})

	f.controller.Render(context.Background())

	if !f.view.EmptyShown {
		t.Fatal("empty cart did not show the empty state")
	}
}

func TestRemoveRedraws(t *testing.T) {
	f := newCartFixture(&test.ClientStub{
		GetGoodFn: func(ctx context.Context, id int64) (*model.Good, error) {
			return &model.Good{ID: id, ActualPrice: 5}, nil
		},
	})
	f.cart.SetIDs([]int64{1, 2})

	f.controller.Remove(context.Background(), 1)

	if got := f.cart.IDs(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("cart ids = %v, want [2]", got)
	}
	if len(f.view.Items) != 1 {
		t.Fatalf("rendered %d items after removal, want 1", len(f.view.Items))
	}
	if got := f.notifier.Last(); got.Kind != "success" {
		t.Fatalf("expected success toast, got %+v", got)
	}
}

func TestCheckoutValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *cartFixture, form *Form)
		wantMsg string
	}{
		{
			name:    "missing key",
			prepare: func(f *cartFixture, form *Form) { f.keys.Value = "" },
			wantMsg: "Set an API key before ordering",
		},
		{
			name:    "empty cart",
			prepare: func(f *cartFixture, form *Form) { f.cart.Clear() },
			wantMsg: "Cart is empty",
		},
		{
			name:    "missing contact field",
			prepare: func(f *cartFixture, form *Form) { form.Email = "  " },
			wantMsg: "Fill in name, address, phone and email",
		},
		{
			name:    "bad delivery date",
			prepare: func(f *cartFixture, form *Form) { form.DeliveryDate = "01.05.2024" },
			wantMsg: "Choose a delivery date",
		},
		{
			name:    "bad interval",
			prepare: func(f *cartFixture, form *Form) { form.DeliveryInterval = "09:00-10:00" },
			wantMsg: "Choose a delivery interval",
		},
		{
			name:    "short card number",
			prepare: func(f *cartFixture, form *Form) { form.CardNumber = "4111 1111" },
			wantMsg: "Card number must be 16 digits",
		},
		{
			name:    "bad expiry",
			prepare: func(f *cartFixture, form *Form) { form.CardExpiry = "2027-12" },
			wantMsg: "Card expiry must be MM/YY",
		},
		{
			name:    "bad cvc",
			prepare: func(f *cartFixture, form *Form) { form.CardCVC = "12" },
			wantMsg: "CVC must be 3 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			f := newCartFixture(&test.ClientStub{
				CreateOrderFn: func(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
					created = true
					return &model.Order{ID: 1}, nil
				},
			})
			f.cart.SetIDs([]int64{1})
			form := validForm()
			tt.prepare(f, &form)

			f.controller.Checkout(context.Background(), form)

			if created {
				t.Fatal("invalid form reached the store")
			}
			got := f.notifier.Last()
			if got.Kind != "error" || got.Text != tt.wantMsg {
				t.Fatalf("toast = %+v, want error %q", got, tt.wantMsg)
			}
		})
	}
}

func TestCheckoutRevealsPaymentBlock(t *testing.T) {
	tests := []struct {
		name  string
		blank func(form *Form)
	}{
		{name: "missing number", blank: func(form *Form) { form.CardNumber = "" }},
		{name: "missing holder", blank: func(form *Form) { form.CardHolder = "  " }},
		{name: "missing expiry", blank: func(form *Form) { form.CardExpiry = "" }},
		{name: "missing cvc", blank: func(form *Form) { form.CardCVC = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			f := newCartFixture(&test.ClientStub{
				CreateOrderFn: func(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
					created = true
					return &model.Order{ID: 1}, nil
				},
			})
			f.cart.SetIDs([]int64{1})
			form := validForm()
			tt.blank(&form)

			f.controller.Checkout(context.Background(), form)

			if created {
				t.Fatal("incomplete payment details reached the store")
			}
			if !f.view.PaymentShown {
				t.Fatal("payment block not revealed")
			}
		})
	}
}

func TestCheckoutSubmitsOrder(t *testing.T) {
	var sent model.CreateOrderRequest
	f := newCartFixture(&test.ClientStub{
		CreateOrderFn: func(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
			sent = payload
			return &model.Order{ID: 42}, nil
		},
	})
	f.cart.SetIDs([]int64{1, 2})

	f.controller.Checkout(context.Background(), validForm())

	if sent.DeliveryDate != "01.05.2024" {
		t.Fatalf("delivery_date = %q, want wire form %q", sent.DeliveryDate, "01.05.2024")
	}
	if len(sent.GoodIDs) != 2 || sent.GoodIDs[0] != 1 || sent.GoodIDs[1] != 2 {
		t.Fatalf("good_ids = %v, want [1 2]", sent.GoodIDs)
	}
	if sent.Subscribe != 1 {
		t.Fatalf("subscribe = %d, want 1", sent.Subscribe)
	}
	if got := f.cart.IDs(); len(got) != 0 {
		t.Fatalf("cart not cleared after checkout: %v", got)
	}
	if !f.view.EmptyShown {
		t.Fatal("cart not re-rendered as empty after checkout")
	}
	if got := f.notifier.Last(); got.Kind != "success" || got.Text != "Order 42 created" {
		t.Fatalf("toast = %+v, want order 42 success", got)
	}
}

func TestCheckoutUnknownOrderID(t *testing.T) {
	f := newCartFixture(&test.ClientStub{
		CreateOrderFn: func(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
			return &model.Order{}, nil
		},
	})
	f.cart.SetIDs([]int64{1})

	f.controller.Checkout(context.Background(), validForm())

	if got := f.notifier.Last(); got.Text != "Order unknown created" {
		t.Fatalf("toast = %+v, want unknown order id wording", got)
	}
}

func TestCheckoutServerFailure(t *testing.T) {
	f := newCartFixture(&test.ClientStub{
		CreateOrderFn: func(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
			return nil, &storeapi.RequestFailedError{Status: 422, Message: "delivery date is in the past"}
		},
	})
	f.cart.SetIDs([]int64{1})

	f.controller.Checkout(context.Background(), validForm())

	if got := f.cart.IDs(); len(got) != 1 {
		t.Fatalf("cart cleared on failed checkout: %v", got)
	}
	if got := f.notifier.Last(); got.Kind != "error" || got.Text != "delivery date is in the past" {
		t.Fatalf("toast = %+v, want the server message", got)
	}
}
