package test

import (
	"context"
	"strings"
	"sync"

	"github.com/example/shopfront/internal/domain/model"
)

// KeyStoreStub keeps the credential in memory.
type KeyStoreStub struct {
	mu    sync.Mutex
	Value string
}

func (k *KeyStoreStub) Get() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.Value
}

func (k *KeyStoreStub) Set(token string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.Value = strings.TrimSpace(token)
}

func (k *KeyStoreStub) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.Value = ""
}

// CartStoreStub keeps cart ids in memory with the same dedup semantics as
// the persistent store.
type CartStoreStub struct {
	mu  sync.Mutex
	Ids []int64
}

func (c *CartStoreStub) IDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int64, len(c.Ids))
	copy(out, c.Ids)
	return out
}

func (c *CartStoreStub) SetIDs(ids []int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Ids = append([]int64(nil), ids...)
}

func (c *CartStoreStub) Add(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.Ids {
		if existing == id {
			return
		}
	}
	c.Ids = append(c.Ids, id)
}

func (c *CartStoreStub) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.Ids[:0]
	for _, existing := range c.Ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	c.Ids = kept
}

func (c *CartStoreStub) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Ids = nil
}

// Notification is one recorded toast.
type Notification struct {
	Kind string
	Text string
}

// NotifierRecorder captures toasts for assertions.
type NotifierRecorder struct {
	mu    sync.Mutex
	Notes []Notification
}

func (n *NotifierRecorder) Success(text string) { n.record("success", text) }
func (n *NotifierRecorder) Error(text string)   { n.record("error", text) }
func (n *NotifierRecorder) Info(text string)    { n.record("info", text) }

func (n *NotifierRecorder) record(kind, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Notes = append(n.Notes, Notification{Kind: kind, Text: text})
}

// Last returns the most recent toast, or a zero value when none arrived.
func (n *NotifierRecorder) Last() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Notes) == 0 {
		return Notification{}
	}
	return n.Notes[len(n.Notes)-1]
}

// ClientStub provides controllable behaviour for every store API operation.
type ClientStub struct {
	ListGoodsFn    func(ctx context.Context, page, perPage int, query string) ([]model.Good, error)
	GetGoodFn      func(ctx context.Context, id int64) (*model.Good, error)
	AutocompleteFn func(ctx context.Context, query string) ([]string, error)
	ListOrdersFn   func(ctx context.Context) ([]model.Order, error)
	GetOrderFn     func(ctx context.Context, id int64) (*model.Order, error)
	CreateOrderFn  func(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error)
	UpdateOrderFn  func(ctx context.Context, id int64, payload model.UpdateOrderRequest) (*model.Order, error)
	DeleteOrderFn  func(ctx context.Context, id int64) error
}

func (s *ClientStub) ListGoods(ctx context.Context, page, perPage int, query string) ([]model.Good, error) {
	if s.ListGoodsFn != nil {
		return s.ListGoodsFn(ctx, page, perPage, query)
	}
	return nil, nil
}

func (s *ClientStub) GetGood(ctx context.Context, id int64) (*model.Good, error) {
	if s.GetGoodFn != nil {
		return s.GetGoodFn(ctx, id)
	}
	return &model.Good{ID: id}, nil
}

func (s *ClientStub) Autocomplete(ctx context.Context, query string) ([]string, error) {
	if s.AutocompleteFn != nil {
		return s.AutocompleteFn(ctx, query)
	}
	return nil, nil
}

func (s *ClientStub) ListOrders(ctx context.Context) ([]model.Order, error) {
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx)
	}
	return nil, nil
}

func (s *ClientStub) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetOrderFn != nil {
		return s.GetOrderFn(ctx, id)
	}
	return &model.Order{ID: id}, nil
}

func (s *ClientStub) CreateOrder(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, payload)
	}
	return &model.Order{ID: 1}, nil
}

func (s *ClientStub) UpdateOrder(ctx context.Context, id int64, payload model.UpdateOrderRequest) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, payload)
	}
	return &model.Order{ID: id}, nil
}

func (s *ClientStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// ConfirmerStub answers every confirmation with a fixed verdict.
type ConfirmerStub struct {
	Answer bool
	Asked  []string
}

func (c *ConfirmerStub) Confirm(title, message string) bool {
	c.Asked = append(c.Asked, message)
	return c.Answer
}

// EditorStub returns a prepared edit result.
type EditorStub struct {
	Result model.UpdateOrderRequest
	Save   bool
	Seen   []model.UpdateOrderRequest
}

func (e *EditorStub) Edit(current model.UpdateOrderRequest) (model.UpdateOrderRequest, bool) {
	e.Seen = append(e.Seen, current)
	if !e.Save {
		return current, false
	}
	return e.Result, true
}
