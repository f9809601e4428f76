package test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/example/shopfront/internal/domain/model"
)

// StoreServer is an in-memory stand-in for the remote store API. It
// enforces the query-parameter credential, serves paged goods listings,
// autocomplete and full order CRUD, and compresses responses the way the
// production host does.
type StoreServer struct {
	Server *httptest.Server
	APIKey string

	mu          sync.Mutex
	goods       []model.Good
	orders      map[int64]model.Order
	nextOrderID int64
	requests    int
}

// NewStoreServer starts a fake store API seeded with the given goods.
func NewStoreServer(apiKey string, goods []model.Good) *StoreServer {
	gin.SetMode(gin.TestMode)

	s := &StoreServer{
		APIKey:      apiKey,
		goods:       goods,
		orders:      make(map[int64]model.Order),
		nextOrderID: 1,
	}

	engine := gin.New()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(s.countRequests, s.requireKey)

	engine.GET("/goods", s.listGoods)
	engine.GET("/goods/:id", s.getGood)
	engine.GET("/autocomplete", s.autocomplete)
	engine.GET("/orders", s.listOrders)
	engine.GET("/orders/:id", s.getOrder)
	engine.POST("/orders", s.createOrder)
	engine.PUT("/orders/:id", s.updateOrder)
	engine.DELETE("/orders/:id", s.deleteOrder)

	s.Server = httptest.NewServer(engine)
	return s
}

// Close shuts the fake server down.
func (s *StoreServer) Close() {
	s.Server.Close()
}

// URL returns the base URL of the fake API.
func (s *StoreServer) URL() string {
	return s.Server.URL
}

// Requests returns how many requests reached the server.
func (s *StoreServer) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Orders returns a snapshot of the stored orders.
func (s *StoreServer) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

// SeedOrder stores an order directly, bypassing the HTTP surface.
func (s *StoreServer) SeedOrder(o model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.nextOrderID
	}
	if o.ID >= s.nextOrderID {
		s.nextOrderID = o.ID + 1
	}
	s.orders[o.ID] = o
}

func (s *StoreServer) countRequests(c *gin.Context) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()
	c.Next()
}

func (s *StoreServer) requireKey(c *gin.Context) {
	if c.Query("api_key") != s.APIKey {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid api key"})
	}
}

func (s *StoreServer) listGoods(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "8"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	query := strings.ToLower(c.Query("query"))

	s.mu.Lock()
	matched := make([]model.Good, 0, len(s.goods))
	for _, g := range s.goods {
		if query == "" || strings.Contains(strings.ToLower(g.Name), query) {
			matched = append(matched, g)
		}
	}
	s.mu.Unlock()

	start := (page - 1) * perPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}

	c.JSON(http.StatusOK, gin.H{"goods": matched[start:end]})
}

func (s *StoreServer) getGood(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad good id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goods {
		if g.ID == id {
			c.JSON(http.StatusOK, gin.H{"good": g})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "good not found"})
}

func (s *StoreServer) autocomplete(c *gin.Context) {
	query := strings.ToLower(c.Query("query"))

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, g := range s.goods {
		for _, word := range strings.Fields(strings.ToLower(g.Name)) {
			if query != "" && strings.HasPrefix(word, query) {
				out = append(out, word)
			}
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *StoreServer) listOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	c.JSON(http.StatusOK, out)
}

func (s *StoreServer) getOrder(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		c.JSON(http.StatusOK, o)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
}

func (s *StoreServer) createOrder(c *gin.Context) {
	var payload model.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad order payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	order := model.Order{
		ID:               s.nextOrderID,
		CreatedAt:        "2024-01-15T10:30:00Z",
		FullName:         payload.FullName,
		DeliveryAddress:  payload.DeliveryAddress,
		DeliveryDate:     payload.DeliveryDate,
		DeliveryInterval: payload.DeliveryInterval,
		Phone:            payload.Phone,
		Email:            payload.Email,
		Comment:          payload.Comment,
		Subscribe:        payload.Subscribe,
		GoodIDs:          payload.GoodIDs,
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	c.JSON(http.StatusOK, order)
}

func (s *StoreServer) updateOrder(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var payload model.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad order payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	order.DeliveryAddress = payload.DeliveryAddress
	order.DeliveryDate = payload.DeliveryDate
	order.DeliveryInterval = payload.DeliveryInterval
	order.Comment = payload.Comment
	s.orders[id] = order
	c.JSON(http.StatusOK, order)
}

func (s *StoreServer) deleteOrder(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	delete(s.orders, id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
