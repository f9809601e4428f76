package model

// DeliveryIntervals lists the delivery windows the store accepts.
var DeliveryIntervals = []string{
	"08:00-12:00",
	"12:00-14:00",
	"14:00-18:00",
	"18:00-22:00",
}

// ValidDeliveryInterval reports whether the interval is one of the fixed
// allowed ranges.
func ValidDeliveryInterval(interval string) bool {
	for _, v := range DeliveryIntervals {
		if v == interval {
			return true
		}
	}
	return false
}

// Order describes a purchase order as returned by the store API. The
// identifier and creation timestamp are always server-assigned.
type Order struct {
	ID               int64   `json:"id"`
	CreatedAt        string  `json:"created_at"`
	FullName         string  `json:"full_name"`
	DeliveryAddress  string  `json:"delivery_address"`
	DeliveryDate     string  `json:"delivery_date"`
	DeliveryInterval string  `json:"delivery_interval"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Comment          string  `json:"comment"`
	Subscribe        int     `json:"subscribe"`
	GoodIDs          []int64 `json:"good_ids"`
}

// CreateOrderRequest is the payload for registering a new order.
// Delivery date is sent in dd.mm.yyyy form.
type CreateOrderRequest struct {
	FullName         string  `json:"full_name"`
	DeliveryAddress  string  `json:"delivery_address"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	DeliveryDate     string  `json:"delivery_date"`
	DeliveryInterval string  `json:"delivery_interval"`
	Comment          string  `json:"comment"`
	Subscribe        int     `json:"subscribe"`
	GoodIDs          []int64 `json:"good_ids"`
}

// UpdateOrderRequest is the partial payload accepted by order updates.
type UpdateOrderRequest struct {
	DeliveryAddress  string `json:"delivery_address"`
	DeliveryDate     string `json:"delivery_date"`
	DeliveryInterval string `json:"delivery_interval"`
	Comment          string `json:"comment"`
}
