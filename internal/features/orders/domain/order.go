package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been placed but not yet processed.
	// Transitions past pending happen in the fulfillment system, not here.
	OrderStatusPending OrderStatus = "pending"
)

// ErrCartEmpty is returned when checkout is attempted with no cart items.
var ErrCartEmpty = errors.New("cart is empty")

// MissingFieldError reports a required checkout form field that was left blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Address is a billing or shipping address snapshot taken at checkout time.
type Address struct {
	// FirstName is the recipient's first name.
	FirstName string `json:"first_name"`
	// LastName is the recipient's last name.
	LastName string `json:"last_name"`
	// Street is the street address line.
	Street string `json:"street"`
	// City is the city of the address.
	City string `json:"city"`
	// State is the state or province of the address.
	State string `json:"state"`
	// PostalCode is the postal or ZIP code.
	PostalCode string `json:"postal_code"`
	// Country is the country of the address.
	Country string `json:"country"`
	// Phone is the contact phone number.
	Phone string `json:"phone"`
	// Email is the contact email.
	Email string `json:"email"`
}

// CheckoutForm is the data submitted by the checkout UI.
type CheckoutForm struct {
	// Billing is the required billing address.
	Billing Address `json:"billing"`
	// Shipping is an optional separate delivery address.
	Shipping *Address `json:"shipping,omitempty"`
	// PaymentMethod tags how the customer intends to pay.
	PaymentMethod string `json:"payment_method"`
	// Note is an optional free-text message from the customer.
	Note string `json:"note,omitempty"`
}

// Validate checks the required billing fields. The first missing field is
// reported and no partial order is ever built from an invalid form.
func (f CheckoutForm) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"billing.first_name", f.Billing.FirstName},
		{"billing.last_name", f.Billing.LastName},
		{"billing.street", f.Billing.Street},
		{"billing.city", f.Billing.City},
		{"billing.email", f.Billing.Email},
		{"payment_method", f.PaymentMethod},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return &MissingFieldError{Field: field.name}
		}
	}
	return nil
}

// CustomerName derives the display name from the billing address, falling
// back to the literal "Customer" when no name was supplied.
func (f CheckoutForm) CustomerName() string {
	name := strings.TrimSpace(f.Billing.FirstName + " " + f.Billing.LastName)
	if name == "" {
		return "Customer"
	}
	return name
}

// CartItem is one line of the customer's cart at checkout.
type CartItem struct {
	// ProductID identifies the product being bought.
	ProductID string `json:"product_id"`
	// Name is the product display name.
	Name string `json:"name"`
	// Image is the product image reference.
	Image string `json:"image"`
	// Price is the retail unit price.
	Price float64 `json:"price"`
	// Quantity is the number of units, defaulting to 1 when unset.
	Quantity int `json:"quantity"`
}

// OrderItem is one purchased line copied into the order.
type OrderItem struct {
	// ProductID identifies the purchased product.
	ProductID string `json:"product_id"`
	// Name is the product display name at purchase time.
	Name string `json:"name"`
	// Image is the product image reference.
	Image string `json:"image"`
	// Price is the retail unit price paid.
	Price float64 `json:"price"`
	// Quantity is the number of units bought.
	Quantity int `json:"quantity"`
}

// Order represents a completed checkout.
type Order struct {
	// ID is the generated order identifier.
	ID string `json:"id"`
	// Customer is the display name taken from the billing address.
	Customer string `json:"customer"`
	// Status is the order state, always pending at creation.
	Status OrderStatus `json:"status"`
	// Items are the purchased lines.
	Items []OrderItem `json:"items"`
	// Total is the sum of price times quantity over the items.
	Total float64 `json:"total"`
	// Billing is the billing address snapshot.
	Billing Address `json:"billing"`
	// Shipping is the optional delivery address snapshot.
	Shipping *Address `json:"shipping,omitempty"`
	// PaymentMethod tags how the customer pays.
	PaymentMethod string `json:"payment_method"`
	// Note is the optional customer message.
	Note string `json:"note,omitempty"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
	// OrderDate is the human-formatted creation date.
	OrderDate string `json:"order_date"`
	// EstimatedDelivery is the human-formatted expected delivery date.
	EstimatedDelivery string `json:"estimated_delivery"`
}

// orderDateLayout formats order and delivery dates for display.
const orderDateLayout = "January 2, 2006"

// estimatedDeliveryDays is how far out the delivery estimate is set.
const estimatedDeliveryDays = 10

// NewOrderID generates a collision-resistant order identifier from the
// current timestamp and a random suffix.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// NewOrder constructs a pending order from a validated checkout form and a
// non-empty cart. Construction is pure: persistence is the caller's job.
func NewOrder(form CheckoutForm, cart []CartItem, now time.Time) (*Order, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]OrderItem, 0, len(cart))
	var total float64
	for _, line := range cart {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Quantity:  quantity,
		})
		total += line.Price * float64(quantity)
	}

	return &Order{
		ID:                NewOrderID(now),
		Customer:          form.CustomerName(),
		Status:            OrderStatusPending,
		Items:             items,
		Total:             total,
		Billing:           form.Billing,
		Shipping:          form.Shipping,
		PaymentMethod:     form.PaymentMethod,
		Note:              form.Note,
		CreatedAt:         now,
		OrderDate:         now.Format(orderDateLayout),
		EstimatedDelivery: now.AddDate(0, 0, estimatedDeliveryDays).Format(orderDateLayout),
	}, nil
}
