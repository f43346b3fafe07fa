package model

import "time"

// Order is a completed purchase as listed in the order history.
type Order struct {
	OrderID        int64          `json:"orderId"`
	OrderDate      time.Time      `json:"orderDate"`
	TotalPrice     float64        `json:"totalPrice"`
	PaymentStatus  string         `json:"paymentStatus"`
	OrderStatus    string         `json:"orderStatus"`
	ShippingMethod string         `json:"shippingMethod"`
	Products       []OrderProduct `json:"products"`
}

// OrderProduct is a purchased line within an order.
type OrderProduct struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Profile is the account page payload: editable fields plus order history.
type Profile struct {
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	ProfilePictureURL string  `json:"profilePictureUrl"`
	Orders            []Order `json:"orders"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}
