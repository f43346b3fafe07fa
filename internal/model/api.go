package model

import "context"

// AuthAPI is the authentication surface of the backend.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, reg Registration) error
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*Account, error)
}

// CartAPI is the server-side cart surface of the backend.
type CartAPI interface {
	GetCart(ctx context.Context) ([]CartProduct, error)
	AddToCart(ctx context.Context, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, productID int64) error
	UpdateCart(ctx context.Context, productID int64, quantity int) error
}

// ChatAPI is the chat assistant surface of the backend.
type ChatAPI interface {
	SendMessage(ctx context.Context, prompt string) (string, error)
}
