package model

// User is the client-held profile snapshot of the signed-in user.
// Name carries the joined display name composed at login time.
type User struct {
	ID                int64         `json:"id"`
	Email             string        `json:"email"`
	Name              string        `json:"name"`
	ProfilePictureURL string        `json:"profilePictureUrl"`
	IsAdmin           bool          `json:"isAdmin"`
	IsTechnician      bool          `json:"isTechnician"`
	CartProducts      []CartProduct `json:"cartProducts"`
}

// CartProduct is a single cart line; ProductID is unique within a cart
// and Quantity is always >= 1.
type CartProduct struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Account is the server-side view of a user as returned by the auth
// endpoints, before it is composed into a User snapshot.
type Account struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	IsAdmin           bool   `json:"isAdmin"`
	IsTechnician      bool   `json:"isTechnician"`
}

// Credentials are the login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration contains the fields required to create an account.
// Registration does not imply login.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginResult is the payload of a successful login call.
type LoginResult struct {
	User         Account
	Token        string
	IsAdmin      bool
	IsTechnician bool
}
