package model

// DashboardData is the admin overview block.
type DashboardData struct {
	TotalUsersCount    int     `json:"totalUsersCount"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalOrdersCount   int     `json:"totalOrdersCount"`
	TotalProductsCount int     `json:"totalProductsCount"`
}

// Activity is a recent store event shown on the dashboard.
type Activity struct {
	ActivityDescription string `json:"activityDescription"`
	ActivityCreatedAt   string `json:"activityCreatedAt"`
}

// TopProduct is a best-seller row.
type TopProduct struct {
	ProductName  string  `json:"productName"`
	SalesCount   int     `json:"salesCount"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// InventoryStatus summarises stock health.
type InventoryStatus struct {
	LowStockItems   int `json:"lowStockItems"`
	OutOfStockItems int `json:"outOfStockItems"`
}

// ManagedUser is a row in the admin user list.
type ManagedUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
