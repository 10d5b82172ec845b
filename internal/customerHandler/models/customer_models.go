package models

// Customer mirrors one row of the Customer table. List and fetch echo the
// row as stored, password column included.
type Customer struct {
	CustomerID    int    `json:"customer_id"`
	CustomerType  string `json:"customer_type"`
	Username      string `json:"username"`
	Phone         string `json:"phone"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	AccountStatus string `json:"account_status"`
}

// CustomerRequest is the create/update payload. Password and AccountStatus
// are pointers so an absent or null field can be told apart from an empty
// string: an absent password cannot be hashed, and an absent account_status
// on update reaches the store as NULL and is rejected there.
type CustomerRequest struct {
	CustomerType  string  `json:"customer_type"`
	Username      string  `json:"username"`
	Phone         string  `json:"phone"`
	Password      *string `json:"password"`
	Email         string  `json:"email"`
	AccountStatus *string `json:"account_status"`
}

// CustomerResponse is the create/update echo. Password is never included.
type CustomerResponse struct {
	CustomerID    int    `json:"customer_id"`
	CustomerType  string `json:"customer_type"`
	Username      string `json:"username"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	AccountStatus string `json:"account_status"`
}

// LoginRequest struct
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResponse struct
type LoginResponse struct {
	Message       string `json:"message"`
	CustomerID    int    `json:"customer_id"`
	Username      string `json:"username"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CustomerType  string `json:"customer_type"`
	AccountStatus string `json:"account_status"`
}
