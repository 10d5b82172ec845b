package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the customer endpoints onto e.
func RegisterRoutes(e *echo.Echo) {
	e.POST("/api/customers", CreateCustomer)
	e.GET("/api/customers", GetCustomers)
	e.GET("/api/customers/:id", GetCustomerByID)
	e.PUT("/api/customers/:id", UpdateCustomer)
	e.DELETE("/api/customers/:id", DeleteCustomer)
	e.POST("/api/customers/login", LoginCustomer)
}
