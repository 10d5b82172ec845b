package handler

import (
	"errors"
	"net/http"

	config "github.com/agraisu/TaxiBookSite/config/database"
	"github.com/agraisu/TaxiBookSite/internal/customerHandler/models"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// LoginCustomer handles POST /api/customers/login. The submitted password is
// compared with direct equality against the stored column value, whatever it
// currently holds.
func LoginCustomer(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	if req.Phone == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Phone number and password are required"})
	}

	var customer models.Customer
	query := `SELECT customer_id, customer_type, username, phone, password, email, account_status FROM "Customer" WHERE phone = $1`
	err := config.Pool.QueryRow(c.Request().Context(), query, req.Phone).Scan(
		&customer.CustomerID, &customer.CustomerType, &customer.Username,
		&customer.Phone, &customer.Password, &customer.Email, &customer.AccountStatus,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error during login", "error": err.Error()})
	}

	if customer.Password != req.Password {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Incorrect password"})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Message:       "Login successful",
		CustomerID:    customer.CustomerID,
		Username:      customer.Username,
		Phone:         customer.Phone,
		Email:         customer.Email,
		CustomerType:  customer.CustomerType,
		AccountStatus: customer.AccountStatus,
	})
}
