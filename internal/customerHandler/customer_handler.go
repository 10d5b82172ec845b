package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	config "github.com/agraisu/TaxiBookSite/config/database"
	"github.com/agraisu/TaxiBookSite/internal/customerHandler/models"
	"github.com/agraisu/TaxiBookSite/pkg/logger"
	"github.com/agraisu/TaxiBookSite/utils"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

var log = logger.New("customerHandler")

var validCustomerTypes = map[string]bool{
	"normal_customer":      true,
	"cab_service_customer": true,
}

// normalizeCustomerType coerces any value outside the allowed set to
// normal_customer. Invalid input is never rejected.
func normalizeCustomerType(customerType string) string {
	if !validCustomerTypes[customerType] {
		return "normal_customer"
	}
	return customerType
}

// CreateCustomer handles POST /api/customers
func CreateCustomer(c echo.Context) error {
	var req models.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	customerType := normalizeCustomerType(req.CustomerType)

	accountStatus := "active"
	if req.AccountStatus != nil {
		accountStatus = *req.AccountStatus
	}

	// Hash the password before storing it. There is nothing to hash when the
	// field is absent or null, so that surfaces as the create error.
	if req.Password == nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error creating customer", "error": "password is required"})
	}
	hashPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error creating customer", "error": err.Error()})
	}

	customerQuery := `INSERT INTO "Customer" (customer_type, username, phone, password, email, account_status) VALUES ($1, $2, $3, $4, $5, $6) RETURNING customer_id`
	var customerID int
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = config.Pool.QueryRow(ctx, customerQuery, customerType, req.Username, req.Phone, string(hashPassword), req.Email, accountStatus).Scan(&customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error creating customer", "error": err.Error()})
	}

	// Welcome email is best-effort; a mail failure never fails the request.
	go func(email, username string) {
		if err := utils.SendRegisterNotification(email, username); err != nil {
			log.Warning("failed to send welcome email", logger.Error(err))
		}
	}(req.Email, req.Username)

	return c.JSON(http.StatusCreated, models.CustomerResponse{
		CustomerID:    customerID,
		CustomerType:  customerType,
		Username:      req.Username,
		Phone:         req.Phone,
		Email:         req.Email,
		AccountStatus: accountStatus,
	})
}

// GetCustomers handles GET /api/customers
func GetCustomers(c echo.Context) error {
	query := `SELECT customer_id, customer_type, username, phone, password, email, account_status FROM "Customer"`
	rows, err := config.Pool.Query(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching customers", "error": err.Error()})
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.CustomerID, &customer.CustomerType, &customer.Username,
			&customer.Phone, &customer.Password, &customer.Email, &customer.AccountStatus,
		); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching customers", "error": err.Error()})
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching customers", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, customers)
}

// GetCustomerByID handles GET /api/customers/:id
func GetCustomerByID(c echo.Context) error {
	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// junk ids behave like unknown ids
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}

	var customer models.Customer
	query := `SELECT customer_id, customer_type, username, phone, password, email, account_status FROM "Customer" WHERE customer_id = $1`
	err = config.Pool.QueryRow(c.Request().Context(), query, customerID).Scan(
		&customer.CustomerID, &customer.CustomerType, &customer.Username,
		&customer.Phone, &customer.Password, &customer.Email, &customer.AccountStatus,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching customer", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /api/customers/:id. Full replace: every field
// is overwritten, and the password is stored exactly as submitted.
func UpdateCustomer(c echo.Context) error {
	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}

	var req models.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	customerType := normalizeCustomerType(req.CustomerType)

	var existingID int
	checkQuery := `SELECT customer_id FROM "Customer" WHERE customer_id = $1`
	err = config.Pool.QueryRow(c.Request().Context(), checkQuery, customerID).Scan(&existingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error updating customer", "error": err.Error()})
	}

	// password and account_status carry no update defaults: a nil pointer
	// reaches the store as NULL and the columns reject it.
	updateQuery := `UPDATE "Customer" SET customer_type = $1, username = $2, phone = $3, password = $4, email = $5, account_status = $6 WHERE customer_id = $7`
	_, err = config.Pool.Exec(c.Request().Context(), updateQuery,
		customerType, req.Username, req.Phone, req.Password, req.Email, req.AccountStatus, customerID,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error updating customer", "error": err.Error()})
	}

	response := models.CustomerResponse{
		CustomerID:   customerID,
		CustomerType: customerType,
		Username:     req.Username,
		Phone:        req.Phone,
		Email:        req.Email,
	}
	if req.AccountStatus != nil {
		response.AccountStatus = *req.AccountStatus
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteCustomer handles DELETE /api/customers/:id
func DeleteCustomer(c echo.Context) error {
	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}

	tag, err := config.Pool.Exec(c.Request().Context(), `DELETE FROM "Customer" WHERE customer_id = $1`, customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error deleting customer", "error": err.Error()})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Customer not found"})
	}

	return c.NoContent(http.StatusNoContent)
}
