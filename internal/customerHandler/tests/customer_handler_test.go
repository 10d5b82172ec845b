package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	config "github.com/agraisu/TaxiBookSite/config/database"
	customer_handler "github.com/agraisu/TaxiBookSite/internal/customerHandler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Cleanup database after tests
func teardownCustomerByPhone(phone string) {
	_, err := config.Pool.Exec(context.Background(), `DELETE FROM "Customer" WHERE phone = $1`, phone)
	if err != nil {
		panic(err)
	}
}

func insertTestCustomer(t *testing.T, phone, password string) int {
	t.Helper()

	var customerID int
	query := `INSERT INTO "Customer" (customer_type, username, phone, password, email, account_status) VALUES ($1, $2, $3, $4, $5, $6) RETURNING customer_id`
	err := config.Pool.QueryRow(context.Background(), query,
		"normal_customer", "Jane Doe", phone, password, "jane.doe@example.com", "active",
	).Scan(&customerID)
	if err != nil {
		t.Fatalf("Failed to insert mock customer: %v", err)
	}
	return customerID
}

// Test for CreateCustomer: an invalid customer_type is coerced, never
// rejected, and a missing account_status defaults to active.
func TestCreateCustomerCoercesTypeAndDefaultsStatus(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	defer teardownCustomerByPhone(phone)

	requestPayload := map[string]interface{}{
		"customer_type": "vip_customer",
		"username":      "John Doe",
		"phone":         phone,
		"password":      "Password123",
		"email":         "john.doe@example.com",
	}
	requestBody, _ := json.Marshal(requestPayload)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := customer_handler.CreateCustomer(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		response := map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "normal_customer", response["customer_type"])
		assert.Equal(t, "active", response["account_status"])
		assert.NotContains(t, response, "password")
		assert.Greater(t, response["customer_id"], float64(0))
	}

	// the persisted row carries the coerced type, not the submitted one
	var storedType, storedStatus string
	err = config.Pool.QueryRow(context.Background(),
		`SELECT customer_type, account_status FROM "Customer" WHERE phone = $1`, phone,
	).Scan(&storedType, &storedStatus)
	if assert.NoError(t, err) {
		assert.Equal(t, "normal_customer", storedType)
		assert.Equal(t, "active", storedStatus)
	}
}

// Test for CreateCustomer with no password: there is nothing to hash, so the
// request fails as a create error and no row is inserted.
func TestCreateCustomerMissingPassword(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	defer teardownCustomerByPhone(phone)

	requestPayload := map[string]interface{}{
		"username": "John Doe",
		"phone":    phone,
		"email":    "john.doe@example.com",
	}
	requestBody, _ := json.Marshal(requestPayload)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := customer_handler.CreateCustomer(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		response := map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "Error creating customer", response["message"])
		assert.NotEmpty(t, response["error"])
	}

	var count int
	err = config.Pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM "Customer" WHERE phone = $1`, phone).Scan(&count)
	if assert.NoError(t, err) {
		assert.Equal(t, 0, count)
	}
}

// Test for GetCustomers
func TestGetCustomers(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	defer teardownCustomerByPhone(phone)
	insertTestCustomer(t, phone, "Password123")

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := customer_handler.GetCustomers(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		response := []map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.NotEmpty(t, response)
	}
}

// Test for GetCustomerByID
func TestGetCustomerByID(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	defer teardownCustomerByPhone(phone)
	customerID := insertTestCustomer(t, phone, "Password123")

	req := httptest.NewRequest(http.MethodGet, "/api/customers/:id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(customerID))

	err := customer_handler.GetCustomerByID(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		response := map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, float64(customerID), response["customer_id"])
		assert.Equal(t, phone, response["phone"])
	}
}

func TestGetCustomerByIDNotFound(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/customers/:id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999999999")

	err := customer_handler.GetCustomerByID(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		response := map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "Customer not found", response["message"])
	}
}

// Test for UpdateCustomer: the submitted password is stored raw, and the
// path id wins over anything in the body.
func TestUpdateCustomerStoresRawPassword(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	defer teardownCustomerByPhone(phone)
	customerID := insertTestCustomer(t, phone, "hashed-at-create")

	requestPayload := map[string]interface{}{
		"customer_type":  "cab_service_customer",
		"username":       "Jane Updated",
		"phone":          phone,
		"password":       "PlainNewPassword",
		"email":          "jane.updated@example.com",
		"account_status": "suspended",
	}
	requestBody, _ := json.Marshal(requestPayload)

	req := httptest.NewRequest(http.MethodPut, "/api/customers/:id", bytes.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(customerID))

	err := customer_handler.UpdateCustomer(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		response := map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, float64(customerID), response["customer_id"])
		assert.Equal(t, "cab_service_customer", response["customer_type"])
		assert.Equal(t, "suspended", response["account_status"])
		assert.NotContains(t, response, "password")
	}

	var storedPassword string
	err = config.Pool.QueryRow(context.Background(),
		`SELECT password FROM "Customer" WHERE customer_id = $1`, customerID,
	).Scan(&storedPassword)
	if assert.NoError(t, err) {
		assert.Equal(t, "PlainNewPassword", storedPassword)
	}
}

// Test for UpdateCustomer without account_status: update carries no default
// for it, so the store rejects the NULL and the row keeps its old state.
func TestUpdateCustomerMissingAccountStatus(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	defer teardownCustomerByPhone(phone)
	customerID := insertTestCustomer(t, phone, "Secret123")

	requestPayload := map[string]interface{}{
		"customer_type": "normal_customer",
		"username":      "Jane Updated",
		"phone":         phone,
		"password":      "NewPassword",
		"email":         "jane.updated@example.com",
	}
	requestBody, _ := json.Marshal(requestPayload)

	req := httptest.NewRequest(http.MethodPut, "/api/customers/:id", bytes.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(customerID))

	err := customer_handler.UpdateCustomer(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		response := map[string]interface{}{}
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "Error updating customer", response["message"])
		assert.NotEmpty(t, response["error"])
	}

	var storedUsername, storedPassword string
	err = config.Pool.QueryRow(context.Background(),
		`SELECT username, password FROM "Customer" WHERE customer_id = $1`, customerID,
	).Scan(&storedUsername, &storedPassword)
	if assert.NoError(t, err) {
		assert.Equal(t, "Jane Doe", storedUsername)
		assert.Equal(t, "Secret123", storedPassword)
	}
}

func TestUpdateCustomerNotFound(t *testing.T) {
	e := echo.New()

	requestBody, _ := json.Marshal(map[string]interface{}{
		"username": "Nobody",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/customers/:id", bytes.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999999999")

	err := customer_handler.UpdateCustomer(c)

	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

// Test for DeleteCustomer: 204 on the first delete, 404 on a repeat, and a
// fetch of the deleted id comes back 404.
func TestDeleteCustomer(t *testing.T) {
	e := echo.New()
	phone := uuid.New().String()
	customerID := insertTestCustomer(t, phone, "Password123")

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/:id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(customerID))

	err := customer_handler.DeleteCustomer(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/customers/:id", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(customerID))
	err = customer_handler.GetCustomerByID(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/customers/:id", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(customerID))
	err = customer_handler.DeleteCustomer(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}
