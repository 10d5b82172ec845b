package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	config "github.com/agraisu/TaxiBookSite/config/database"
	"github.com/agraisu/TaxiBookSite/internal/tripHandler/models"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

const tripColumns = `trip_id, customer_name, pickup_location, dropoff_location, trip_date, trip_time, vehicle_type, passengers, contact_number1, contact_number2, description, driver_name, confirmation_status, created_at`

// TestTrips handles GET /api/trips-test
func TestTrips(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Trip API is working"})
}

// CreateTrip handles POST /api/trips. The confirmation flag is always
// inserted as false; a trip starts unconfirmed regardless of the payload.
func CreateTrip(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	if req.PickupLocation == "" || req.DropoffLocation == "" || req.TripDate == "" ||
		req.TripTime == "" || req.VehicleType == "" || req.Passengers == 0 || req.ContactNumber1 == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "pickup_location, dropoff_location, trip_date, trip_time, vehicle_type, passengers and contact_number1 are required"})
	}
	if req.Passengers <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "passengers must be greater than 0"})
	}

	tripQuery := `INSERT INTO trip (customer_name, pickup_location, dropoff_location, trip_date, trip_time, vehicle_type, passengers, contact_number1, contact_number2, description, driver_name, confirmation_status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING trip_id`
	var tripID int
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := config.Pool.QueryRow(ctx, tripQuery,
		req.CustomerName, req.PickupLocation, req.DropoffLocation, req.TripDate, req.TripTime,
		req.VehicleType, req.Passengers, req.ContactNumber1, req.ContactNumber2,
		req.Description, req.DriverName, false,
	).Scan(&tripID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error creating trip", "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"trip_id":             tripID,
		"customer_name":       req.CustomerName,
		"pickup_location":     req.PickupLocation,
		"dropoff_location":    req.DropoffLocation,
		"trip_date":           req.TripDate,
		"trip_time":           req.TripTime,
		"vehicle_type":        req.VehicleType,
		"passengers":          req.Passengers,
		"contact_number1":     req.ContactNumber1,
		"contact_number2":     req.ContactNumber2,
		"description":         req.Description,
		"driver_name":         req.DriverName,
		"confirmation_status": false,
		"created_at":          time.Now().Format(time.RFC3339),
	})
}

// GetTrips handles GET /api/trips
func GetTrips(c echo.Context) error {
	rows, err := config.Pool.Query(c.Request().Context(), `SELECT `+tripColumns+` FROM trip`)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching trips", "error": err.Error()})
	}
	defer rows.Close()

	trips, err := scanTrips(rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching trips", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, trips)
}

// GetTripsByDriverName handles GET /api/trips/driver/:name. Registered ahead
// of the :id route so the literal driver segment wins.
func GetTripsByDriverName(c echo.Context) error {
	rows, err := config.Pool.Query(c.Request().Context(), `SELECT `+tripColumns+` FROM trip WHERE driver_name = $1`, c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching trips", "error": err.Error()})
	}
	defer rows.Close()

	trips, err := scanTrips(rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching trips", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, trips)
}

// GetTripByID handles GET /api/trips/:id
func GetTripByID(c echo.Context) error {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}

	var trip models.Trip
	err = config.Pool.QueryRow(c.Request().Context(), `SELECT `+tripColumns+` FROM trip WHERE trip_id = $1`, tripID).Scan(
		&trip.TripID, &trip.CustomerName, &trip.PickupLocation, &trip.DropoffLocation,
		&trip.TripDate, &trip.TripTime, &trip.VehicleType, &trip.Passengers,
		&trip.ContactNumber1, &trip.ContactNumber2, &trip.Description, &trip.DriverName,
		&trip.ConfirmationStatus, &trip.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error fetching trip", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, trip)
}

// UpdateTrip handles PUT /api/trips/:id. Full replace: an omitted
// confirmation_status falls back to false, not to the stored value.
func UpdateTrip(c echo.Context) error {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	confirmationStatus := false
	if req.ConfirmationStatus != nil {
		confirmationStatus = *req.ConfirmationStatus
	}

	var existingID int
	err = config.Pool.QueryRow(c.Request().Context(), `SELECT trip_id FROM trip WHERE trip_id = $1`, tripID).Scan(&existingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error updating trip", "error": err.Error()})
	}

	updateQuery := `UPDATE trip SET customer_name = $1, pickup_location = $2, dropoff_location = $3, trip_date = $4, trip_time = $5, vehicle_type = $6, passengers = $7, contact_number1 = $8, contact_number2 = $9, description = $10, driver_name = $11, confirmation_status = $12 WHERE trip_id = $13`
	_, err = config.Pool.Exec(c.Request().Context(), updateQuery,
		req.CustomerName, req.PickupLocation, req.DropoffLocation, req.TripDate, req.TripTime,
		req.VehicleType, req.Passengers, req.ContactNumber1, req.ContactNumber2,
		req.Description, req.DriverName, confirmationStatus, tripID,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error updating trip", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"trip_id":             tripID,
		"customer_name":       req.CustomerName,
		"pickup_location":     req.PickupLocation,
		"dropoff_location":    req.DropoffLocation,
		"trip_date":           req.TripDate,
		"trip_time":           req.TripTime,
		"vehicle_type":        req.VehicleType,
		"passengers":          req.Passengers,
		"contact_number1":     req.ContactNumber1,
		"contact_number2":     req.ContactNumber2,
		"description":         req.Description,
		"driver_name":         req.DriverName,
		"confirmation_status": confirmationStatus,
	})
}

// DeleteTrip handles DELETE /api/trips/:id
func DeleteTrip(c echo.Context) error {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}

	tag, err := config.Pool.Exec(c.Request().Context(), `DELETE FROM trip WHERE trip_id = $1`, tripID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error deleting trip", "error": err.Error()})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmTrip handles PATCH /api/trips/:id/confirm. Partial update limited
// to the confirmation flag; either value is settable from any state.
func ConfirmTrip(c echo.Context) error {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}

	var req models.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}
	if req.ConfirmationStatus == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "confirmation_status is required"})
	}

	tag, err := config.Pool.Exec(c.Request().Context(), `UPDATE trip SET confirmation_status = $1 WHERE trip_id = $2`, *req.ConfirmationStatus, tripID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Error confirming trip", "error": err.Error()})
	}
	if tag.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Trip not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"trip_id":             tripID,
		"confirmation_status": *req.ConfirmationStatus,
	})
}

func scanTrips(rows pgx.Rows) ([]models.Trip, error) {
	trips := []models.Trip{}
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(
			&trip.TripID, &trip.CustomerName, &trip.PickupLocation, &trip.DropoffLocation,
			&trip.TripDate, &trip.TripTime, &trip.VehicleType, &trip.Passengers,
			&trip.ContactNumber1, &trip.ContactNumber2, &trip.Description, &trip.DriverName,
			&trip.ConfirmationStatus, &trip.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}
