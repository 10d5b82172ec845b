package models

import "time"

// Trip mirrors one row of the trip table.
type Trip struct {
	TripID             int       `json:"trip_id"`
	CustomerName       string    `json:"customer_name"`
	PickupLocation     string    `json:"pickup_location"`
	DropoffLocation    string    `json:"dropoff_location"`
	TripDate           string    `json:"trip_date"`
	TripTime           string    `json:"trip_time"`
	VehicleType        string    `json:"vehicle_type"`
	Passengers         int       `json:"passengers"`
	ContactNumber1     string    `json:"contact_number1"`
	ContactNumber2     string    `json:"contact_number2"`
	Description        string    `json:"description"`
	DriverName         string    `json:"driver_name"`
	ConfirmationStatus bool      `json:"confirmation_status"`
	CreatedAt          time.Time `json:"created_at"`
}

// TripRequest is the create/update payload. ConfirmationStatus is a pointer
// so an omitted flag can fall back to false under full-replace semantics.
type TripRequest struct {
	CustomerName       string `json:"customer_name"`
	PickupLocation     string `json:"pickup_location"`
	DropoffLocation    string `json:"dropoff_location"`
	TripDate           string `json:"trip_date"`
	TripTime           string `json:"trip_time"`
	VehicleType        string `json:"vehicle_type"`
	Passengers         int    `json:"passengers"`
	ContactNumber1     string `json:"contact_number1"`
	ContactNumber2     string `json:"contact_number2"`
	Description        string `json:"description"`
	DriverName         string `json:"driver_name"`
	ConfirmationStatus *bool  `json:"confirmation_status"`
}

// ConfirmRequest is the PATCH confirm payload; the flag must be present.
type ConfirmRequest struct {
	ConfirmationStatus *bool `json:"confirmation_status"`
}
