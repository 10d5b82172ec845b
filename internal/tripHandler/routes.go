package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the trip endpoints onto e. The driver lookup is
// listed ahead of the generic id route; its literal segment must win.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/trips-test", TestTrips)
	e.POST("/api/trips", CreateTrip)
	e.GET("/api/trips/driver/:name", GetTripsByDriverName)
	e.GET("/api/trips", GetTrips)
	e.GET("/api/trips/:id", GetTripByID)
	e.PUT("/api/trips/:id", UpdateTrip)
	e.DELETE("/api/trips/:id", DeleteTrip)
	e.PATCH("/api/trips/:id/confirm", ConfirmTrip)
}
