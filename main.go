package main

import (
	"fmt"

	appconfig "github.com/agraisu/TaxiBookSite/config"
	config "github.com/agraisu/TaxiBookSite/config/database"
	customer_handler "github.com/agraisu/TaxiBookSite/internal/customerHandler"
	trip_handler "github.com/agraisu/TaxiBookSite/internal/tripHandler"
	"github.com/agraisu/TaxiBookSite/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := appconfig.Load()
	log := logger.New(cfg.ServiceName)

	// connect to db
	if err := config.InitDB(cfg); err != nil {
		log.Error("failed to initialize database", logger.Error(err))
		panic(err)
	}
	defer config.CloseDB()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error("panic recovered", logger.Error(err), logger.String("stack", string(stack)))
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	customer_handler.RegisterRoutes(e)
	trip_handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.AppPort)))
}
