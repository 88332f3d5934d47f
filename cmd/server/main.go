package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "khata-backend/internal/adapters/web"
	"khata-backend/internal/app"
	"khata-backend/internal/core"
	"khata-backend/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	cylinderService := core.NewCylinderService(pool)
	clientService := core.NewClientService(pool)
	salesService := core.NewSalesService(pool)
	salaryService := core.NewSalaryService(pool)
	supplierService := core.NewSupplierService(pool)
	vegetableService := core.NewVegetableService(pool)
	chickenService := core.NewChickenService(pool)
	reportingService := core.NewReportingService(pool, cylinderService, clientService, vegetableService, chickenService)

	svc := app.NewApplicationService(app.Services{
		Users:     core.NewUserService(pool),
		Cylinders: cylinderService,
		Sales:     salesService,
		Salaries:  salaryService,
		Suppliers: supplierService,
		Clients:   clientService,
		Veg:       vegetableService,
		Chicken:   chickenService,
		Reports:   reportingService,
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
