// seed-demo is a one-shot tool that resets the database to a small demo
// dataset for local development. It wipes every khata table first.
//
// Usage: go run ./cmd/seed-demo
package main

import (
	"context"
	"log"
	"os"
	"time"

	"khata-backend/internal/core"
	"khata-backend/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing existing data...")
	_, err = tx.Exec(ctx, `
		TRUNCATE cylinder_assignments, client_items, clients, cylinder_types,
			daily_sales, daily_sale_sheets, customers,
			salary_records, employees, suppliers,
			vegetables, vegetable_names, chicken_records, users
		RESTART IDENTITY CASCADE;
	`)
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("Warning: SEED_ADMIN_PASSWORD not set, using default")
	}

	log.Println("Creating admin user...")
	_, err = tx.Exec(ctx, `
		INSERT INTO users (username, password_hash, display_name, is_active)
		VALUES ('admin', $1, 'مالک', true);
	`, core.HashPassword(password))
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("Seeding cylinder types and clients...")
	_, err = tx.Exec(ctx, `
		INSERT INTO cylinder_types (name, weight_kg, cylinder_price, gas_price, no_of_cylinders) VALUES
			('چھوٹا سلنڈر', 11.8, 3500, 2950, 40),
			('بڑا سلنڈر', 45.4, 12000, 11350, 15);

		INSERT INTO clients (name, phone) VALUES
			('علی ٹریڈرز', '0333-4567890'),
			('بلال اینڈ سنز', '0345-1112233'),
			('فاروق جنرل سٹور', '0312-7778899');
	`)
	if err != nil {
		log.Fatalf("Failed to seed cylinder data: %v", err)
	}

	log.Println("Seeding customers and suppliers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO customers (name, phone, balance) VALUES
			('محمد عمر', '0321-9876543', 5000),
			('حاجی رشید', NULL, 0);

		INSERT INTO suppliers (name, phone, total_bill, paid, remaining) VALUES
			('احمد سپلائرز', '0300-1234567', 50000, 30000, 20000);
	`)
	if err != nil {
		log.Fatalf("Failed to seed customer data: %v", err)
	}

	log.Println("Seeding vegetable catalog...")
	_, err = tx.Exec(ctx, `
		INSERT INTO vegetable_names (name, unit) VALUES
			('آلو', 'kg'),
			('پیاز', 'kg'),
			('ٹماٹر', 'kg');
	`)
	if err != nil {
		log.Fatalf("Failed to seed vegetable names: %v", err)
	}

	today := time.Now().Format("2006-01-02")

	log.Println("Seeding a sample day...")
	_, err = tx.Exec(ctx, `
		INSERT INTO daily_sale_sheets (date, total_cylinders, total_gas_kg)
		VALUES ($1, 55, 1200);
	`, today)
	if err != nil {
		log.Fatalf("Failed to seed day opening: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO chicken_records (type, quantity, weight_kg, price, date) VALUES
			('bought', 120, 210.5, 96000, $1),
			('sold', 35, 60.2, 31000, $1);
	`, today)
	if err != nil {
		log.Fatalf("Failed to seed chicken records: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Demo data restored.")
}
