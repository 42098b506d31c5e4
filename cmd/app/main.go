package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/greenbasket/grocery-backend/internal/admin"
	"github.com/greenbasket/grocery-backend/internal/cart"
	"github.com/greenbasket/grocery-backend/internal/config"
	"github.com/greenbasket/grocery-backend/internal/customer"
	"github.com/greenbasket/grocery-backend/internal/order"
	"github.com/greenbasket/grocery-backend/internal/product"
	"github.com/greenbasket/grocery-backend/internal/settings"
	"github.com/greenbasket/grocery-backend/internal/storefront"
	"github.com/greenbasket/grocery-backend/internal/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB()
	defer db.Close()
	ensureSchema(db)

	uploads := upload.NewDiskStore(cfg.UploadDir, "/uploads")

	productService := product.NewService(product.NewPostgresRepository(db), uploads)
	productHandler := product.NewHandler(productService)

	customerService := customer.NewService(customer.NewPostgresRepository(db))
	customerHandler := customer.NewHandler(customerService)

	settingsService := settings.NewService(settings.NewPostgresRepository(db))
	settingsHandler := settings.NewHandler(settingsService)

	cartService := cart.NewService(cart.NewStore(), productService)
	cartHandler := cart.NewHandler(cartService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, cartService, customerService, settingsService)
	orderHandler := order.NewHandler(orderService)

	adminService := admin.NewService(admin.NewPostgresRepository(db))
	if err := adminService.EnsureAccount(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Printf("warning: could not provision admin account: %v", err)
	}
	adminHandler := admin.NewHandler(adminService, productService, customerService, orderRepo)

	// storefront surface, no authentication
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	customerHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	storefront.NewHandler().RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	app.Static("/uploads", cfg.UploadDir)

	// everything below /api/v1/admin/ except sign-in needs a session
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
		Filter: func(c *fiber.Ctx) bool {
			p := c.Path()
			if !strings.HasPrefix(p, "/api/v1/admin/") {
				return true
			}
			return p == "/api/v1/admin/sign-in"
		},
	}))

	productHandler.RegisterAdminRoutes(app)
	customerHandler.RegisterAdminRoutes(app)
	orderHandler.RegisterAdminRoutes(app)
	settingsHandler.RegisterAdminRoutes(app)
	adminHandler.RegisterAdminRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + cart.TokenHeader,
	}))
}

func mustOpenDB() *sql.DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			unit TEXT NOT NULL DEFAULT 'piece',
			price numeric NOT NULL DEFAULT 0,
			actual_price numeric NOT NULL DEFAULT 0,
			image_urls text[] NOT NULL DEFAULT '{}',
			out_of_stock boolean NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			phone TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			customer jsonb NOT NULL,
			items jsonb NOT NULL,
			subtotal numeric NOT NULL DEFAULT 0,
			delivery_charge numeric NOT NULL DEFAULT 0,
			total numeric NOT NULL DEFAULT 0,
			delivery_type TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			is_free_delivery boolean NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			admin_id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
