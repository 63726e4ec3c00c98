package main

import (
	"fmt"
	"log"
	"net/http"

	"touhoucatalog/backend/internal/config"
	"touhoucatalog/backend/internal/database"
	"touhoucatalog/backend/internal/handler"
	"touhoucatalog/backend/internal/middleware"
	"touhoucatalog/backend/internal/repository"
	"touhoucatalog/backend/internal/seed"
	"touhoucatalog/backend/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "touhoucatalog/backend/docs" // Registers the generated swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Touhou Catalog API
// @version         1.0
// @description     Games, characters and music themes of the Touhou Project.
// @host            localhost:8080
// @BasePath        /api
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(database.Options{
		Driver:   cfg.DatabaseDriver,
		DSN:      cfg.DatabaseURL,
		LogLevel: cfg.DatabaseLogLevel,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := repository.New(db)

	if cfg.SeedDatabase {
		if err := seed.Run(store); err != nil {
			log.Printf("An error occurred while seeding the database: %v", err)
		}
	}

	images, err := upload.NewImageStore(cfg.ImageDir, "Images")
	if err != nil {
		log.Fatalf("Failed to prepare image directory: %v", err)
	}

	router := gin.Default()
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	router.Use(cors.New(corsConfig(cfg)))
	router.Use(middleware.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Uploaded and seeded images
	router.Static("/Images", cfg.ImageDir)

	api := router.Group("/api")
	handler.RegisterRoutes(api, handler.New(store, images, cfg.MaxUploadBytes()))

	fmt.Printf("Server is running on %s\n", cfg.ServerAddress)
	fmt.Println("Swagger UI is available at /swagger/index.html")
	log.Fatal(router.Run(cfg.ServerAddress))
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	c.ExposeHeaders = []string{"Location"}
	return c
}
