package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rekha718/blogapp/internal/config"
	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/internal/handler"
	"github.com/Rekha718/blogapp/internal/repository"
	"github.com/Rekha718/blogapp/internal/service"
)

func main() {

	conf := config.LoadAPIConfig()
	db, err := gorm.Open(postgres.Open(conf.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	// auto migration
	if err := db.AutoMigrate(&domain.Post{}); err != nil {
		log.Fatalf("failed to migrate db: %v", err)
	}

	repo := repository.NewPostRepository(db)
	svc := service.NewPostService(repo)
	h := handler.NewPostHandler(svc)
	uploads := handler.NewUploadHandler(conf.UploadDir)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{conf.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.GET("/posts", h.GetPosts)
	api.GET("/posts/:id", h.GetPost)
	api.POST("/posts", h.CreatePost)
	api.PUT("/posts/:id", h.UpdatePost)
	api.DELETE("/posts/:id", h.DeletePost)
	api.POST("/upload-image", uploads.UploadImage)

	r.Static("/uploads", conf.UploadDir)

	if err := r.Run(":" + conf.ServerPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
