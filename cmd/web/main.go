package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Rekha718/blogapp/internal/apiclient"
	"github.com/Rekha718/blogapp/internal/config"
	"github.com/Rekha718/blogapp/internal/identity"
	webhandler "github.com/Rekha718/blogapp/internal/web/handler"
	"github.com/Rekha718/blogapp/pkg/logger"
)

func main() {
	log := logger.New("info")
	cfg := config.LoadWebConfig()

	provider, err := identity.NewProvider(cfg)
	if err != nil {
		log.Fatal("failed to configure identity provider: " + err.Error())
	}
	api := apiclient.New(cfg.APIBaseURL)
	sessions := webhandler.NewSessionManager(provider)

	blogH := webhandler.NewBlogHandler(api, sessions, log)
	authH := webhandler.NewAuthHandler(provider, sessions, log)
	pageH := webhandler.NewPageHandler(api, sessions, log)

	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", pageH.Index)
	r.GET("/login", authH.LoginPage)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)

	r.GET("/blog", blogH.List)
	r.GET("/blog-post", blogH.EditOrNew)
	r.GET("/blog-edit/:id", blogH.EditOrNew)
	r.POST("/blog-post", blogH.Save)
	r.GET("/blog/:id", blogH.Article)
	r.POST("/blog-remove/:id", blogH.Remove)

	r.GET("/profile", pageH.Profile)
	r.GET("/admin", pageH.Admin)

	log.Info("start web server at port " + cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to run server: " + err.Error())
	}
}
