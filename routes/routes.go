package routes

import (
	"os"
	"strings"

	"nailstudio-backend/config"
	"nailstudio-backend/controllers"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(entryRepo *repository.EntryRepository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		entryController := controllers.EntryController{Repo: entryRepo}

		// Entry routes
		entries := api.Group("/entries")
		{
			entries.POST("", entryController.CreateEntry)
			entries.GET("", entryController.GetEntries)
			entries.GET("/date/:date", entryController.GetDaySchedule)
			entries.GET("/:id", entryController.GetEntry)
			entries.PUT("/:id", entryController.UpdateEntry)
			entries.DELETE("/:id", entryController.DeleteEntry)
		}
		api.GET("/me/entries", entryController.GetMyEntries)

		// Service catalog routes; writes are admin only
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)

			services.Use(utils.AdminMiddleware())
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// User routes; account management is admin only
		users := api.Group("/users")
		{
			users.GET("/:id", controllers.GetUser)
			users.GET("/:id/entries", controllers.GetUserEntries)
			users.GET("/:id/socials", controllers.GetUserSocials)

			users.Use(utils.AdminMiddleware())
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.PUT("/:id", controllers.UpdateUser)
			users.DELETE("/:id", controllers.DeleteUser)
		}

		// Blog posts (read only)
		posts := api.Group("/posts")
		{
			posts.GET("", controllers.GetPosts)
			posts.GET("/:id", controllers.GetPost)
		}

		// Own social profile
		api.GET("/me/socials", controllers.GetMySocials)
		api.PUT("/me/socials", controllers.UpdateMySocials)

		// Admin reports and reminder history
		admin := api.Group("", utils.AdminMiddleware())
		{
			reportController := controllers.ReportController{}
			admin.GET("/reports/schedule", reportController.GetScheduleReport)
			admin.GET("/reminders", controllers.GetReminderLogs)
		}
	}

	return r
}
