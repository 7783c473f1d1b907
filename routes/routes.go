package routes

import (
	"churchpro-backend/controllers"
	"churchpro-backend/services"
	"churchpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(repo *services.Repository, lifecycle *services.Lifecycle, stats *services.Stats) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	memberController := controllers.NewMemberController(repo)
	membershipController := controllers.NewMembershipController(repo, lifecycle)
	paymentController := controllers.NewPaymentController(repo, lifecycle)
	dashboardController := controllers.NewDashboardController(stats)

	api := r.Group("/api")
	{
		// Member routes
		members := api.Group("/members")
		{
			members.POST("", memberController.CreateMember)
			members.GET("", memberController.GetMembers)
			members.GET("/overview", memberController.GetMembersOverview)
			members.GET("/:id", memberController.GetMember)
			members.PUT("/:id", memberController.UpdateMember)
			members.DELETE("/:id", memberController.DeleteMember)
			members.POST("/:id/deactivate", memberController.DeactivateMember)
			members.POST("/:id/reactivate", memberController.ReactivateMember)
		}

		// Membership routes
		memberships := api.Group("/memberships")
		{
			memberships.POST("", membershipController.CreateMembership)
			memberships.GET("", membershipController.GetMemberships)
			memberships.POST("/:id/renew", membershipController.RenewMembership)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", paymentController.RecordPayment)
			payments.GET("", paymentController.GetPayments)
		}

		// Dashboard routes
		api.GET("/dashboard/weekly", dashboardController.GetWeeklyStats)
	}

	return r
}
