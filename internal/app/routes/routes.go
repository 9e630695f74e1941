package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lucianaf/vspotlight/internal/app/controllers"
	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	rsvpController *controllers.RSVPController,
	orgRequestController *controllers.OrgRequestController,
	calendarController *controllers.CalendarController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Event routes
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetAllEvents)
			events.GET("/mine", eventController.GetMyEvents)
			events.GET("/organization/:email", eventController.GetOrganizationEvents)
			events.GET("/:id", eventController.GetEventByID)

			// Comments
			events.GET("/:id/comments", eventController.GetComments)
			events.POST("/:id/comments", eventController.AddComment)

			// RSVPs and matching
			events.POST("/:id/rsvp", rsvpController.RSVP)
			events.DELETE("/:id/rsvp", rsvpController.CancelRSVP)
			events.POST("/:id/rsvp/toggle", rsvpController.ToggleRSVP)
			events.GET("/:id/match", rsvpController.GetMatch)

			// Publishing is restricted to organization accounts. The service
			// layer re-checks ownership on update and delete.
			eventsOrgProtected := events.Group("")
			eventsOrgProtected.Use(authMiddleware.RoleRequired(string(models.RoleOrganization)))
			{
				eventsOrgProtected.POST("", eventController.CreateEvent)
				eventsOrgProtected.PUT("/:id", eventController.UpdateEvent)
				eventsOrgProtected.DELETE("/:id", eventController.DeleteEvent)
			}
		}

		// Comment moderation
		authenticated.DELETE("/comments/:commentId", eventController.DeleteComment)

		// Organization request routes
		orgRequests := authenticated.Group("/org-requests")
		{
			orgRequests.POST("", orgRequestController.Apply)

			// Dean-only routes
			orgRequestsDeanProtected := orgRequests.Group("")
			orgRequestsDeanProtected.Use(authMiddleware.RoleRequired(string(models.RoleDean)))
			{
				orgRequestsDeanProtected.GET("", orgRequestController.GetPending)
				orgRequestsDeanProtected.POST("/:id/approve", orgRequestController.Approve)
			}
		}

		// Calendar routes
		calendar := authenticated.Group("/calendar")
		{
			calendar.GET("", calendarController.GetMonth)
			calendar.GET("/:date", calendarController.GetDay)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
