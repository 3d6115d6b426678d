package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "revu/internal/interfaces/http/handlers/ticket"
	"revu/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// Reads are public.
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths must be registered before parameterized ones.
		tickets.POST("/with-review",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CreateTicketWithReview)

		tickets.GET("/:id", config.TicketHandler.GetTicket)

		tickets.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CreateTicket)
		tickets.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.DeleteTicket)
	}
}
