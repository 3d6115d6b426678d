package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/ticket/usecases"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC           usecases.CreateTicketExecutor
	createTicketWithReviewUC usecases.CreateTicketWithReviewExecutor
	updateTicketUC           usecases.UpdateTicketExecutor
	deleteTicketUC           usecases.DeleteTicketExecutor
	getTicketUC              usecases.GetTicketExecutor
	listTicketsUC            usecases.ListTicketsExecutor
	logger                   logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	createTicketWithReviewUC usecases.CreateTicketWithReviewExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:           createTicketUC,
		createTicketWithReviewUC: createTicketWithReviewUC,
		updateTicketUC:           updateTicketUC,
		deleteTicketUC:           deleteTicketUC,
		getTicketUC:              getTicketUC,
		listTicketsUC:            listTicketsUC,
		logger:                   logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
// @Summary Create a new ticket
// @Description Create a ticket asking other users for reviews
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param ticket body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// CreateTicketWithReview handles POST /tickets/with-review
// @Summary Create a ticket together with its first review
// @Description Atomically create a ticket and an initial review
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param ticket body CreateTicketWithReviewRequest true "Ticket and review data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /tickets/with-review [post]
func (h *TicketHandler) CreateTicketWithReview(c *gin.Context) {
	var req CreateTicketWithReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createTicketWithReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket and review created successfully")
}

// GetTicket handles GET /tickets/:id
// @Summary Get ticket by ID
// @Description Get details of a ticket including rendered description
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Description Get a paginated list of tickets, optionally filtered by owner
// @Tags tickets
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param owner_id query int false "Owner filter"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// UpdateTicket handles PUT /tickets/:id
// @Summary Update ticket
// @Description Update a ticket's title, description or image. Owner only.
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param ticket body UpdateTicketRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     userID.(uint),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
// @Summary Delete ticket
// @Description Delete a ticket and all of its reviews. Owner only.
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.DeleteTicketCommand{
		TicketID: ticketID,
		ActorID:  userID.(uint),
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}
