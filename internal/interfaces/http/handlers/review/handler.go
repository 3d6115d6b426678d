package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/review/usecases"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type ReviewHandler struct {
	createReviewUC  usecases.CreateReviewExecutor
	updateReviewUC  usecases.UpdateReviewExecutor
	deleteReviewUC  usecases.DeleteReviewExecutor
	requestReviewUC usecases.RequestReviewExecutor
	listReviewsUC   usecases.ListReviewsExecutor
	logger          logger.Interface
}

func NewReviewHandler(
	createReviewUC usecases.CreateReviewExecutor,
	updateReviewUC usecases.UpdateReviewExecutor,
	deleteReviewUC usecases.DeleteReviewExecutor,
	requestReviewUC usecases.RequestReviewExecutor,
	listReviewsUC usecases.ListReviewsExecutor,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUC:  createReviewUC,
		updateReviewUC:  updateReviewUC,
		deleteReviewUC:  deleteReviewUC,
		requestReviewUC: requestReviewUC,
		listReviewsUC:   listReviewsUC,
		logger:          logger.NewLogger(),
	}
}

// CreateReview handles POST /reviews
// @Summary Create a review
// @Description Write a review for an existing ticket
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param review body CreateReviewRequest true "Review data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create review", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	userID, _ := c.Get("user_id")
	result, err := h.createReviewUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review created successfully")
}

// UpdateReview handles PUT /reviews/:id
// @Summary Update review
// @Description Update a review's rating, headline or body. Owner only.
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Review ID"
// @Param review body UpdateReviewRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.UpdateReviewCommand{
		ReviewID: reviewID,
		ActorID:  userID.(uint),
		Rating:   req.Rating,
		Headline: req.Headline,
		Body:     req.Body,
	}

	result, err := h.updateReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review updated successfully", result)
}

// DeleteReview handles DELETE /reviews/:id
// @Summary Delete review
// @Description Delete a review. Owner only.
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := parseReviewID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.DeleteReviewCommand{
		ReviewID: reviewID,
		ActorID:  userID.(uint),
	}

	if _, err := h.deleteReviewUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review deleted successfully", nil)
}

// RequestReview handles POST /tickets/:id/review-requests
// @Summary Request a review
// @Description Ask another user to review a ticket. Sends a best-effort email notification.
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param request body RequestReviewRequest true "Requested username"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/review-requests [post]
func (h *ReviewHandler) RequestReview(c *gin.Context) {
	idStr := c.Param("id")
	ticketID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || ticketID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid ticket ID"))
		return
	}

	var req RequestReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.RequestReviewCommand{
		TicketID:          uint(ticketID),
		RequesterID:       userID.(uint),
		RequestedUsername: req.Username,
	}

	result, err := h.requestReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review requested successfully")
}

// ListReviews handles GET /reviews
// @Summary List reviews
// @Description Get a paginated list of reviews, optionally filtered by owner or ticket
// @Tags reviews
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param owner_id query int false "Owner filter"
// @Param ticket_id query int false "Ticket filter"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	req, err := parseListReviewsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listReviewsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reviews, result.Total, req.Page, req.PageSize)
}
