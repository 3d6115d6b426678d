package feed

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/feed/usecases"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type FeedHandler struct {
	getFeedUC      usecases.GetFeedExecutor
	getDashboardUC usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewFeedHandler(getFeedUC usecases.GetFeedExecutor, getDashboardUC usecases.GetDashboardExecutor) *FeedHandler {
	return &FeedHandler{
		getFeedUC:      getFeedUC,
		getDashboardUC: getDashboardUC,
		logger:         logger.NewLogger(),
	}
}

// GetFeed handles GET /feed
// @Summary Get personalized feed
// @Description Tickets and reviews from followed users, newest first, excluding blocked users
// @Tags feed
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	userID, _ := c.Get("user_id")
	result, err := h.getFeedUC.Execute(c.Request.Context(), usecases.GetFeedQuery{
		UserID:     userID.(uint),
		Pagination: utils.Pagination{Page: page, PageSize: pageSize},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, page, pageSize)
}

// GetDashboard handles GET /dashboard
// @Summary Get personal dashboard
// @Description The authenticated user's tickets, reviews and pending review requests
// @Tags feed
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /dashboard [get]
func (h *FeedHandler) GetDashboard(c *gin.Context) {
	userID, _ := c.Get("user_id")

	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
