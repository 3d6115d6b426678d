package relationship

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/relationship/usecases"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type RelationshipHandler struct {
	followUserUC        usecases.FollowUserExecutor
	unfollowUserUC      usecases.UnfollowUserExecutor
	blockUserUC         usecases.BlockUserExecutor
	unblockUserUC       usecases.UnblockUserExecutor
	listRelationshipsUC usecases.ListRelationshipsExecutor
	logger              logger.Interface
}

func NewRelationshipHandler(
	followUserUC usecases.FollowUserExecutor,
	unfollowUserUC usecases.UnfollowUserExecutor,
	blockUserUC usecases.BlockUserExecutor,
	unblockUserUC usecases.UnblockUserExecutor,
	listRelationshipsUC usecases.ListRelationshipsExecutor,
) *RelationshipHandler {
	return &RelationshipHandler{
		followUserUC:        followUserUC,
		unfollowUserUC:      unfollowUserUC,
		blockUserUC:         blockUserUC,
		unblockUserUC:       unblockUserUC,
		listRelationshipsUC: listRelationshipsUC,
		logger:              logger.NewLogger(),
	}
}

// FollowUser handles POST /users/:id/follow
// @Summary Follow a user
// @Description Start following another user. Following twice is a no-op.
// @Tags relationships
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id}/follow [post]
func (h *RelationshipHandler) FollowUser(c *gin.Context) {
	h.mutateEdge(c, func(actorID, targetID uint) (any, string, error) {
		result, err := h.followUserUC.Execute(c.Request.Context(), usecases.FollowUserCommand{
			ActorID:      actorID,
			TargetUserID: targetID,
		})
		return result, "Now following user", err
	})
}

// UnfollowUser handles DELETE /users/:id/follow
// @Summary Unfollow a user
// @Description Stop following a user. Unfollowing a non-followed user is a no-op.
// @Tags relationships
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/{id}/follow [delete]
func (h *RelationshipHandler) UnfollowUser(c *gin.Context) {
	h.mutateEdge(c, func(actorID, targetID uint) (any, string, error) {
		result, err := h.unfollowUserUC.Execute(c.Request.Context(), usecases.UnfollowUserCommand{
			ActorID:      actorID,
			TargetUserID: targetID,
		})
		return result, "Unfollowed user", err
	})
}

// BlockUser handles POST /users/:id/block
// @Summary Block a user
// @Description Hide a user's activity from your feed. Blocking twice is a no-op.
// @Tags relationships
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id}/block [post]
func (h *RelationshipHandler) BlockUser(c *gin.Context) {
	h.mutateEdge(c, func(actorID, targetID uint) (any, string, error) {
		result, err := h.blockUserUC.Execute(c.Request.Context(), usecases.BlockUserCommand{
			ActorID:      actorID,
			TargetUserID: targetID,
		})
		return result, "User blocked", err
	})
}

// UnblockUser handles DELETE /users/:id/block
// @Summary Unblock a user
// @Description Remove a block. Unblocking a non-blocked user is a no-op.
// @Tags relationships
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/{id}/block [delete]
func (h *RelationshipHandler) UnblockUser(c *gin.Context) {
	h.mutateEdge(c, func(actorID, targetID uint) (any, string, error) {
		result, err := h.unblockUserUC.Execute(c.Request.Context(), usecases.UnblockUserCommand{
			ActorID:      actorID,
			TargetUserID: targetID,
		})
		return result, "User unblocked", err
	})
}

// ListRelationships handles GET /users/me/relationships
// @Summary List relationships
// @Description Get the authenticated user's following, followers and blocked lists
// @Tags relationships
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/me/relationships [get]
func (h *RelationshipHandler) ListRelationships(c *gin.Context) {
	userID, _ := c.Get("user_id")

	result, err := h.listRelationshipsUC.Execute(c.Request.Context(), usecases.ListRelationshipsQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *RelationshipHandler) mutateEdge(c *gin.Context, fn func(actorID, targetID uint) (any, string, error)) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	result, message, err := fn(userID.(uint), targetID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, message, result)
}

func parseUserID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid user ID")
	}
	return uint(id), nil
}
