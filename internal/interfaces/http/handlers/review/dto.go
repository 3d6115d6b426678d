package review

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/review/usecases"
	"revu/internal/shared/errors"
	"revu/internal/shared/utils"
)

type CreateReviewRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	Rating   int    `json:"rating" binding:"min=0,max=5"`
	Headline string `json:"headline" binding:"required,max=128"`
	Body     string `json:"body" binding:"max=8192"`
}

func (r *CreateReviewRequest) ToCommand(ownerID uint) usecases.CreateReviewCommand {
	return usecases.CreateReviewCommand{
		TicketID: r.TicketID,
		Rating:   r.Rating,
		Headline: r.Headline,
		Body:     r.Body,
		OwnerID:  ownerID,
	}
}

type UpdateReviewRequest struct {
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Headline *string `json:"headline,omitempty" binding:"omitempty,max=128"`
	Body     *string `json:"body,omitempty" binding:"omitempty,max=8192"`
}

type RequestReviewRequest struct {
	Username string `json:"username" binding:"required"`
}

type ListReviewsRequest struct {
	Page     int
	PageSize int
	OwnerID  *uint
	TicketID *uint
}

func (r *ListReviewsRequest) ToQuery() usecases.ListReviewsQuery {
	return usecases.ListReviewsQuery{
		OwnerID:  r.OwnerID,
		TicketID: r.TicketID,
		Pagination: utils.Pagination{
			Page:     r.Page,
			PageSize: r.PageSize,
		},
	}
}

func parseListReviewsRequest(c *gin.Context) (*ListReviewsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListReviewsRequest{Page: page, PageSize: pageSize}

	if ownerStr := c.Query("owner_id"); ownerStr != "" {
		ownerID, err := strconv.ParseUint(ownerStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid owner_id")
		}
		id := uint(ownerID)
		req.OwnerID = &id
	}

	if ticketStr := c.Query("ticket_id"); ticketStr != "" {
		ticketID, err := strconv.ParseUint(ticketStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid ticket_id")
		}
		id := uint(ticketID)
		req.TicketID = &id
	}

	return req, nil
}

func parseReviewID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid review ID")
	}
	return uint(id), nil
}
