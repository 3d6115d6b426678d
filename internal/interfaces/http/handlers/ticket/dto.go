package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/ticket/usecases"
	"revu/internal/shared/errors"
	"revu/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=4096"`
	Image       string `json:"image,omitempty" binding:"omitempty,url"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		OwnerID:     ownerID,
	}
}

type CreateTicketWithReviewRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=4096"`
	Image       string `json:"image,omitempty" binding:"omitempty,url"`
	Review      struct {
		Rating   int    `json:"rating" binding:"min=0,max=5"`
		Headline string `json:"headline" binding:"required,max=128"`
		Body     string `json:"body" binding:"max=8192"`
	} `json:"review" binding:"required"`
}

func (r *CreateTicketWithReviewRequest) ToCommand(ownerID uint) usecases.CreateTicketWithReviewCommand {
	return usecases.CreateTicketWithReviewCommand{
		Title:          r.Title,
		Description:    r.Description,
		Image:          r.Image,
		OwnerID:     ownerID,
		Rating:      r.Review.Rating,
		Headline:    r.Review.Headline,
		Body:        r.Review.Body,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=128"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=4096"`
	Image       *string `json:"image,omitempty"`
}

type ListTicketsRequest struct {
	Page     int
	PageSize int
	OwnerID  *uint
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		OwnerID: r.OwnerID,
		Pagination: utils.Pagination{
			Page:     r.Page,
			PageSize: r.PageSize,
		},
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{Page: page, PageSize: pageSize}

	if ownerStr := c.Query("owner_id"); ownerStr != "" {
		ownerID, err := strconv.ParseUint(ownerStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid owner_id")
		}
		id := uint(ownerID)
		req.OwnerID = &id
	}

	return req, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
