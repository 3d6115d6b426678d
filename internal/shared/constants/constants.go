// Package constants defines shared application constants.
package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Content bounds
const (
	MaxTicketTitleLength       = 128
	MaxTicketDescriptionLength = 2048
	MaxReviewHeadlineLength    = 128
	MaxReviewBodyLength        = 8192
	MinReviewRating            = 0
	MaxReviewRating            = 5
)

// Runtime environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyRequestID = "request_id"
)
