package handler

import (
	"errors"
	"net/http"

	"github.com/kirankumar485/urlshortner/internal/model"
	"github.com/kirankumar485/urlshortner/internal/service"

	"github.com/gin-gonic/gin"
)

// ShortenHandler handles short URL creation
type ShortenHandler struct {
	service service.ShortURLServiceInterface
}

// NewShortenHandler creates a new ShortenHandler
func NewShortenHandler(service service.ShortURLServiceInterface) *ShortenHandler {
	return &ShortenHandler{service: service}
}

// Shorten handles POST /api/shorten
// @Summary Create a short URL
// @Description Registers a short URL with an optional custom alias and topic
// @Tags shorturl
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body model.ShortenRequest true "Shorten request"
// @Success 201 {object} model.ShortenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/shorten [post]
func (h *ShortenHandler) Shorten(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing user identity",
		})
		return
	}

	var req model.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidAlias):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrAliasTaken):
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Alias already in use",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to create short URL",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
