package v1

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	// Returned on every accepted submission, whether or not email dispatch
	// is configured; transport status is never leaked to the public.
	contactAckMessage = "Thank you for your message! I'll get back to you within 24 hours."

	contactFailureMessage = "Sorry, there was an error sending your message. Please try again later."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.Error(apperror.BadRequest(vErr.Error()))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, contactFailureMessage, err))
		return
	}

	response.Success(c, http.StatusOK, contactAckMessage, nil)
}
