package v1

import (
	"net/http"

	"episolve-backend/internal/delivery/http/response"
	"episolve-backend/internal/domain"
	"episolve-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	secLog    *security.SecurityLogger
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public gin.IRoutes, contactUC domain.ContactUsecase, secLog *security.SecurityLogger) {
	handler := &ContactHandler{
		contactUC: contactUC,
		secLog:    secLog,
	}

	public.POST("/send-contact-email", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Stores the submission, then emails a confirmation to the submitter and a notification to the Episolve inbox. Email delivery failures do not fail the request.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send-contact-email [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	req, ok := bindJSON[domain.ContactRequest](c, h.secLog, "Invalid input")
	if !ok {
		return
	}

	if _, err := h.contactUC.Submit(c.Request.Context(), req); err != nil {
		fail(c, h.secLog, err)
		return
	}

	response.Success(c, http.StatusOK, "")
}
