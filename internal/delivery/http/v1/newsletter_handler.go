package v1

import (
	"net/http"

	"episolve-backend/internal/delivery/http/response"
	"episolve-backend/internal/domain"
	"episolve-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	msgSubscribed        = "Successfully subscribed!"
	msgAlreadySubscribed = "You're already subscribed!"
)

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
	secLog       *security.SecurityLogger
}

func NewNewsletterHandler(public gin.IRoutes, newsletterUC domain.NewsletterUsecase, secLog *security.SecurityLogger) {
	handler := &NewsletterHandler{
		newsletterUC: newsletterUC,
		secLog:       secLog,
	}

	public.POST("/subscribe-newsletter", handler.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Description  Creates or reactivates a subscription and sends a welcome email. Subscribing an active address is a no-op.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        subscription  body      domain.SubscribeRequest  true  "Subscriber email"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Failure      429           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /subscribe-newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	req, ok := bindJSON[domain.SubscribeRequest](c, h.secLog, "Invalid email address")
	if !ok {
		return
	}

	outcome, err := h.newsletterUC.Subscribe(c.Request.Context(), req)
	if err != nil {
		fail(c, h.secLog, err)
		return
	}

	if outcome == domain.SubscriptionAlreadyActive {
		response.Message(c, http.StatusOK, msgAlreadySubscribed)
		return
	}
	response.Success(c, http.StatusOK, msgSubscribed)
}
