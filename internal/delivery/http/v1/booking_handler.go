package v1

import (
	"net/http"

	"episolve-backend/internal/delivery/http/response"
	"episolve-backend/internal/domain"
	"episolve-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUC domain.BookingUsecase
	secLog    *security.SecurityLogger
}

func NewBookingHandler(public gin.IRoutes, bookingUC domain.BookingUsecase, secLog *security.SecurityLogger) {
	handler := &BookingHandler{
		bookingUC: bookingUC,
		secLog:    secLog,
	}

	public.POST("/send-booking-email", handler.BookConsultation)
}

// BookConsultation godoc
// @Summary      Book a Strategic Audit
// @Description  Stores a consultation booking request and emails the submitter and the Episolve inbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        booking  body      domain.BookingRequest  true  "Booking Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send-booking-email [post]
func (h *BookingHandler) BookConsultation(c *gin.Context) {
	req, ok := bindJSON[domain.BookingRequest](c, h.secLog, "Invalid input")
	if !ok {
		return
	}

	if _, err := h.bookingUC.Book(c.Request.Context(), req); err != nil {
		fail(c, h.secLog, err)
		return
	}

	response.Success(c, http.StatusOK, "")
}
