package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourista/internal/domain"
	"tourista/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Booking created successfully", gin.H{
		"booking": toBookingResponse(b),
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Booking canceled successfully", gin.H{
		"booking": toBookingResponse(b),
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	productType, ok := parseTypeFilter(c.Query("type"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking type filter")
		return
	}

	bs, err := h.service.ListBookings(c.Request.Context(), c.GetInt64("user_id"), productType)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":    len(bs),
		"bookings": toBookingResponses(bs),
	})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

// parseTypeFilter maps the public filter segment to a product type. The empty
// filter means all types.
func parseTypeFilter(raw string) (*domain.ProductType, bool) {
	switch raw {
	case "":
		return nil, true
	case "hotels":
		t := domain.ProductHotel
		return &t, true
	case "tours":
		t := domain.ProductTour
		return &t, true
	case "excursions":
		t := domain.ProductExcursion
		return &t, true
	default:
		return nil, false
	}
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductSelection):
		response.Error(c, http.StatusBadRequest, "INVALID_PRODUCT_SELECTION", err.Error())
	case errors.Is(err, ErrMissingStayDates):
		response.Error(c, http.StatusBadRequest, "MISSING_STAY_DATES", err.Error())
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
	case errors.Is(err, ErrUnexpectedStayDates):
		response.Error(c, http.StatusBadRequest, "UNEXPECTED_STAY_DATES", err.Error())
	case errors.Is(err, ErrGuestCount):
		response.Error(c, http.StatusBadRequest, "INVALID_GUEST_COUNT", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not authorized")
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrInsufficientCapacity):
		response.Error(c, http.StatusConflict, "INSUFFICIENT_CAPACITY", "Not enough available rooms for the requested dates")
	case errors.Is(err, domain.ErrAlreadyCanceled):
		response.Error(c, http.StatusConflict, "ALREADY_CANCELED", "Booking already canceled")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
