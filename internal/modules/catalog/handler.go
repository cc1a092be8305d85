package catalog

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
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.GET("/tours", h.ListTours)
	rg.GET("/tours/:id", h.GetTour)
	rg.GET("/excursions", h.ListExcursions)
	rg.GET("/excursions/:id", h.GetExcursion)
}

func (h *Handler) ListHotels(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	hotels, err := h.service.ListHotels(c.Request.Context(), onlyAvailable)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, toHotelResponse(&hotels[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(out), "hotels": out})
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": toHotelResponse(hotel)})
}

func (h *Handler) ListTours(c *gin.Context) {
	tours, err := h.service.ListTours(c.Request.Context(), c.Query("tour_type"))
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]TourResponse, 0, len(tours))
	for i := range tours {
		out = append(out, toTourResponse(&tours[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(out), "tours": out})
}

func (h *Handler) GetTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tour, err := h.service.GetTour(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": toTourResponse(tour)})
}

func (h *Handler) ListExcursions(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	excursions, err := h.service.ListExcursions(c.Request.Context(), onlyAvailable)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]ExcursionResponse, 0, len(excursions))
	for i := range excursions {
		out = append(out, toExcursionResponse(&excursions[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(out), "excursions": out})
}

func (h *Handler) GetExcursion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	excursion, err := h.service.GetExcursion(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"excursion": toExcursionResponse(excursion)})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTourType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
