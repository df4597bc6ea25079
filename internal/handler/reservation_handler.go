package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/N0Nameez/carcatalog/internal/dto"
	"github.com/N0Nameez/carcatalog/internal/middleware"
	"github.com/N0Nameez/carcatalog/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/api/reservations", middleware.JWTAuth(jwtSecret))
	g.POST("", h.CreateReservation)
	g.GET("/my", h.GetMyReservations)
	g.GET("/:id", h.GetReservation)
	g.DELETE("/:id", h.CancelReservation)
	g.GET("/car/:carId", h.GetCarReservations)
	g.PUT("/:id/status", h.UpdateReservationStatus, middleware.RequireAdmin())
}

// creationErrors are the validation-pipeline failures surfaced to the client
// as 400 {message}, matching the original booking contract.
var creationErrors = []error{
	service.ErrCarNotFound,
	service.ErrCarUnavailable,
	service.ErrDatesUnavailable,
	service.ErrEndBeforeStart,
	service.ErrMaxDuration,
	service.ErrMustStartToday,
	service.ErrMinDuration,
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CarID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "carId is required")
	}

	reservation, err := h.svc.CreateReservation(c.Request().Context(), userID, service.CreateReservationInput{
		CarID:      req.CarID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: req.TotalPrice,
		Comment:    req.Comment,
	})
	if err != nil {
		for _, known := range creationErrors {
			if errors.Is(err, known) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) GetMyReservations(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	reservations, err := h.svc.GetUserReservations(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	if err := h.svc.CancelReservation(c.Request().Context(), uint(id), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound),
			errors.Is(err, service.ErrCancelCutoff):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "reservation cancelled"})
}

func (h *ReservationHandler) GetCarReservations(c echo.Context) error {
	carID, err := strconv.ParseUint(c.Param("carId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}

	reservations, err := h.svc.GetCarReservations(c.Request().Context(), uint(carID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}

	var req dto.UpdateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.UpdateReservationStatus(c.Request().Context(), uint(id), req.NewStatus)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound),
			errors.Is(err, service.ErrUnknownStatus),
			errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}
