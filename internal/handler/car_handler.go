package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/N0Nameez/carcatalog/internal/dto"
	"github.com/N0Nameez/carcatalog/internal/middleware"
	"github.com/N0Nameez/carcatalog/internal/models"
	"github.com/N0Nameez/carcatalog/internal/repository"
	"github.com/N0Nameez/carcatalog/internal/service"
	"github.com/labstack/echo/v4"
)

type CarHandler struct {
	svc service.CarService
}

func NewCarHandler(svc service.CarService) *CarHandler {
	return &CarHandler{svc: svc}
}

func (h *CarHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/api/cars", h.GetCars)
	e.GET("/api/cars/:id", h.GetCar)
	e.GET("/api/brands", h.GetBrands)

	admin := e.Group("/api/cars", middleware.JWTAuth(jwtSecret), middleware.RequireAdmin())
	admin.POST("", h.CreateCar)
	admin.PUT("/:id", h.UpdateCar)
	admin.DELETE("/:id", h.DeleteCar)
}

func (h *CarHandler) GetCars(c echo.Context) error {
	filters, err := parseCarFilters(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cars, err := h.svc.GetCars(c.Request().Context(), filters)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CarResponse, len(cars))
	for i, car := range cars {
		resp[i] = dto.ToCarResponse(&car)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}

	car, err := h.svc.GetCar(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *CarHandler) CreateCar(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req dto.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ModelID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "modelId is required")
	}

	car, err := h.svc.CreateCar(c.Request().Context(), req, userID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCarStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}

	var req dto.UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	car, err := h.svc.UpdateCar(c.Request().Context(), uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCarNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnknownCarStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}

	if err := h.svc.DeleteCar(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "car deleted"})
}

func (h *CarHandler) GetBrands(c echo.Context) error {
	brands, err := h.svc.GetBrands(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BrandResponse, len(brands))
	for i, b := range brands {
		resp[i] = dto.ToBrandResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func parseCarFilters(c echo.Context) (repository.CarFilters, error) {
	var f repository.CarFilters

	uintParam := func(name string, dst **uint) error {
		if v := c.QueryParam(name); v != "" {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return errors.New("invalid " + name)
			}
			u := uint(n)
			*dst = &u
		}
		return nil
	}
	intParam := func(name string, dst **int) error {
		if v := c.QueryParam(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.New("invalid " + name)
			}
			*dst = &n
		}
		return nil
	}
	floatParam := func(name string, dst **float64) error {
		if v := c.QueryParam(name); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.New("invalid " + name)
			}
			*dst = &n
		}
		return nil
	}

	if err := uintParam("brandId", &f.BrandID); err != nil {
		return f, err
	}
	if err := uintParam("modelId", &f.ModelID); err != nil {
		return f, err
	}
	if err := intParam("minYear", &f.MinYear); err != nil {
		return f, err
	}
	if err := intParam("maxYear", &f.MaxYear); err != nil {
		return f, err
	}
	if err := floatParam("minPrice", &f.MinPrice); err != nil {
		return f, err
	}
	if err := floatParam("maxPrice", &f.MaxPrice); err != nil {
		return f, err
	}
	if v := c.QueryParam("status"); v != "" {
		status := models.CarStatus(v)
		if !status.Valid() {
			return f, errors.New("invalid status")
		}
		f.Status = &status
	}
	if v := c.QueryParam("color"); v != "" {
		f.Color = &v
	}
	return f, nil
}
