package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/N0Nameez/carcatalog/internal/dto"
	"github.com/N0Nameez/carcatalog/internal/models"
	"github.com/N0Nameez/carcatalog/internal/repository"
	"github.com/N0Nameez/carcatalog/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock CarService ---

type mockCarService struct {
	getCarsFn   func(ctx context.Context, filters repository.CarFilters) ([]models.Car, error)
	getCarFn    func(ctx context.Context, id uint) (*models.Car, error)
	createFn    func(ctx context.Context, in dto.CreateCarRequest, createdBy uint) (*models.Car, error)
	updateFn    func(ctx context.Context, id uint, in dto.UpdateCarRequest) (*models.Car, error)
	deleteFn    func(ctx context.Context, id uint) error
	getBrandsFn func(ctx context.Context) ([]models.Brand, error)
}

func (m *mockCarService) GetCars(ctx context.Context, filters repository.CarFilters) ([]models.Car, error) {
	return m.getCarsFn(ctx, filters)
}
func (m *mockCarService) GetCar(ctx context.Context, id uint) (*models.Car, error) {
	return m.getCarFn(ctx, id)
}
func (m *mockCarService) CreateCar(ctx context.Context, in dto.CreateCarRequest, createdBy uint) (*models.Car, error) {
	return m.createFn(ctx, in, createdBy)
}
func (m *mockCarService) UpdateCar(ctx context.Context, id uint, in dto.UpdateCarRequest) (*models.Car, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockCarService) DeleteCar(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockCarService) GetBrands(ctx context.Context) ([]models.Brand, error) {
	return m.getBrandsFn(ctx)
}

// --- Tests ---

func TestGetCars_Handler_Filters(t *testing.T) {
	var captured repository.CarFilters
	svc := &mockCarService{
		getCarsFn: func(ctx context.Context, filters repository.CarFilters) ([]models.Car, error) {
			captured = filters
			return []models.Car{}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cars?brandId=2&minYear=2018&maxPrice=50000&status=available&color=red", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewCarHandler(svc)
	require.NoError(t, h.GetCars(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured.BrandID)
	assert.Equal(t, uint(2), *captured.BrandID)
	require.NotNil(t, captured.MinYear)
	assert.Equal(t, 2018, *captured.MinYear)
	require.NotNil(t, captured.MaxPrice)
	assert.Equal(t, 50000.0, *captured.MaxPrice)
	require.NotNil(t, captured.Status)
	assert.Equal(t, models.CarAvailable, *captured.Status)
	require.NotNil(t, captured.Color)
	assert.Equal(t, "red", *captured.Color)
	assert.Nil(t, captured.ModelID)
	assert.Nil(t, captured.MaxYear)
	assert.Nil(t, captured.MinPrice)
}

func TestGetCars_Handler_InvalidFilter(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cars?status=broken", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewCarHandler(nil)
	err := h.GetCars(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetCar_Handler_NotFound(t *testing.T) {
	svc := &mockCarService{
		getCarFn: func(ctx context.Context, id uint) (*models.Car, error) {
			return nil, service.ErrCarNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := NewCarHandler(svc)
	err := h.GetCar(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetCar_Handler_Success(t *testing.T) {
	brand := &models.Brand{ID: 1, Name: "Honda"}
	model := &models.Model{ID: 4, BrandID: 1, Name: "Civic", Brand: brand}
	svc := &mockCarService{
		getCarFn: func(ctx context.Context, id uint) (*models.Car, error) {
			return &models.Car{ID: id, ModelID: 4, Year: 2022, Status: models.CarAvailable, Model: model}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	h := NewCarHandler(svc)
	require.NoError(t, h.GetCar(c))

	var resp dto.CarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Honda", resp.BrandName)
	assert.Equal(t, "Civic", resp.ModelName)
	assert.Equal(t, models.CarAvailable, resp.Status)
}

func TestGetBrands_Handler_Success(t *testing.T) {
	country := "Japan"
	svc := &mockCarService{
		getBrandsFn: func(ctx context.Context) ([]models.Brand, error) {
			return []models.Brand{
				{ID: 1, Name: "Honda", Country: &country, Models: []models.Model{{ID: 4, Name: "Civic"}}},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewCarHandler(svc)
	require.NoError(t, h.GetBrands(c))

	var resp []dto.BrandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Honda", resp[0].Name)
	require.Len(t, resp[0].Models, 1)
	assert.Equal(t, "Civic", resp[0].Models[0].Name)
}
