package triage

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Meena292006/MedHive/internal/platform/ml"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/cases/submit", h.SubmitCase)
	api.GET("/cases", h.ListCases)
	api.GET("/cases/:id", h.GetCase)
	api.PATCH("/cases/:id/status", h.UpdateStatus)
}

// submitRequest accepts both "patient_name" and the shorter "patient" key
// used by older clients.
type submitRequest struct {
	PatientName string   `json:"patient_name"`
	Patient     string   `json:"patient"`
	Symptoms    []string `json:"symptoms"`
}

func (h *Handler) SubmitCase(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	name := req.PatientName
	if name == "" {
		name = req.Patient
	}

	res, err := h.svc.SubmitCase(c.Request().Context(), name, req.Symptoms)
	if err != nil {
		if errors.Is(err, ml.ErrPredictionUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, "prediction service unavailable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListCases(c echo.Context) error {
	items, err := h.svc.ListCases(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Case{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCase(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	item, err := h.svc.GetCase(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "case not found")
	}
	return c.JSON(http.StatusOK, item)
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(req.Status)})
}
