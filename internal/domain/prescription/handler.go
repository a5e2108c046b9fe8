package prescription

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Meena292006/MedHive/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/doctor/prescribe", h.Prescribe)
	api.GET("/cases/:id/prescriptions", h.ListByCase)
}

// prescribeRequest accepts both snake_case keys and the "caseId"/"doctor"
// keys used by older clients.
type prescribeRequest struct {
	CaseID          int64  `json:"case_id"`
	CaseIDAlt       int64  `json:"caseId"`
	DoctorName      string `json:"doctor_name"`
	Doctor          string `json:"doctor"`
	Medicines       string `json:"medicines"`
	Recommendations string `json:"recommendations"`
}

func (h *Handler) Prescribe(c echo.Context) error {
	var req prescribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p := Prescription{
		CaseID:          req.CaseID,
		DoctorName:      req.DoctorName,
		Medicines:       req.Medicines,
		Recommendations: req.Recommendations,
	}
	if p.CaseID == 0 {
		p.CaseID = req.CaseIDAlt
	}
	if p.DoctorName == "" {
		p.DoctorName = req.Doctor
	}
	if err := h.svc.Prescribe(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListByCase(c echo.Context) error {
	caseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByCase(c.Request().Context(), caseID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Prescription{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
