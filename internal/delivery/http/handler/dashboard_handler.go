package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/dto"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/usecase"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/pkg/response"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, validator *validator.CustomValidator) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

// GetDashboard reads the filter selection from the query string.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req := filterFromQuery(r)
	h.dashboard(w, r, &req)
}

// FilterDashboard reads the filter selection from a JSON body.
func (h *DashboardHandler) FilterDashboard(w http.ResponseWriter, r *http.Request) {
	var req dto.DashboardFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	h.dashboard(w, r, &req)
}

func (h *DashboardHandler) dashboard(w http.ResponseWriter, r *http.Request, req *dto.DashboardFilterRequest) {
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), req)
	if err != nil {
		writeFilterError(w, err, "Failed to compute dashboard")
		return
	}

	message := "Dashboard retrieved successfully"
	if dashboard.Empty {
		message = "No appointments match the selected filters"
	}
	response.Success(w, http.StatusOK, message, dashboard)
}

func (h *DashboardHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.dashboardUsecase.GetFilterOptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get filter options")
		return
	}

	response.Success(w, http.StatusOK, "Filter options retrieved successfully", options)
}

func (h *DashboardHandler) ExportDashboard(w http.ResponseWriter, r *http.Request) {
	req := filterFromQuery(r)
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	data, err := h.dashboardUsecase.ExportDashboard(r.Context(), &req)
	if err != nil {
		writeFilterError(w, err, "Failed to export dashboard")
		return
	}

	filename := fmt.Sprintf("no-show-dashboard-%s.xlsx", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func filterFromQuery(r *http.Request) dto.DashboardFilterRequest {
	q := r.URL.Query()
	return dto.DashboardFilterRequest{
		Day:           q.Get("day"),
		Neighbourhood: q.Get("neighbourhood"),
		AgeGroup:      q.Get("age_group"),
		GapGroup:      q.Get("gap_group"),
	}
}

func writeFilterError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUnknownDay):
		response.Error(w, http.StatusBadRequest, "Unknown day of week", nil)
	case errors.Is(err, usecase.ErrUnknownAgeGroup):
		response.Error(w, http.StatusBadRequest, "Unknown age group", nil)
	case errors.Is(err, usecase.ErrUnknownGapGroup):
		response.Error(w, http.StatusBadRequest, "Unknown gap group", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
