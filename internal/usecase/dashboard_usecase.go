package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/converter"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/dto"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownAgeGroup = errors.New("unknown age group")
	ErrUnknownGapGroup = errors.New("unknown gap group")
	ErrUnknownDay      = errors.New("unknown day of week")
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, req *dto.DashboardFilterRequest) (*dto.DashboardResponse, error)
	GetFilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error)
	ExportDashboard(ctx context.Context, req *dto.DashboardFilterRequest) ([]byte, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	base        *entity.Table
	fingerprint string
	filter      *service.FilterEngine
	dashboard   *service.Dashboard
	exporter    *service.WorkbookExporter
	cache       service.DashboardCache
}

func NewDashboardUsecase(
	log *logrus.Logger,
	base *entity.Table,
	cache service.DashboardCache,
) DashboardUsecase {
	if cache == nil {
		cache = service.NewNoopDashboardCache()
	}
	filter := service.NewFilterEngine()
	return &dashboardUsecase{
		log:         log,
		base:        base,
		fingerprint: base.Fingerprint(),
		filter:      filter,
		dashboard:   service.NewDashboard(filter, service.NewAggregator()),
		exporter:    service.NewWorkbookExporter(),
		cache:       cache,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, req *dto.DashboardFilterRequest) (*dto.DashboardResponse, error) {
	sel, err := selectionFromRequest(req)
	if err != nil {
		return nil, err
	}

	if payload, err := u.cache.Get(ctx, u.fingerprint, sel); err == nil {
		var cached dto.DashboardResponse
		decodeErr := json.Unmarshal(payload, &cached)
		if decodeErr == nil {
			return &cached, nil
		}
		u.log.Warnf("Failed to decode cached dashboard: %+v", decodeErr)
	} else if !errors.Is(err, service.ErrCacheMiss) {
		u.log.Warnf("Failed to read dashboard cache: %+v", err)
	}

	state, err := u.dashboard.Compute(u.base, sel)
	if err != nil {
		u.log.Errorf("Failed to compute dashboard: %+v", err)
		return nil, err
	}

	response := converter.DashboardStateToResponse(state)
	if payload, err := json.Marshal(response); err != nil {
		u.log.Warnf("Failed to encode dashboard for cache: %+v", err)
	} else if err := u.cache.Set(ctx, u.fingerprint, sel, payload); err != nil {
		u.log.Warnf("Failed to write dashboard cache: %+v", err)
	}

	u.log.WithFields(logrus.Fields{
		"day":           sel.DayOfWeek,
		"neighbourhood": sel.Neighbourhood,
		"age_group":     sel.AgeGroup,
		"gap_group":     sel.GapGroup,
		"rows":          state.KPI.TotalAppointments,
		"empty":         state.Empty,
	}).Debug("Dashboard computed")

	return response, nil
}

func (u *dashboardUsecase) GetFilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error) {
	return converter.FilterOptionsToResponse(u.filter.Options(u.base)), nil
}

func (u *dashboardUsecase) ExportDashboard(ctx context.Context, req *dto.DashboardFilterRequest) ([]byte, error) {
	sel, err := selectionFromRequest(req)
	if err != nil {
		return nil, err
	}

	state, err := u.dashboard.Compute(u.base, sel)
	if err != nil {
		u.log.Errorf("Failed to compute dashboard: %+v", err)
		return nil, err
	}

	data, err := u.exporter.Export(state)
	if err != nil {
		u.log.Errorf("Failed to export dashboard: %+v", err)
		return nil, err
	}
	return data, nil
}

// selectionFromRequest converts req and rejects bucket or day labels that no
// row could ever carry. An unknown neighbourhood is a valid, empty selection.
func selectionFromRequest(req *dto.DashboardFilterRequest) (entity.FilterSelection, error) {
	sel := converter.FilterRequestToSelection(req)

	if sel.AgeGroup != "" && !entity.AgeGroups.Has(sel.AgeGroup) {
		return sel, ErrUnknownAgeGroup
	}
	if sel.GapGroup != "" && !entity.GapGroups.Has(sel.GapGroup) {
		return sel, ErrUnknownGapGroup
	}
	if sel.DayOfWeek != "" && !isWeekday(sel.DayOfWeek) {
		return sel, ErrUnknownDay
	}
	return sel, nil
}

func isWeekday(day string) bool {
	for _, d := range entity.WeekOrder {
		if d == day {
			return true
		}
	}
	return false
}
