package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/dto"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAppointment(id string, day time.Time, age, gap int, noShow bool) entity.Appointment {
	scheduled := day.AddDate(0, 0, -gap)
	gapDays := service.GapDays(scheduled, day)
	return entity.Appointment{
		AppointmentID:  id,
		ScheduledDay:   scheduled,
		AppointmentDay: day,
		Age:            age,
		Neighbourhood:  "CENTRO",
		NoShow:         noShow,
		GapDays:        gapDays,
		DayOfWeek:      day.Weekday().String(),
		Month:          int(day.Month()),
		Year:           day.Year(),
		AgeGroup:       entity.AgeGroups.Assign(age),
		GapGroup:       entity.GapGroups.Assign(gapDays),
	}
}

func testBaseTable() *entity.Table {
	monday := time.Date(2016, time.May, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	return entity.NewTable([]entity.Appointment{
		testAppointment("A", monday, 25, 2, true),
		testAppointment("B", monday, 70, 10, false),
		testAppointment("C", tuesday, 25, 40, true),
	})
}

func setupTestCache(t *testing.T) (*miniredis.Miniredis, service.DashboardCache) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, service.NewRedisDashboardCache(client, testLogger(), time.Minute)
}

func TestDashboardUsecaseGetDashboard(t *testing.T) {
	uc := NewDashboardUsecase(testLogger(), testBaseTable(), nil)

	resp, err := uc.GetDashboard(context.Background(), &dto.DashboardFilterRequest{Day: "Monday"})
	require.NoError(t, err)

	assert.False(t, resp.Empty)
	assert.Equal(t, "Monday", resp.Filters.Day)
	assert.Equal(t, 2, resp.KPI.TotalAppointments)
	assert.Equal(t, 1, resp.KPI.TotalNoShows)
	assert.Equal(t, "50.00%", resp.KPI.NoShowRateText)
	assert.Equal(t, "6.00", resp.KPI.AvgGapDaysText)
	require.Len(t, resp.Charts, 10)
	assert.Equal(t, service.ChartAppointmentsByDay, resp.Charts[0].ID)
	assert.Equal(t, []float64{0, 0, 2, 0, 0, 0, 0}, resp.Charts[0].Series[0].Values)
}

func TestDashboardUsecaseGetDashboardEmptyView(t *testing.T) {
	uc := NewDashboardUsecase(testLogger(), testBaseTable(), nil)

	resp, err := uc.GetDashboard(context.Background(), &dto.DashboardFilterRequest{Neighbourhood: "NOWHERE"})
	require.NoError(t, err)

	assert.True(t, resp.Empty)
	assert.Equal(t, "0%", resp.KPI.NoShowRateText)
	for _, c := range resp.Charts {
		assert.True(t, c.NoData)
		assert.Equal(t, entity.NoDataPlaceholder, c.Message)
	}
}

func TestDashboardUsecaseRejectsUnknownLabels(t *testing.T) {
	uc := NewDashboardUsecase(testLogger(), testBaseTable(), nil)
	ctx := context.Background()

	_, err := uc.GetDashboard(ctx, &dto.DashboardFilterRequest{AgeGroup: "100+"})
	assert.ErrorIs(t, err, ErrUnknownAgeGroup)

	_, err = uc.GetDashboard(ctx, &dto.DashboardFilterRequest{GapGroup: "7"})
	assert.ErrorIs(t, err, ErrUnknownGapGroup)

	_, err = uc.ExportDashboard(ctx, &dto.DashboardFilterRequest{Day: "Funday"})
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestDashboardUsecaseUsesCache(t *testing.T) {
	mr, cache := setupTestCache(t)
	base := testBaseTable()
	uc := NewDashboardUsecase(testLogger(), base, cache)
	ctx := context.Background()
	req := &dto.DashboardFilterRequest{Day: "Monday"}

	first, err := uc.GetDashboard(ctx, req)
	require.NoError(t, err)

	key := service.DashboardCacheKey(base.Fingerprint(), entity.FilterSelection{DayOfWeek: "Monday"})
	require.True(t, mr.Exists(key))

	// A hit is served from the cache, not recomputed.
	require.NoError(t, mr.Set(key, `{"filters":{"day":"Monday"},"empty":false,"kpi":{"total_appointments":99},"charts":[]}`))
	second, err := uc.GetDashboard(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 99, second.KPI.TotalAppointments)
	assert.Equal(t, 2, first.KPI.TotalAppointments)
}

func TestDashboardUsecaseIgnoresCacheFailures(t *testing.T) {
	mr, cache := setupTestCache(t)
	uc := NewDashboardUsecase(testLogger(), testBaseTable(), cache)
	mr.Close()

	resp, err := uc.GetDashboard(context.Background(), &dto.DashboardFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.KPI.TotalAppointments)
}

func TestDashboardUsecaseGetFilterOptions(t *testing.T) {
	uc := NewDashboardUsecase(testLogger(), testBaseTable(), nil)

	opts, err := uc.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.WeekOrder, opts.Days)
	assert.Equal(t, []string{"CENTRO"}, opts.Neighbourhoods)
	assert.Equal(t, "2016-05-02", opts.FirstDay)
	assert.Equal(t, "2016-05-03", opts.LastDay)
}

func TestDashboardUsecaseExportDashboard(t *testing.T) {
	uc := NewDashboardUsecase(testLogger(), testBaseTable(), nil)

	data, err := uc.ExportDashboard(context.Background(), &dto.DashboardFilterRequest{AgeGroup: "20-35"})
	require.NoError(t, err)

	// XLSX files are zip archives
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte("PK"), data[:2])
}
