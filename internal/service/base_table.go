package service

import (
	"context"
	"fmt"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// BuildBaseTable runs loader -> cleaner -> feature deriver once and returns the
// immutable base table. Any error is fatal for startup.
func BuildBaseTable(ctx context.Context, repo repository.AppointmentRepository, log *logrus.Logger) (*entity.Table, error) {
	raw, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	cleaned, dropped, err := NewCleaner().Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("clean appointments: %w", err)
	}
	if dropped > 0 {
		log.Infof("Dropped %d appointments with age outside [%d, %d]", dropped, entity.MinAge, entity.MaxAge)
	}

	base, err := NewFeatureDeriver().Derive(cleaned)
	if err != nil {
		return nil, fmt.Errorf("derive features: %w", err)
	}

	first, last := base.AppointmentRange()
	log.WithFields(logrus.Fields{
		"rows":      base.Len(),
		"first_day": first.Format("2006-01-02"),
		"last_day":  last.Format("2006-01-02"),
	}).Info("Base table ready")

	return base, nil
}
