package store

import (
	"math"

	"github.com/metrika-dev/metrika/internal/models"
)

type Statistics struct {
	TotalIndicators int64   `json:"totalIndicators"`
	TotalMilestones int64   `json:"totalMilestones"`
	Completed       int64   `json:"completedMilestones"`
	InProgress      int64   `json:"inProgressMilestones"`
	NotStarted      int64   `json:"notStartedMilestones"`
	AverageProgress float64 `json:"averageProgress"`
}

// Statistics aggregates over the full milestone table. Read-only.
func (s *IndicatorStore) Statistics() (*Statistics, error) {
	var stats Statistics

	if err := s.db.Model(&models.Indicator{}).Count(&stats.TotalIndicators).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Milestone{}).Count(&stats.TotalMilestones).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		label  string
		target *int64
	}{
		{models.StatusCompleted, &stats.Completed},
		{models.StatusInProgress, &stats.InProgress},
		{models.StatusNotStarted, &stats.NotStarted},
	}

	for _, sc := range statusCounts {
		err := s.db.Model(&models.Milestone{}).
			Where("status = ?", sc.label).
			Count(sc.target).Error
		if err != nil {
			return nil, err
		}
	}

	// AVG over an empty table is NULL; COALESCE keeps the scan a plain float.
	var average float64
	err := s.db.Model(&models.Milestone{}).
		Select("COALESCE(AVG(progress), 0)").
		Scan(&average).Error
	if err != nil {
		return nil, err
	}

	stats.AverageProgress = Round2(average)
	return &stats, nil
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
