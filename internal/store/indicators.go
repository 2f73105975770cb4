package store

import (
	"errors"

	"github.com/metrika-dev/metrika/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("indicator not found")

const DefaultListLimit = 100

// IndicatorStore owns all persistence for indicators and their milestones.
type IndicatorStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewIndicatorStore(db *gorm.DB, logger *zap.Logger) *IndicatorStore {
	return &IndicatorStore{db: db, logger: logger}
}

func (s *IndicatorStore) Get(id uint) (*models.Indicator, error) {
	var indicator models.Indicator

	err := s.db.Preload("Milestones").First(&indicator, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &indicator, nil
}

func (s *IndicatorStore) List(skip, limit int) ([]models.Indicator, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	var indicators []models.Indicator

	err := s.db.Preload("Milestones").
		Offset(skip).
		Limit(limit).
		Order("id").
		Find(&indicators).Error
	if err != nil {
		return nil, err
	}

	return indicators, nil
}

func (s *IndicatorStore) ListByArea(area string) ([]models.Indicator, error) {
	var indicators []models.Indicator

	err := s.db.Preload("Milestones").
		Where("area = ?", area).
		Order("id").
		Find(&indicators).Error
	if err != nil {
		return nil, err
	}

	return indicators, nil
}

// Create persists an indicator together with its nested milestones in one
// transaction.
func (s *IndicatorStore) Create(indicator *models.Indicator) error {
	if err := s.db.Create(indicator).Error; err != nil {
		return err
	}

	s.logger.Info("created indicator",
		zap.Uint("id", indicator.ID),
		zap.String("name", indicator.Name),
		zap.Int("milestones", len(indicator.Milestones)),
	)
	return nil
}

// Update applies a partial update and returns the refreshed record.
func (s *IndicatorStore) Update(id uint, update models.IndicatorUpdate) (*models.Indicator, error) {
	indicator, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	indicator.ApplyUpdate(update)

	// Omit the association so preloaded milestones are not re-written.
	if err := s.db.Omit("Milestones").Save(indicator).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes an indicator and, through the FK constraint, all of its
// milestones. The deleted record is returned for the response body.
func (s *IndicatorStore) Delete(id uint) (*models.Indicator, error) {
	indicator, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Indicator{}, id).Error; err != nil {
		return nil, err
	}

	s.logger.Info("deleted indicator",
		zap.Uint("id", id),
		zap.Int("milestones", len(indicator.Milestones)),
	)
	return indicator, nil
}
