package importer

import (
	"fmt"
	"os"

	"github.com/metrika-dev/metrika/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Importer turns spreadsheet rows into persisted indicators and milestones.
// Not safe for concurrent first-time invocation: the emptiness check and
// the writes share one transaction but no lock, so two simultaneous runs
// against an empty store can both pass the check.
type Importer struct {
	db         *gorm.DB
	logger     *zap.Logger
	correctors []Corrector
}

func New(db *gorm.DB, logger *zap.Logger, correctors ...Corrector) *Importer {
	if len(correctors) == 0 {
		correctors = []Corrector{NewSentinelDateCorrector()}
	}

	return &Importer{
		db:         db,
		logger:     logger,
		correctors: correctors,
	}
}

type Result struct {
	Loaded     bool   `json:"data_loaded"`
	Indicators int    `json:"indicators"`
	Milestones int    `json:"milestones"`
	Message    string `json:"message"`
}

// ImportFile runs the import for one workbook. A missing file is not an
// error: the result reports that nothing was loaded. Everything else that
// goes wrong aborts the whole batch with a full rollback.
func (imp *Importer) ImportFile(path string, clearExisting bool) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		imp.logger.Warn("import file not found, skipping import", zap.String("path", path))
		return &Result{Message: "input file not found, nothing imported"}, nil
	}

	rows, err := ReadWorkbook(path)
	if err != nil {
		return nil, err
	}

	imp.logger.Info("read workbook", zap.String("path", path), zap.Int("rows", len(rows)))

	return imp.Run(rows, clearExisting)
}

// Run imports an in-memory row set: correct, parse, group, derive, persist.
// One transaction for the whole batch.
func (imp *Importer) Run(rows []Row, clearExisting bool) (*Result, error) {
	corrected := 0
	for i := range rows {
		for _, corrector := range imp.correctors {
			if corrector.Correct(&rows[i]) {
				corrected++
			}
		}
		rows[i].parseDates()
	}

	if corrected > 0 {
		imp.logger.Info("corrected sentinel dates", zap.Int("cells", corrected))
	}

	result := &Result{}

	err := imp.db.Transaction(func(tx *gorm.DB) error {
		if clearExisting {
			// Milestones first because of the FK.
			if err := tx.Where("1 = 1").Delete(&models.Milestone{}).Error; err != nil {
				return fmt.Errorf("clear milestones: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&models.Indicator{}).Error; err != nil {
				return fmt.Errorf("clear indicators: %w", err)
			}
		} else {
			var existing int64
			if err := tx.Model(&models.Indicator{}).Count(&existing).Error; err != nil {
				return fmt.Errorf("count indicators: %w", err)
			}
			if existing > 0 {
				result.Message = "data already loaded"
				return nil
			}
		}

		for _, group := range groupRows(rows) {
			indicator := buildIndicator(group)

			if err := tx.Create(&indicator).Error; err != nil {
				return fmt.Errorf("create indicator %q: %w", group.Name, err)
			}

			result.Indicators++
			result.Milestones += len(indicator.Milestones)
		}

		if result.Indicators > 0 {
			result.Loaded = true
			result.Message = "import complete"
		} else {
			result.Message = "no rows to import"
		}
		return nil
	})

	if err != nil {
		imp.logger.Error("import failed, batch rolled back", zap.Error(err))
		return nil, err
	}

	imp.logger.Info("import finished",
		zap.Bool("loaded", result.Loaded),
		zap.Int("indicators", result.Indicators),
		zap.Int("milestones", result.Milestones),
	)
	return result, nil
}

// buildIndicator maps one group to an indicator with nested milestones.
// Indicator fields come from the group's first row plus the derived dates;
// a milestone missing its own date inherits the group's aggregate date.
func buildIndicator(group Group) models.Indicator {
	first := group.Rows[0]

	indicator := models.Indicator{
		VP:              first.VP,
		Area:            first.Area,
		Name:            group.Name,
		Type:            first.IndicatorType,
		StartDate:       group.Start,
		EndDate:         group.End,
		Responsible:     first.Responsible,
		LoadResponsible: first.LoadResponsible,
	}

	for _, row := range group.Rows {
		start := row.Start
		if start == nil {
			start = group.Start
		}
		end := row.End
		if end == nil {
			end = group.End
		}

		indicator.Milestones = append(indicator.Milestones, models.Milestone{
			Name:        row.Milestone,
			StartDate:   start,
			EndDate:     end,
			Progress:    row.Progress,
			Status:      row.Status,
			Responsible: row.Responsible,
		})
	}

	return indicator
}

// Default locations probed when no explicit path is configured, relative
// to the working directory.
var candidatePaths = []string{
	"indicators.xlsx",
	"data/indicators.xlsx",
}

// AutoImport runs the idempotent import against the configured path, or
// failing that, the default candidate locations. Never clears existing
// data.
func (imp *Importer) AutoImport(configuredPath string) (*Result, error) {
	paths := candidatePaths
	if configuredPath != "" {
		paths = []string{configuredPath}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return imp.ImportFile(path, false)
		}
	}

	imp.logger.Warn("no import file found", zap.Strings("paths", paths))
	return &Result{Message: "input file not found, nothing imported"}, nil
}
