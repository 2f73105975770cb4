package models

// Conventional status labels. The column is free text; these are the values
// the dashboard aggregates on.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusNotStarted = "Not Started"
)

type Milestone struct {
	BaseModel

	IndicatorID uint      `gorm:"not null;index" json:"indicator_id"`
	Name        string    `gorm:"not null" json:"name"`
	StartDate   *DateOnly `gorm:"type:date" json:"start_date"`
	EndDate     *DateOnly `gorm:"type:date" json:"end_date"`
	Progress    float64   `gorm:"default:0" json:"progress"`
	Status      string    `json:"status"`
	Responsible string    `json:"responsible"`

	// Relationships
	Indicator Indicator `gorm:"foreignKey:IndicatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
