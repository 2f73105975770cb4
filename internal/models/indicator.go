package models

type Indicator struct {
	BaseModel

	VP              string    `gorm:"index" json:"vp"`
	Area            string    `gorm:"index" json:"area"`
	Name            string    `gorm:"index;not null" json:"name"`
	Type            string    `json:"type"`
	StartDate       *DateOnly `gorm:"type:date" json:"start_date"`
	EndDate         *DateOnly `gorm:"type:date" json:"end_date"`
	Responsible     string    `json:"responsible"`
	LoadResponsible string    `json:"load_responsible"`

	// Relationships
	Milestones []Milestone `gorm:"foreignKey:IndicatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"milestones"`
}

// IndicatorUpdate carries a partial update. Nil fields are left untouched.
type IndicatorUpdate struct {
	VP              *string   `json:"vp"`
	Area            *string   `json:"area"`
	Name            *string   `json:"name"`
	Type            *string   `json:"type"`
	StartDate       *DateOnly `json:"start_date"`
	EndDate         *DateOnly `json:"end_date"`
	Responsible     *string   `json:"responsible"`
	LoadResponsible *string   `json:"load_responsible"`
}

// ApplyUpdate merges the supplied fields into the indicator. The field list
// is enumerated here so a schema change that misses the merge fails review,
// not production.
func (i *Indicator) ApplyUpdate(u IndicatorUpdate) {
	if u.VP != nil {
		i.VP = *u.VP
	}
	if u.Area != nil {
		i.Area = *u.Area
	}
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.Type != nil {
		i.Type = *u.Type
	}
	if u.StartDate != nil {
		i.StartDate = u.StartDate
	}
	if u.EndDate != nil {
		i.EndDate = u.EndDate
	}
	if u.Responsible != nil {
		i.Responsible = *u.Responsible
	}
	if u.LoadResponsible != nil {
		i.LoadResponsible = *u.LoadResponsible
	}
}
