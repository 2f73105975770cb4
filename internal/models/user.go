package models

type User struct {
	BaseModel

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Disabled     bool   `gorm:"default:false" json:"disabled"`
}
