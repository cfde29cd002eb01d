package models

type Category struct {
	BaseModel

	Alias    string `json:"alias" gorm:"uniqueIndex" validate:"lowercase"`
	Name     string `json:"name" gorm:"uniqueIndex"`
	IsActive bool   `json:"is_active"`

	Articles []Article `json:"articles"`
}
