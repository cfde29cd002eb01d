package models

// Author mirrors an account from the external identity provider. Only the
// fields needed to attribute and search articles are kept locally; credentials
// and sessions never touch this service.
type Author struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	AccountID uint `json:"account_id" gorm:"uniqueIndex"`

	Articles []Article `json:"articles"`
}
