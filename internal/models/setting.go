package models

// Setting is a project-level key/value setting (support contacts etc.)
// read by the storefront frontend.
type Setting struct {
	BaseModel

	SettingKey   string `json:"setting_key" gorm:"uniqueIndex;not null;size:100"`
	SettingValue string `json:"setting_value" gorm:"type:text"`
}
