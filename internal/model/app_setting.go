package model

// AppSetting is a key/value row used for login-page branding
// (login_background_type, login_background_url, logo_url).
type AppSetting struct {
	BaseModel
	Key   string `gorm:"size:100;unique;not null" json:"key"`
	Value string `gorm:"size:1000" json:"value"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}

// Branding keys readable without authentication.
const (
	SettingLoginBackgroundType = "login_background_type"
	SettingLoginBackgroundURL  = "login_background_url"
	SettingLogoURL             = "logo_url"
)
