package models

// ProjectTheme holds the per-project color scheme applied to the detail
// page. Themes are static configuration loaded once at startup.
type ProjectTheme struct {
	ThemeName       string `json:"theme_name"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	LightBackground string `json:"light_background"`
	CssClass        string `json:"css_class"`
}
