package services

import "github.com/Spacespixel/ppsasset-new/models"

// ThemeService resolves the color scheme for a project page. Themes change
// with marketing campaigns, not with data, so they live in code rather than
// the database.
type ThemeService struct {
	themes map[string]models.ProjectTheme
}

func NewThemeService() *ThemeService {
	return &ThemeService{themes: map[string]models.ProjectTheme{
		"ricco-residence-hathairat": {
			ThemeName:       "magenta",
			PrimaryColor:    "#AF017F",
			SecondaryColor:  "#D91E6F",
			LightBackground: "#F8D9E9",
			CssClass:        "theme-magenta",
		},
		"ricco-residence-chatuchot": {
			ThemeName:       "red",
			PrimaryColor:    "#B71C1C",
			SecondaryColor:  "#D32F2F",
			LightBackground: "#FFEBEE",
			CssClass:        "theme-red",
		},
		"ricco-residence-prime-hathairat": {
			ThemeName:       "dark-red",
			PrimaryColor:    "#580709",
			SecondaryColor:  "#b9834c",
			LightBackground: "#E3F2FD",
			CssClass:        "theme-dark-red",
		},
		"ricco-residence-prime-chatuchot": {
			ThemeName:       "blue",
			PrimaryColor:    "#1976D2",
			SecondaryColor:  "#2196F3",
			LightBackground: "#E3F2FD",
			CssClass:        "theme-blue",
		},
		"ricco-town-phahonyothin-saimai53": {
			ThemeName:       "maroon",
			PrimaryColor:    "#8D1537",
			SecondaryColor:  "#AD1457",
			LightBackground: "#F8BBD9",
			CssClass:        "theme-maroon",
		},
		"ricco-town-wongwaen-lamlukka": {
			ThemeName:       "maroon",
			PrimaryColor:    "#8D1537",
			SecondaryColor:  "#AD1457",
			LightBackground: "#F8BBD9",
			CssClass:        "theme-maroon",
		},
	}}
}

// GetProjectTheme returns the theme for a slug, or the default theme when
// the slug has no entry.
func (s *ThemeService) GetProjectTheme(slug string) models.ProjectTheme {
	if theme, ok := s.themes[slug]; ok {
		return theme
	}
	return s.GetDefaultTheme()
}

// GetDefaultTheme returns the corporate green theme.
func (s *ThemeService) GetDefaultTheme() models.ProjectTheme {
	return models.ProjectTheme{
		ThemeName:       "default",
		PrimaryColor:    "#365523",
		SecondaryColor:  "#4A7030",
		LightBackground: "#F8FAF7",
		CssClass:        "theme-default",
	}
}
