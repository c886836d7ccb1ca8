package model

// AppConfig holds user preferences and default settings applied to new
// pack runs when no explicit flags are given.
type AppConfig struct {
	// Default packer settings
	DefaultAtlasSize int     `json:"default_atlas_size"`
	DefaultExpand    int     `json:"default_expand"`
	DefaultBorder    int     `json:"default_border"`
	DefaultAreaSlack float64 `json:"default_area_slack"`

	// Application preferences
	Verbose       bool     `json:"verbose"`
	RecentOutputs []string `json:"recent_outputs"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultAtlasSize: defaults.AtlasSize,
		DefaultExpand:    defaults.Expand,
		DefaultBorder:    defaults.Border,
		DefaultAreaSlack: defaults.AreaSlack,
		Verbose:          false,
		RecentOutputs:    []string{},
	}
}

// ApplyToSettings copies the saved defaults into a PackSettings struct.
// Used when starting a run so it inherits the user's preferences.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.AtlasSize = c.DefaultAtlasSize
	s.Expand = c.DefaultExpand
	s.Border = c.DefaultBorder
	s.AreaSlack = c.DefaultAreaSlack
}

// RememberOutput prepends path to the recent outputs list, removing
// duplicates and capping the list at 10 entries.
func (c *AppConfig) RememberOutput(path string) {
	recent := []string{path}
	for _, p := range c.RecentOutputs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentOutputs = recent
}
