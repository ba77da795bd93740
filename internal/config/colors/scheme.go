package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background
	Background     string `yaml:"background"`
	ListBackground string `yaml:"list_background"`

	// Semantic colors
	Create string `yaml:"create"` // new card form
	Edit   string `yaml:"edit"`   // edit card form

	// UI element colors
	ListBorder     string `yaml:"list_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// MergeFrom copies every non-empty value of other into c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&c.Preset, other.Preset)
	pick(&c.Accent, other.Accent)
	pick(&c.Background, other.Background)
	pick(&c.ListBackground, other.ListBackground)
	pick(&c.Create, other.Create)
	pick(&c.Edit, other.Edit)
	pick(&c.ListBorder, other.ListBorder)
	pick(&c.CardBorder, other.CardBorder)
	pick(&c.CardBackground, other.CardBackground)
	pick(&c.SelectedBorder, other.SelectedBorder)
	pick(&c.SelectedBg, other.SelectedBg)
	pick(&c.Title, other.Title)
	pick(&c.Subtle, other.Subtle)
	pick(&c.Normal, other.Normal)
	pick(&c.InfoFg, other.InfoFg)
	pick(&c.InfoBg, other.InfoBg)
	pick(&c.ErrorFg, other.ErrorFg)
	pick(&c.ErrorBg, other.ErrorBg)
	pick(&c.StatusBarBg, other.StatusBarBg)
	pick(&c.StatusBarText, other.StatusBarText)
}

// ApplyDefaults fills in missing color values using the preset as base.
// Custom values set in the config win over the preset.
func (c *ColorScheme) ApplyDefaults() {
	custom := *c
	*c = *GetPreset(c.Preset)
	c.MergeFrom(custom)
}
