package colors

// Default returns the default color scheme (trello blue)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#0079BF",

		// Background
		Background:     "#1C1C1C",
		ListBackground: "#262626",

		// Semantic
		Create: "#61BD4F",
		Edit:   "#5F87D7",

		// UI elements
		ListBorder:     "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#00AFFF",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#00AFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF5F5F",
		ErrorBg: "#5F0000",

		// Status bar
		StatusBarBg:   "#0079BF", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
