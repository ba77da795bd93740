package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	EditCard      string `yaml:"edit_card"`
	ViewCard      string `yaml:"view_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevList string `yaml:"prev_list"`
	NextList string `yaml:"next_list"`
	PrevCard string `yaml:"prev_card"`
	NextCard string `yaml:"next_card"`

	// Boards
	SwitchBoard  string `yaml:"switch_board"`
	RefreshBoard string `yaml:"refresh_board"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:       "n",
		EditCard:      "e",
		ViewCard:      "space",
		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",
		SaveForm:      "ctrl+s",

		// Navigation
		PrevList: "h",
		NextList: "l",
		PrevCard: "k",
		NextCard: "j",

		// Boards
		SwitchBoard:  "b",
		RefreshBoard: "r",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddCard, defaults.AddCard)
	fill(&k.EditCard, defaults.EditCard)
	fill(&k.ViewCard, defaults.ViewCard)
	fill(&k.MoveCardLeft, defaults.MoveCardLeft)
	fill(&k.MoveCardRight, defaults.MoveCardRight)
	fill(&k.MoveCardUp, defaults.MoveCardUp)
	fill(&k.MoveCardDown, defaults.MoveCardDown)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevList, defaults.PrevList)
	fill(&k.NextList, defaults.NextList)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.SwitchBoard, defaults.SwitchBoard)
	fill(&k.RefreshBoard, defaults.RefreshBoard)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
