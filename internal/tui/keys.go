package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/termllo/internal/config"
)

// keyMap holds the help bindings built from the configured key mappings.
// Dispatch still switches on msg.String(); these only feed the help overlay.
type keyMap struct {
	PrevList  key.Binding
	NextList  key.Binding
	PrevCard  key.Binding
	NextCard  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Add       key.Binding
	Edit      key.Binding
	View      key.Binding
	Save      key.Binding
	Boards    key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}

	return keyMap{
		PrevList:  bind("previous list", km.PrevList, "left"),
		NextList:  bind("next list", km.NextList, "right"),
		PrevCard:  bind("previous card", km.PrevCard, "up"),
		NextCard:  bind("next card", km.NextCard, "down"),
		MoveLeft:  bind("move card left", km.MoveCardLeft),
		MoveRight: bind("move card right", km.MoveCardRight),
		MoveUp:    bind("move card up", km.MoveCardUp),
		MoveDown:  bind("move card down", km.MoveCardDown),
		Add:       bind("new card", km.AddCard),
		Edit:      bind("edit card", km.EditCard, "enter"),
		View:      bind("view card", km.ViewCard),
		Save:      bind("save form", km.SaveForm),
		Boards:    bind("switch board", km.SwitchBoard),
		Refresh:   bind("refresh board", km.RefreshBoard),
		Help:      bind("toggle help", km.ShowHelp),
		Quit:      bind("quit", km.Quit, "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevList, k.NextList, k.PrevCard, k.NextCard},
		{k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown},
		{k.Add, k.Edit, k.View, k.Save},
		{k.Boards, k.Refresh, k.Help, k.Quit},
	}
}
