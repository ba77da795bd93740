package state

import "testing"

func TestViewportSize(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{72, 2},
		{142, 4},
	}

	for _, tt := range tests {
		s := NewUIState()
		s.SetWidth(tt.width)
		if got := s.ViewportSize(); got != tt.want {
			t.Errorf("width %d: ViewportSize() = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestEnsureSelectionVisible(t *testing.T) {
	s := NewUIState()
	s.SetWidth(72) // two lists

	s.EnsureSelectionVisible(3)
	if s.ViewportOffset() != 2 {
		t.Errorf("after scrolling right, offset = %d, want 2", s.ViewportOffset())
	}

	s.EnsureSelectionVisible(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("after scrolling left, offset = %d, want 0", s.ViewportOffset())
	}
}

func TestClampSelectedCard(t *testing.T) {
	s := NewUIState()
	s.SetSelectedCard(5)

	s.ClampSelectedCard(3)
	if s.SelectedCard() != 2 {
		t.Errorf("SelectedCard() = %d, want 2", s.SelectedCard())
	}

	s.ClampSelectedCard(0)
	if s.SelectedCard() != 0 {
		t.Errorf("SelectedCard() = %d, want 0", s.SelectedCard())
	}
}

func TestFormStateChanges(t *testing.T) {
	f := NewFormState()
	f.Start("l1", "c1", "name", "desc")

	if !f.IsEdit() {
		t.Error("expected an edit form")
	}
	if f.HasChanges() {
		t.Error("fresh form should have no changes")
	}

	f.Name = "name  "
	if f.HasChanges() {
		t.Error("trailing spaces should not count as a change")
	}

	f.Desc = "other"
	if !f.HasChanges() {
		t.Error("expected a change after editing the description")
	}

	f.Clear()
	if f.IsEdit() || f.ListID != "" {
		t.Error("Clear should reset the form")
	}
}

func TestNotificationState(t *testing.T) {
	n := NewNotificationState()
	if _, ok := n.Latest(); ok {
		t.Fatal("expected no notification")
	}

	n.Add(LevelInfo, "first")
	n.Add(LevelError, "second")

	latest, ok := n.Latest()
	if !ok || latest.Message != "second" || latest.Level != LevelError {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}

	n.Clear()
	if n.HasAny() {
		t.Error("expected Clear to remove notifications")
	}
}
