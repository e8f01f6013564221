package model

import (
	"errors"
	"testing"
)

func fixedPicker(idx int) Picker {
	return func(int) int { return idx }
}

func TestNewViewState(t *testing.T) {
	state := NewViewState()

	if state.ColumnCount != 3 {
		t.Errorf("Expected initial column count 3, got %d", state.ColumnCount)
	}
	if state.BackgroundColor != ColorPurple {
		t.Errorf("Expected initial background purple, got %v", state.BackgroundColor)
	}
	if err := state.Validate(); err != nil {
		t.Errorf("Initial state should be valid, got %v", err)
	}
}

func TestNextColumnCount(t *testing.T) {
	tests := []struct {
		current  int
		expected int
	}{
		{1, 2},
		{2, 3},
		{3, 1},
	}

	for _, test := range tests {
		result := NextColumnCount(test.current)
		if result != test.expected {
			t.Errorf("NextColumnCount(%d) = %d, expected %d", test.current, result, test.expected)
		}
	}
}

func TestViewState_AdvanceCycle(t *testing.T) {
	state := NewViewState()
	expected := []int{1, 2, 3, 1, 2, 3}

	for i, want := range expected {
		prev := state.ColumnCount
		state.Advance(DefaultPicker)
		if state.ColumnCount != want {
			t.Errorf("Tap %d: expected column count %d, got %d", i+1, want, state.ColumnCount)
		}
		if state.ColumnCount != prev%3+1 {
			t.Errorf("Tap %d: column count %d does not follow %d", i+1, state.ColumnCount, prev)
		}
		if !InPalette(state.BackgroundColor) {
			t.Errorf("Tap %d: background %v not in palette", i+1, state.BackgroundColor)
		}
	}
}

func TestViewState_AdvancePicksPaletteIndex(t *testing.T) {
	colors := Palette()

	for i, c := range colors {
		state := NewViewState()
		state.Advance(fixedPicker(i))
		if state.BackgroundColor != c {
			t.Errorf("Pick %d: expected %v, got %v", i, c, state.BackgroundColor)
		}
	}
}

func TestViewState_AdvanceAllowsRepeat(t *testing.T) {
	// purple is the last palette entry and also the initial color
	state := NewViewState()
	state.Advance(fixedPicker(len(Palette()) - 1))

	if state.BackgroundColor != DefaultBackground {
		t.Errorf("Expected repeated purple background, got %v", state.BackgroundColor)
	}
}

func TestViewState_AdvanceOutOfRangePick(t *testing.T) {
	for _, idx := range []int{-1, 6, 13} {
		state := NewViewState()
		state.Advance(fixedPicker(idx))
		if err := state.Validate(); err != nil {
			t.Errorf("Pick %d: expected valid state, got %v", idx, err)
		}
	}
}

func TestViewState_AdvanceNilPicker(t *testing.T) {
	state := NewViewState()
	state.Advance(nil)

	if state.ColumnCount != 1 {
		t.Errorf("Expected column count 1, got %d", state.ColumnCount)
	}
	if !InPalette(state.BackgroundColor) {
		t.Errorf("Background %v not in palette", state.BackgroundColor)
	}
}

func TestViewState_Validate(t *testing.T) {
	tests := []struct {
		state ViewState
		err   error
	}{
		{ViewState{ColumnCount: 1, BackgroundColor: ColorRed}, nil},
		{ViewState{ColumnCount: 0, BackgroundColor: ColorRed}, ErrInvalidColumnCount},
		{ViewState{ColumnCount: 4, BackgroundColor: ColorRed}, ErrInvalidColumnCount},
		{ViewState{ColumnCount: 2, BackgroundColor: ColorOrange}, ErrInvalidBackground},
		{ViewState{ColumnCount: 2}, ErrInvalidBackground},
	}

	for _, test := range tests {
		err := test.state.Validate()
		if test.err == nil && err != nil {
			t.Errorf("Validate(%+v) = %v, expected nil", test.state, err)
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("Validate(%+v) = %v, expected %v", test.state, err, test.err)
		}
	}
}

func TestPalette_ReturnsCopy(t *testing.T) {
	colors := Palette()
	if len(colors) != 6 {
		t.Fatalf("Expected 6 palette colors, got %d", len(colors))
	}

	colors[0] = ColorOrange
	if Palette()[0] != ColorRed {
		t.Error("Modifying the returned palette should not affect the original")
	}
}
