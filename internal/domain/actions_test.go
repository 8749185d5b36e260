package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"ZAP", ActionZap},
		{"zap", ActionZap},
		{"Look", ActionLook},
		{"TARGET", ActionTarget},
		{"VALIDATE", ActionValidate},
		{"status", ActionStatus},
		{"MOVE", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionZap, "ZAP"},
		{ActionLook, "LOOK"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input  string
		want   Direction
		dx, dy int
	}{
		{"N", DirN, 0, -1},
		{"ne", DirNE, 1, -1},
		{"E", DirE, 1, 0},
		{"se", DirSE, 1, 1},
		{"S", DirS, 0, 1},
		{"SW", DirSW, -1, 1},
		{"w", DirW, -1, 0},
		{"NW", DirNW, -1, -1},
		{" E", DirE, 1, 0},
		{"sw\t", DirSW, -1, 1},
		{"up", DirNone, 0, 0},
		{"", DirNone, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseDirection(tt.input)
			if got != tt.want {
				t.Fatalf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
			dx, dy := got.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", got, dx, dy, tt.dx, tt.dy)
			}
		})
	}
}
