package layout

import (
	"math"
	"testing"

	"github.com/grindlemire/go-layoutmetrics/internal/graphics"
)

func TestHash_EqualValuesHashEqual(t *testing.T) {
	type tc struct {
		a, b LayoutMetrics
	}

	tests := map[string]tc{
		"full metrics": {a: fullMetrics(), b: fullMetrics()},
		"empty":        {a: Empty(), b: Empty()},
		"zero value":   {a: LayoutMetrics{}, b: LayoutMetrics{}},
		"literal vs constructor": {
			a: New(graphics.NewRect(1, 2, 3, 4)),
			b: LayoutMetrics{Frame: graphics.NewRect(1, 2, 3, 4), PointScaleFactor: 1},
		},
		"signed zero": {
			a: New(graphics.NewRect(0, 0, 10, 10)),
			b: New(graphics.NewRect(math.Copysign(0, -1), 0, 10, 10)),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if !tt.a.Equal(tt.b) {
				t.Fatalf("values are not equal: %+v vs %+v", tt.a, tt.b)
			}
			if tt.a.Hash() != tt.b.Hash() {
				t.Errorf("Hash() = %#x and %#x for equal values", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestHash_Deterministic(t *testing.T) {
	m := fullMetrics()
	first := m.Hash()
	for i := 0; i < 10; i++ {
		if got := m.Hash(); got != first {
			t.Fatalf("Hash() = %#x on call %d, want %#x", got, i, first)
		}
	}
}

func TestHash_EveryFieldParticipates(t *testing.T) {
	base := fullMetrics()

	tests := map[string]func(m *LayoutMetrics){
		"frame":            func(m *LayoutMetrics) { m.Frame.Origin.Y = 99 },
		"content insets":   func(m *LayoutMetrics) { m.ContentInsets.Right = 99 },
		"border width":     func(m *LayoutMetrics) { m.BorderWidth.Left = 99 },
		"display type":     func(m *LayoutMetrics) { m.DisplayType = DisplayFlex },
		"layout direction": func(m *LayoutMetrics) { m.LayoutDirection = DirectionUndefined },
		"scale factor":     func(m *LayoutMetrics) { m.PointScaleFactor = 99 },
		"overflow inset":   func(m *LayoutMetrics) { m.OverflowInset.Bottom = 99 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			other := base
			mutate(&other)
			if other.Hash() == base.Hash() {
				t.Errorf("Hash() unchanged after changing %s", name)
			}
		})
	}
}

func TestHash_FieldOrderMatters(t *testing.T) {
	a := New(graphics.NewRect(0, 0, 1, 1), WithContentInsets(graphics.EdgeInsetsAll(2)))
	b := New(graphics.NewRect(0, 0, 1, 1), WithBorderWidth(graphics.EdgeInsetsAll(2)))

	if a.Hash() == b.Hash() {
		t.Error("swapping the same insets between fields produced the same hash")
	}
}

func TestHash_UsableAsMapKeyCompanion(t *testing.T) {
	seen := map[uint64]LayoutMetrics{}
	for _, m := range []LayoutMetrics{Empty(), fullMetrics(), New(graphics.NewRect(0, 0, 5, 5))} {
		seen[m.Hash()] = m
	}
	if got := seen[fullMetrics().Hash()]; !got.Equal(fullMetrics()) {
		t.Errorf("lookup by Hash() returned %+v", got)
	}
}
