package pipeline

import (
	"errors"
	"testing"
)

func TestRect(t *testing.T) {
	r := Rect{Left: 2, Top: 3, Right: 5, Bottom: 7}
	if r.Width() != 4 {
		t.Errorf("expected width 4, got %d", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("expected height 5, got %d", r.Height())
	}
	if r.Size() != (Dimension{Width: 4, Height: 5}) {
		t.Errorf("unexpected size %+v", r.Size())
	}
}

func TestFullFrame(t *testing.T) {
	r := FullFrame(100, 60)
	if r != (Rect{Left: 0, Top: 0, Right: 99, Bottom: 59}) {
		t.Errorf("unexpected full frame rect %+v", r)
	}
	if r.Width() != 100 || r.Height() != 60 {
		t.Errorf("expected 100x60, got %dx%d", r.Width(), r.Height())
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input   string
		want    Axis
		wantErr bool
	}{
		{"horizontal", AxisHorizontal, false},
		{"vertical", AxisVertical, false},
		{"diagonal", AxisHorizontal, true},
		{"", AxisHorizontal, true},
		{"Horizontal", AxisHorizontal, true},
	}

	for _, tt := range tests {
		got, err := ParseAxis(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseAxis(%q): expected ErrInvalidArgument, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAxis(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAxis(%q): expected %v, got %v", tt.input, got, tt.want)
		}
	}
}

func TestMatteKind(t *testing.T) {
	if MatteLetterbox.String() != "letterbox" {
		t.Errorf("unexpected string %q", MatteLetterbox.String())
	}
	if !MatteBoth.Letterboxed() || !MatteBoth.Pillarboxed() {
		t.Error("MatteBoth must report both letterboxing and pillarboxing")
	}
	if MatteLetterbox.Pillarboxed() {
		t.Error("MatteLetterbox must not report pillarboxing")
	}
	if MatteNone.Letterboxed() || MatteNone.Pillarboxed() {
		t.Error("MatteNone must report neither")
	}
}
