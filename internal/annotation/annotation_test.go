package annotation

import (
	"errors"
	"image"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Annotation
		wantErr bool
	}{
		{
			name: "typical",
			line: "0 0.5 0.5 0.2 0.4",
			want: Annotation{ClassID: 0, XCenter: 0.5, YCenter: 0.5, Width: 0.2, Height: 0.4},
		},
		{
			name: "tabs and padding",
			line: "  12\t0.1  0.9\t0.05 0.3 ",
			want: Annotation{ClassID: 12, XCenter: 0.1, YCenter: 0.9, Width: 0.05, Height: 0.3},
		},
		{
			name: "scientific notation",
			line: "3 5e-1 0.25 1e-2 1",
			want: Annotation{ClassID: 3, XCenter: 0.5, YCenter: 0.25, Width: 0.01, Height: 1},
		},
		{name: "too few fields", line: "0 0.5 0.5 0.2", wantErr: true},
		{name: "too many fields", line: "0 0.5 0.5 0.2 0.4 0.9", wantErr: true},
		{name: "float class", line: "1.0 0.5 0.5 0.2 0.4", wantErr: true},
		{name: "negative class", line: "-1 0.5 0.5 0.2 0.4", wantErr: true},
		{name: "text coordinate", line: "0 0.5 abc 0.2 0.4", wantErr: true},
		{name: "empty", line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedAnnotation) {
					t.Fatalf("ParseLine(%q) error = %v, want ErrMalformedAnnotation", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	in := "0 0.5 0.5 0.2 0.4\n\n1 0.25 0.25 0.1 0.1\r\n   \n"
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Parse() returned %d annotations, want 2", len(got))
	}
	if got[1].ClassID != 1 {
		t.Errorf("Parse()[1].ClassID = %d, want 1", got[1].ClassID)
	}
}

func TestParseReportsLine(t *testing.T) {
	in := "0 0.5 0.5 0.2 0.4\n0 0.5 0.5\n"
	_, err := Parse(strings.NewReader(in))
	if !errors.Is(err, ErrMalformedAnnotation) {
		t.Fatalf("Parse() error = %v, want ErrMalformedAnnotation", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Parse() error = %q, want line number", err)
	}
}

func TestCorners(t *testing.T) {
	tests := []struct {
		name          string
		a             Annotation
		width, height int
		want          [4]int
	}{
		{
			name:  "centred box",
			a:     Annotation{XCenter: 0.5, YCenter: 0.5, Width: 0.2, Height: 0.4},
			width: 100, height: 100,
			want: [4]int{40, 30, 60, 70},
		},
		{
			name:  "truncates instead of rounding",
			a:     Annotation{XCenter: 0.5, YCenter: 0.5, Width: 0.33, Height: 0.33},
			width: 10, height: 10,
			// 5 - 1.65 = 3.35 and 5 + 1.65 = 6.65
			want: [4]int{3, 3, 6, 6},
		},
		{
			name:  "non-square image",
			a:     Annotation{XCenter: 0.25, YCenter: 0.75, Width: 0.5, Height: 0.5},
			width: 200, height: 80,
			want: [4]int{0, 40, 100, 80},
		},
		{
			name:  "truncates toward zero past the left edge",
			a:     Annotation{XCenter: 0.01, YCenter: 0.5, Width: 0.05, Height: 0.1},
			width: 100, height: 100,
			// 1 - 2.5 = -1.5 truncates to -1, not -2
			want: [4]int{-1, 45, 3, 55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := tt.a.Corners(tt.width, tt.height)
			if got := [4]int{x0, y0, x1, y1}; got != tt.want {
				t.Errorf("Corners() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCornersFromParsedLine(t *testing.T) {
	a, err := ParseLine("0 0.5 0.5 0.2 0.4")
	if err != nil {
		t.Fatal(err)
	}
	x0, y0, x1, y1 := a.Corners(100, 100)
	if x0 != 40 || y0 != 30 || x1 != 60 || y1 != 70 {
		t.Errorf("Corners() = (%d,%d)-(%d,%d), want (40,30)-(60,70)", x0, y0, x1, y1)
	}
	if got, want := a.Box(100, 100), image.Rect(40, 30, 61, 71); got != want {
		t.Errorf("Box() = %v, want %v", got, want)
	}
}
