package colour

import (
	"math/rand/v2"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#FF0000"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000FF"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "mixed", rgb: RGB{R: 10, G: 171, B: 205}, want: "#0AABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "upper", hex: "#FA8072", want: RGB{R: 250, G: 128, B: 114}},
		{name: "lower", hex: "#fa8072", want: RGB{R: 250, G: 128, B: 114}},
		{name: "white", hex: "#FFFFFF", want: RGB{R: 255, G: 255, B: 255}},
		{name: "missing hash", hex: "FA8072", wantErr: true},
		{name: "short form", hex: "#FFF", wantErr: true},
		{name: "too long", hex: "#1234567", wantErr: true},
		{name: "bad digits", hex: "#GG0000", wantErr: true},
		{name: "sign", hex: "#+12345", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		c := Random(r)
		back, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%s) error = %v", c.Hex(), err)
		}
		if back != c {
			t.Fatalf("ParseHex(%s) = %+v, want %+v", c.Hex(), back, c)
		}
		if back.Hex() != c.Hex() {
			t.Fatalf("Hex() = %s, want %s", back.Hex(), c.Hex())
		}
	}
}

func TestFromTriple(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		want    RGB
		wantErr bool
	}{
		{name: "valid", in: []int{1, 2, 3}, want: RGB{R: 1, G: 2, B: 3}},
		{name: "bounds", in: []int{0, 255, 0}, want: RGB{R: 0, G: 255, B: 0}},
		{name: "too few", in: []int{1, 2}, wantErr: true},
		{name: "too many", in: []int{1, 2, 3, 4}, wantErr: true},
		{name: "negative", in: []int{-1, 0, 0}, wantErr: true},
		{name: "overflow", in: []int{0, 256, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTriple(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromTriple(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("FromTriple(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
