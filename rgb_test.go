package colorkit

import (
	"image/color"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestRGB_Clamp(t *testing.T) {
	c := NewRGB[uint8](5, 120, 250)
	got := c.Clamp(10, 200)
	want := NewRGB[uint8](10, 120, 200)
	if got != want {
		t.Errorf("Clamp(10, 200) = %v, want %v", got, want)
	}
	if c != NewRGB[uint8](5, 120, 250) {
		t.Errorf("Clamp modified its receiver: %v", c)
	}
}

// TestRGB_ClampContainment checks every channel lands inside [lo, hi].
func TestRGB_ClampContainment(t *testing.T) {
	colors := []RGB[uint8]{
		{0, 0, 0}, {255, 255, 255}, {0x99, 0, 0}, {12, 200, 77}, {128, 64, 32},
	}
	for _, c := range colors {
		for lo := 0; lo <= 255; lo += 17 {
			for hi := lo; hi <= 255; hi += 34 {
				got := c.Clamp(uint8(lo), uint8(hi))
				for i, v := range got.Array() {
					if int(v) < lo || int(v) > hi {
						t.Fatalf("%v.Clamp(%d, %d) channel %d = %d, out of range", c, lo, hi, i, v)
					}
				}
			}
		}
	}
}

func TestRGB_ClampEach(t *testing.T) {
	c := NewRGB(0.9, -0.1, 0.5)
	lo := NewRGB(0.0, 0.0, 0.6)
	hi := NewRGB(0.5, 1.0, 1.0)
	got := c.ClampEach(lo, hi)
	want := NewRGB(0.5, 0.0, 0.6)
	if got != want {
		t.Errorf("ClampEach = %v, want %v", got, want)
	}
}

func TestRGB_Inverse(t *testing.T) {
	tests := []struct {
		name string
		c    RGB[uint8]
		want RGB[uint8]
	}{
		{"black", RGB[uint8]{0, 0, 0}, RGB[uint8]{255, 255, 255}},
		{"red", RGB[uint8]{255, 0, 0}, RGB[uint8]{0, 255, 255}},
		{"mixed", RGB[uint8]{0x12, 0x80, 0xF0}, RGB[uint8]{0xED, 0x7F, 0x0F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Inverse()
			if got != tt.want {
				t.Errorf("Inverse() = %v, want %v", got, tt.want)
			}
			if back := got.Inverse(); back != tt.c {
				t.Errorf("Inverse().Inverse() = %v, want %v", back, tt.c)
			}
		})
	}
}

func TestRGB_InverseFloat(t *testing.T) {
	c := NewRGB(0.1, 0.7, 0.33)
	got := c.Inverse().Inverse()
	for i, v := range got.Array() {
		if !scalar.EqualWithinAbs(v, c.Array()[i], 1e-12) {
			t.Errorf("Inverse().Inverse() channel %d = %v, want %v", i, v, c.Array()[i])
		}
	}
	if inv := NewRGB[float32](0.25, 0, 1).Inverse(); inv != NewRGB[float32](0.75, 1, 0) {
		t.Errorf("Inverse() = %v, want {0.75 1 0}", inv)
	}
}

func TestRGB_Normalize(t *testing.T) {
	got := NewRGB(-0.5, 0.25, 3.0).Normalize()
	want := NewRGB(0.0, 0.25, 1.0)
	if got != want {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}

	ints := NewRGB[uint16](0, 0x1234, 0xFFFF)
	if got := ints.Normalize(); got != ints {
		t.Errorf("Normalize() on uint16 = %v, want %v", got, ints)
	}
}

func TestRGB_Array(t *testing.T) {
	got := NewRGB[uint8](1, 2, 3).Array()
	if got != [3]uint8{1, 2, 3} {
		t.Errorf("Array() = %v, want [1 2 3]", got)
	}
}

func TestConvertRGB(t *testing.T) {
	c := NewRGB[uint8](0xA0, 0xA0, 0xA0)
	if got := ConvertRGB[uint8](c); got != c {
		t.Errorf("ConvertRGB[uint8] = %v, want %v", got, c)
	}
	wide := ConvertRGB[uint16](c)
	if want := NewRGB[uint16](0xA0A0, 0xA0A0, 0xA0A0); wide != want {
		t.Errorf("ConvertRGB[uint16] = %v, want %v", wide, want)
	}
	if back := ConvertRGB[uint8](wide); back != c {
		t.Errorf("ConvertRGB[uint8](wide) = %v, want %v", back, c)
	}
}

// TestConvertRGBIdentity checks converting to the own representation for every
// 8-bit gray and a few float colors.
func TestConvertRGBIdentity(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := NewRGB(uint8(i), uint8(255-i), uint8(i/2))
		if got := ConvertRGB[uint8](c); got != c {
			t.Errorf("ConvertRGB[uint8](%v) = %v", c, got)
		}
	}
	f := NewRGB[float32](0.1, 1.5, -0.25)
	if got := ConvertRGB[float32](f); got != f {
		t.Errorf("ConvertRGB[float32](%v) = %v", f, got)
	}
}

func TestToRGB(t *testing.T) {
	c := NewRGB[uint8](0xA0, 0x10, 0xFF)
	if got, want := ToRGB[uint16](c), ConvertRGB[uint16](c); got != want {
		t.Errorf("ToRGB[uint16] = %v, want %v", got, want)
	}

	wide := NewRGB[uint16](0x1234, 0xABCD, 0x8000)
	if got, want := ToRGB[uint8](wide), ConvertRGB[uint8](wide); got != want {
		t.Errorf("ToRGB[uint8] = %v, want %v", got, want)
	}

	red := NewHSV[float64](0, 1, 1)
	if got := ToRGB[uint8](red); got != NewRGB[uint8](255, 0, 0) {
		t.Errorf("ToRGB[uint8](hsv red) = %v, want {255 0 0}", got)
	}
}

func TestRGB_ColorInterface(t *testing.T) {
	r, g, b, a := NewRGB[uint8](0xFF, 0x80, 0).RGBA()
	if r != 0xFFFF || g != 0x8080 || b != 0 || a != 0xFFFF {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want RGB[uint8]
	}{
		{"rgba", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, RGB[uint8]{0x12, 0x34, 0x56}},
		{"gray", color.Gray{Y: 0x80}, RGB[uint8]{0x80, 0x80, 0x80}},
		{"premultiplied half alpha", color.RGBA{R: 0x80, G: 0, B: 0, A: 0x80}, RGB[uint8]{0xFF, 0, 0}},
		{"own type", NewRGB[uint16](0xA0A0, 0, 0xFFFF), RGB[uint8]{0xA0, 0, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor[uint8](tt.c); got != tt.want {
				t.Errorf("FromColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
