package fonts

import (
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/inkui/paint"
)

var _ paint.Font = (*Font)(nil)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		size          int
		wantErr       bool
	}{
		{"valid", 8, 2, 95 * 2, false},
		{"too wide", 9, 2, 95 * 2, true},
		{"zero height", 8, 0, 0, true},
		{"short table", 8, 2, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, make([]byte, tt.size))
			if (err != nil) != tt.wantErr {
				t.Errorf("New error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	f, err := New(8, 12, make([]byte, 95*12))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		r          rune
		supported  bool
		wantOffset int
	}{
		{' ', true, 0},
		{'!', true, 12},
		{'A', true, 33 * 12},
		{'~', true, 94 * 12},
		{'\n', false, 0},
		{'é', false, 0},
		{127, false, 0},
	}
	for _, tt := range tests {
		if got := f.HasChar(tt.r); got != tt.supported {
			t.Errorf("HasChar(%q) = %v", tt.r, got)
		}
		if got := f.CharOffset(tt.r); got != tt.wantOffset {
			t.Errorf("CharOffset(%q) = %d; want %d", tt.r, got, tt.wantOffset)
		}
	}

	if f.DataAt(-1) != 0 || f.DataAt(95*12) != 0 {
		t.Error("DataAt out of range should be zero")
	}
}

func TestTextWidth(t *testing.T) {
	f, _ := New(7, 1, make([]byte, 95))
	if got := f.TextWidth("hello"); got != 35 {
		t.Errorf("TextWidth = %d; want 35", got)
	}
	if got := f.TextWidth("°C"); got != 14 {
		t.Errorf("TextWidth(\"°C\") = %d; want 14", got)
	}
}

func TestFromFace(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 4))
	// 'A' is the first cell: a diagonal. 'B' is the second: a full top row.
	mask.Pix[0*3+0] = 0xFF
	mask.Pix[1*3+2] = 0xFF
	mask.Pix[2*3+0] = 0xFF
	mask.Pix[2*3+1] = 0xFF
	mask.Pix[2*3+2] = 0xFF

	face := &basicfont.Face{
		Advance: 4,
		Width:   3,
		Height:  2,
		Ascent:  2,
		Mask:    mask,
		Ranges:  []basicfont.Range{{Low: 'A', High: 'C', Offset: 0}},
	}

	f, err := FromFace(face)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width() != 4 || f.Height() != 2 {
		t.Fatalf("cell = %dx%d; want 4x2", f.Width(), f.Height())
	}

	a := f.CharOffset('A')
	if got := f.DataAt(a); got != 0x80 {
		t.Errorf("A row 0 = %#x; want 0x80", got)
	}
	if got := f.DataAt(a + 1); got != 0x20 {
		t.Errorf("A row 1 = %#x; want 0x20", got)
	}
	b := f.CharOffset('B')
	if got := f.DataAt(b); got != 0xE0 {
		t.Errorf("B row 0 = %#x; want 0xe0", got)
	}
	z := f.CharOffset('Z')
	if f.DataAt(z) != 0 || f.DataAt(z+1) != 0 {
		t.Error("characters outside the face ranges should be blank")
	}
}

func TestBasic(t *testing.T) {
	f := Basic()
	if f != Basic() {
		t.Fatal("Basic returned a different table on second call")
	}
	if f.Width() != 7 || f.Height() != 13 {
		t.Fatalf("basic cell = %dx%d; want 7x13", f.Width(), f.Height())
	}

	for row := 0; row < f.Height(); row++ {
		if f.DataAt(f.CharOffset(' ')+row) != 0 {
			t.Errorf("space row %d is not blank", row)
		}
	}

	set := 0
	for row := 0; row < f.Height(); row++ {
		bits := f.DataAt(f.CharOffset('A') + row)
		if bits&0x01 != 0 {
			t.Errorf("A row %d uses the eighth column", row)
		}
		for ; bits != 0; bits &= bits - 1 {
			set++
		}
	}
	if set == 0 {
		t.Error("A glyph is empty")
	}
}

func TestBasicDrawsOnCanvas(t *testing.T) {
	c := paint.New(16, 16)
	c.DrawStringAt(0, 0, "H", Basic(), paint.Colored)
	colored := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if c.Pixel(x, y) == paint.Colored {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("drawing H colored nothing")
	}
}
