package bmpr

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestEncodeBMP_ExactBytes(t *testing.T) {
	c := newCanvas(t, 2, 1)
	c.Set(0, 0, Red)
	c.Set(1, 0, Green)

	var buf bytes.Buffer
	if err := c.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}
	data := buf.Bytes()

	// rowBytes = 2*3 + 2%4 = 8, one row.
	if len(data) != 54+8 {
		t.Fatalf("file length: got %d, want 62", len(data))
	}

	le := binary.LittleEndian
	if data[0] != 'B' || data[1] != 'M' {
		t.Errorf("signature: got %q%q, want BM", data[0], data[1])
	}
	if got := le.Uint32(data[2:]); got != 62 {
		t.Errorf("file size field: got %d, want 62", got)
	}
	if got := le.Uint32(data[6:]); got != 0 {
		t.Errorf("reserved field: got %d, want 0", got)
	}
	if got := le.Uint32(data[10:]); got != 54 {
		t.Errorf("data offset: got %d, want 54", got)
	}
	if got := le.Uint32(data[14:]); got != 40 {
		t.Errorf("info header size: got %d, want 40", got)
	}
	if got := int32(le.Uint32(data[18:])); got != 2 {
		t.Errorf("width: got %d, want 2", got)
	}
	if got := int32(le.Uint32(data[22:])); got != 1 {
		t.Errorf("height: got %d, want 1", got)
	}
	if got := le.Uint16(data[26:]); got != 1 {
		t.Errorf("planes: got %d, want 1", got)
	}
	if got := le.Uint16(data[28:]); got != 24 {
		t.Errorf("bit depth: got %d, want 24", got)
	}
	if got := le.Uint32(data[30:]); got != 0 {
		t.Errorf("compression: got %d, want 0", got)
	}
	if got := le.Uint32(data[34:]); got != 8 {
		t.Errorf("image size: got %d, want 8", got)
	}
	for off := 38; off < 54; off += 4 {
		if got := le.Uint32(data[off:]); got != 0 {
			t.Errorf("field at offset %d: got %d, want 0", off, got)
		}
	}

	// Pixel row, left to right in BGR: red then green, then two padding
	// zeros.
	want := []byte{0x00, 0x00, 0xff, 0x00, 0xff, 0x00, 0x00, 0x00}
	if !bytes.Equal(data[54:], want) {
		t.Errorf("pixel row: got % x, want % x", data[54:], want)
	}
}

func TestEncodeBMP_BottomUpRows(t *testing.T) {
	c := newCanvas(t, 1, 2)
	c.Set(0, 0, Red)  // top row
	c.Set(0, 1, Blue) // bottom row

	var buf bytes.Buffer
	if err := c.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}
	data := buf.Bytes()

	// rowBytes = 1*3 + 1%4 = 4. The bottom canvas row is serialized first.
	rows := data[54:]
	if !bytes.Equal(rows[0:4], []byte{0xff, 0x00, 0x00, 0x00}) {
		t.Errorf("first serialized row: got % x, want blue", rows[0:4])
	}
	if !bytes.Equal(rows[4:8], []byte{0x00, 0x00, 0xff, 0x00}) {
		t.Errorf("second serialized row: got % x, want red", rows[4:8])
	}
}

func TestEncodeBMP_EmptyCanvas(t *testing.T) {
	c := newCanvas(t, 0, 0)

	var buf bytes.Buffer
	if err := c.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}
	if buf.Len() != 54 {
		t.Errorf("empty canvas file length: got %d, want header only (54)", buf.Len())
	}
}

func TestSave_RoundTrip(t *testing.T) {
	// Widths across all padding cases (w%4 = 1, 2, 3, 0).
	for _, width := range []int{5, 2, 3, 8} {
		c := newCanvas(t, width, 4)
		for y := 0; y < 4; y++ {
			for x := 0; x < width; x++ {
				c.Set(x, y, RGB(uint8(x*30), uint8(y*50), uint8(x+y)))
			}
		}

		path := filepath.Join(t.TempDir(), "out.bmp")
		if err := c.Save(path); err != nil {
			t.Fatalf("width %d: Save: %v", width, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open saved file: %v", err)
		}
		img, err := bmp.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("width %d: decode saved file: %v", width, err)
		}

		if b := img.Bounds(); b.Dx() != width || b.Dy() != 4 {
			t.Fatalf("width %d: decoded bounds %v", width, b)
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				want := c.Get(x, y)
				if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
					t.Errorf("width %d: pixel (%d, %d): decoded (%d, %d, %d), want %+v",
						width, x, y, r>>8, g>>8, b>>8, want)
				}
			}
		}
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	c := newCanvas(t, 2, 2)
	path := filepath.Join(t.TempDir(), "missing", "out.bmp")

	if err := c.Save(path); err == nil {
		t.Fatal("Save into a missing directory succeeded")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("a file was left behind at %s", path)
	}
}

// failWriter fails after n bytes have been accepted.
type failWriter struct {
	n   int
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, w.err
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeBMP_WriteError(t *testing.T) {
	c := newCanvas(t, 64, 64)
	c.Clear(White)

	wantErr := errors.New("disk full")
	if err := c.EncodeBMP(&failWriter{n: 100, err: wantErr}); !errors.Is(err, wantErr) {
		t.Errorf("EncodeBMP with failing writer: got %v, want %v", err, wantErr)
	}
}
