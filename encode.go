package bmpr

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// headerSize is the combined size of the bitmap file header and the
// 40-byte info header that follows it.
const headerSize = 54

// header is the packed on-disk layout of the bitmap headers. All multi-byte
// fields are little-endian; binary.Write emits the fields back to back with
// no padding, so the struct serializes to exactly headerSize bytes.
type header struct {
	Signature       uint16 // 0x4d42, ASCII "BM"
	FileSize        uint32
	Reserved        uint32
	DataOffset      uint32
	InfoHeaderSize  uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitDepth        uint16
	Compression     uint32
	ImageSize       uint32
	XPixPerM        int32
	YPixPerM        int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// rowBytes returns the serialized length of one pixel row, including the
// zero padding that keeps rows 4-byte aligned.
func (c *Canvas) rowBytes() int {
	return c.width*3 + c.width%4
}

// EncodeBMP writes the canvas as an uncompressed 24-bit bitmap to w.
// Rows are written bottom-up (the format's origin is the bottom-left),
// each pixel as three bytes in blue-green-red order, each row followed
// by its padding bytes.
func (c *Canvas) EncodeBMP(w io.Writer) error {
	rowBytes := c.rowBytes()
	imageBytes := rowBytes * c.height

	bw := bufio.NewWriter(w)
	err := binary.Write(bw, binary.LittleEndian, header{
		Signature:      0x4d42,
		FileSize:       uint32(headerSize + imageBytes),
		DataOffset:     headerSize,
		InfoHeaderSize: 40,
		Width:          int32(c.width),
		Height:         int32(c.height),
		Planes:         1,
		BitDepth:       24,
		ImageSize:      uint32(imageBytes),
	})
	if err != nil {
		return err
	}

	// Padding bytes past 3*width are never written and stay zero.
	row := make([]byte, rowBytes)
	for y := c.height - 1; y >= 0; y-- {
		pos := 0
		for x := 0; x < c.width; x++ {
			px := c.pix[y*c.width+x]
			row[pos+0] = px.B
			row[pos+1] = px.G
			row[pos+2] = px.R
			pos += 3
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the canvas to path as an uncompressed 24-bit bitmap file.
// If writing fails after the file has been created, the partial file is
// removed before the error is returned, so a failed Save never leaves a
// corrupt artifact behind.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bmpr: create %s: %w", path, err)
	}
	if err := c.EncodeBMP(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("bmpr: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("bmpr: close %s: %w", path, err)
	}

	Logger().Debug("bitmap saved",
		"path", path,
		"width", c.width,
		"height", c.height,
		"bytes", headerSize+c.rowBytes()*c.height)
	return nil
}
