package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math"
)

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	jpegSOI      = []byte{0xFF, 0xD8}
)

// ihdrEnd is the offset just past the IHDR chunk: signature, then length,
// type, 13 data bytes and CRC.
const ihdrEnd = 8 + 4 + 4 + 13 + 4

// withPNGDPI inserts a pHYs chunk (pixels per metre) after IHDR.
func withPNGDPI(data []byte, dpi int) ([]byte, error) {
	if len(data) < ihdrEnd || !bytes.HasPrefix(data, pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, errors.New("not a PNG stream")
	}
	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 0, 4+4+9+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: metre
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, data[ihdrEnd:]...), nil
}

// withJPEGDPI inserts a JFIF APP0 segment with the density in dots per inch
// right after SOI.
func withJPEGDPI(data []byte, dpi int) ([]byte, error) {
	if !bytes.HasPrefix(data, jpegSOI) {
		return nil, errors.New("not a JPEG stream")
	}
	density := uint16(max(1, min(math.MaxUint16, dpi)))

	app0 := []byte{0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x01}
	app0 = binary.BigEndian.AppendUint16(app0, density)
	app0 = binary.BigEndian.AppendUint16(app0, density)
	app0 = append(app0, 0x00, 0x00) // no thumbnail

	out := make([]byte, 0, len(data)+len(app0))
	out = append(out, jpegSOI...)
	out = append(out, app0...)
	return append(out, data[2:]...), nil
}
