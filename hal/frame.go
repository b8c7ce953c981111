package hal

import (
	"encoding/binary"

	"zuluface/proto"
)

// Phone messages arrive on a byte stream (the BLE module's UART) framed as a
// little-endian u16 length followed by that many payload bytes.
const (
	frameHeaderBytes = 2
	maxFramePayload  = proto.MaxDictBytes
)

// AppendFrame appends the framed payload to dst.
func AppendFrame(dst, payload []byte) []byte {
	var hdr [frameHeaderBytes]byte
	binary.LittleEndian.PutUint16(hdr[:], uint16(len(payload)))
	dst = append(dst, hdr[:]...)
	return append(dst, payload...)
}

// frameDecoder reassembles frames one byte at a time.
//
// A header announcing more than maxFramePayload bytes is discarded and the
// decoder resynchronizes on the next byte.
type frameDecoder struct {
	hdr  [frameHeaderBytes]byte
	nhdr int
	want int
	buf  []byte
}

// Feed consumes one byte and returns a complete payload when one finishes.
func (d *frameDecoder) Feed(b byte) ([]byte, bool) {
	if d.nhdr < frameHeaderBytes {
		d.hdr[d.nhdr] = b
		d.nhdr++
		if d.nhdr < frameHeaderBytes {
			return nil, false
		}
		d.want = int(binary.LittleEndian.Uint16(d.hdr[:]))
		switch {
		case d.want > maxFramePayload:
			// Slide by one byte so a misaligned stream can recover.
			d.hdr[0] = d.hdr[1]
			d.nhdr = 1
			return nil, false
		case d.want == 0:
			d.nhdr = 0
			return []byte{}, true
		}
		d.buf = make([]byte, 0, d.want)
		return nil, false
	}

	d.buf = append(d.buf, b)
	if len(d.buf) < d.want {
		return nil, false
	}
	out := d.buf
	d.buf = nil
	d.nhdr = 0
	return out, true
}
