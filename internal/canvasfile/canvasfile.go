// Package canvasfile implements the binary .canvas container: the raster
// layer as an embedded PNG, the vector path as tagged element records, the
// pin list and the background flag, all big-endian.
package canvasfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"RasterVector/internal/document"
)

// Element record tags. Curve segments occupy three consecutive tag-2
// records: two control points followed by the endpoint.
const (
	tagMove  uint8 = 0
	tagLine  uint8 = 1
	tagCurve uint8 = 2
)

// Decode guards against absurd length prefixes in corrupt files so a flipped
// bit cannot demand gigabytes before the read fails anyway. Count prefixes
// are not trusted either: maxPrealloc caps the slice capacity reserved up
// front, and reads past the real stream end fail record by record.
const (
	maxPNGBytes = 1 << 28
	maxNameLen  = 1 << 20
	maxPrealloc = 4096
)

type record struct {
	tag  uint8
	x, y float64
}

// Encode writes a snapshot in the canvas layout: PNG length and bytes,
// element records, pins, background flag.
func Encode(w io.Writer, snap *document.Snapshot) error {
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, snap.Raster); err != nil {
		return fmt.Errorf("encode raster: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(pngBuf.Len())); err != nil {
		return err
	}
	if _, err := w.Write(pngBuf.Bytes()); err != nil {
		return err
	}

	recs := flatten(snap.Path)
	if err := binary.Write(w, binary.BigEndian, uint32(len(recs))); err != nil {
		return err
	}
	for _, r := range recs {
		if err := writeRecord(w, r); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.BigEndian, uint32(len(snap.Pins))); err != nil {
		return err
	}
	for _, pin := range snap.Pins {
		name := []byte(pin.Name)
		if err := binary.Write(w, binary.BigEndian, uint32(len(name))); err != nil {
			return err
		}
		if _, err := w.Write(name); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, pin.Pos.X); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, pin.Pos.Y); err != nil {
			return err
		}
	}

	flag := byte(0)
	if snap.BackgroundVisible {
		flag = 1
	}
	_, err := w.Write([]byte{flag})
	return err
}

// Decode reads a canvas stream and stages it into a snapshot. Any error,
// including truncation, returns before the caller's document is touched, so
// loads are transactional end to end.
func Decode(r io.Reader) (*document.Snapshot, error) {
	var pngLen uint32
	if err := binary.Read(r, binary.BigEndian, &pngLen); err != nil {
		return nil, fmt.Errorf("read raster length: %w", err)
	}
	if pngLen > maxPNGBytes {
		return nil, fmt.Errorf("raster length %d exceeds limit", pngLen)
	}
	pngData := make([]byte, pngLen)
	if _, err := io.ReadFull(r, pngData); err != nil {
		return nil, fmt.Errorf("read raster: %w", err)
	}
	raster, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("read element count: %w", err)
	}
	recs := make([]record, 0, min(count, maxPrealloc))
	for i := uint32(0); i < count; i++ {
		rec, err := readRecord(r)
		if err != nil {
			return nil, fmt.Errorf("read element %d: %w", i, err)
		}
		recs = append(recs, rec)
	}
	path := assemble(recs)

	var pinCount uint32
	if err := binary.Read(r, binary.BigEndian, &pinCount); err != nil {
		return nil, fmt.Errorf("read pin count: %w", err)
	}
	pins := make([]document.Pin, 0, min(pinCount, maxPrealloc))
	for i := uint32(0); i < pinCount; i++ {
		var nameLen uint32
		if err := binary.Read(r, binary.BigEndian, &nameLen); err != nil {
			return nil, fmt.Errorf("read pin %d: %w", i, err)
		}
		if nameLen > maxNameLen {
			return nil, fmt.Errorf("pin name length %d exceeds limit", nameLen)
		}
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("read pin %d name: %w", i, err)
		}
		var x, y float64
		if err := binary.Read(r, binary.BigEndian, &x); err != nil {
			return nil, fmt.Errorf("read pin %d position: %w", i, err)
		}
		if err := binary.Read(r, binary.BigEndian, &y); err != nil {
			return nil, fmt.Errorf("read pin %d position: %w", i, err)
		}
		pins = append(pins, document.Pin{Name: string(name), Pos: gg.Pt(x, y)})
	}

	var flag [1]byte
	if _, err := io.ReadFull(r, flag[:]); err != nil {
		return nil, fmt.Errorf("read background flag: %w", err)
	}

	return &document.Snapshot{
		Raster:            raster,
		Path:              path,
		Pins:              pins,
		BackgroundVisible: flag[0] != 0,
	}, nil
}

// Save writes the snapshot to path via a temporary file and rename, so an
// interrupted save never leaves a half-written canvas behind.
func Save(path string, snap *document.Snapshot) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".canvas-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := Encode(tmp, snap); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Load reads and decodes a canvas file.
func Load(path string) (*document.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// flatten turns a path into the on-disk record sequence. Quadratic segments
// are degree-elevated to cubics so every curve is stored the same way:
// c1 = p0 + 2/3 (ctrl - p0), c2 = p2 + 2/3 (ctrl - p2).
func flatten(p *gg.Path) []record {
	var recs []record
	var cur gg.Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			recs = append(recs, record{tagMove, e.Point.X, e.Point.Y})
			cur = e.Point
		case gg.LineTo:
			recs = append(recs, record{tagLine, e.Point.X, e.Point.Y})
			cur = e.Point
		case gg.QuadTo:
			c1 := gg.Pt(cur.X+2.0/3.0*(e.Control.X-cur.X), cur.Y+2.0/3.0*(e.Control.Y-cur.Y))
			c2 := gg.Pt(e.Point.X+2.0/3.0*(e.Control.X-e.Point.X), e.Point.Y+2.0/3.0*(e.Control.Y-e.Point.Y))
			recs = append(recs,
				record{tagCurve, c1.X, c1.Y},
				record{tagCurve, c2.X, c2.Y},
				record{tagCurve, e.Point.X, e.Point.Y})
			cur = e.Point
		case gg.CubicTo:
			recs = append(recs,
				record{tagCurve, e.Control1.X, e.Control1.Y},
				record{tagCurve, e.Control2.X, e.Control2.Y},
				record{tagCurve, e.Point.X, e.Point.Y})
			cur = e.Point
		case gg.Close:
			// Gestures never close subpaths; nothing to store.
		}
	}
	return recs
}

// assemble rebuilds a path from records. A curve needs three consecutive
// records; when fewer remain the tail is dropped rather than read out of
// bounds. Unknown tags are skipped for forward compatibility.
func assemble(recs []record) *gg.Path {
	p := gg.NewPath()
	i := 0
	for i < len(recs) {
		switch recs[i].tag {
		case tagMove:
			p.MoveTo(recs[i].x, recs[i].y)
			i++
		case tagLine:
			p.LineTo(recs[i].x, recs[i].y)
			i++
		case tagCurve:
			if i+2 >= len(recs) {
				return p
			}
			p.CubicTo(recs[i].x, recs[i].y, recs[i+1].x, recs[i+1].y, recs[i+2].x, recs[i+2].y)
			i += 3
		default:
			i++
		}
	}
	return p
}

func writeRecord(w io.Writer, r record) error {
	if err := binary.Write(w, binary.BigEndian, r.tag); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, r.x); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, r.y)
}

func readRecord(r io.Reader) (record, error) {
	var buf [17]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return record{}, err
	}
	return record{
		tag: buf[0],
		x:   math.Float64frombits(binary.BigEndian.Uint64(buf[1:9])),
		y:   math.Float64frombits(binary.BigEndian.Uint64(buf[9:17])),
	}, nil
}
