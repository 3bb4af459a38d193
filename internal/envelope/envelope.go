// Package envelope implements the versioned wire format used to hand a
// sweep.Request (and, for scenario-seed fixtures, its expected output) to
// or from a host process: a single version byte followed by a
// zlib-compressed, ascii85-framed binary body. Mirrors
// original_source/rust/src/serialization.rs's Serialize/deserialize shape,
// translated into a pair of encode/decode functions per type rather than a
// trait.
package envelope

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

// CurrentVersion is the newest envelope version this package writes.
const CurrentVersion byte = 4

var (
	// ErrUnsupportedVersion is returned by Decode for a version byte this
	// build does not understand. Per spec: abort the call with a fatal
	// error rather than guess at a forward-compatible interpretation.
	ErrUnsupportedVersion = errors.New("envelope: unsupported version")
	// ErrMalformedEnvelope wraps any structural decode failure (short
	// read, bad ascii85 framing, truncated zlib stream, a length prefix
	// that overruns the remaining buffer).
	ErrMalformedEnvelope = errors.New("envelope: malformed payload")
)

// ComputeRequest is the on-the-wire twin of sweep.Request: everything
// needed to reproduce a single Compute call, plus the wedge expressed
// directly as start/end angles (the envelope's own representation,
// simpler than re-deriving degrees/rotation on every round trip).
type ComputeRequest struct {
	Origin      geom.Point
	Distance    float64 // version >= 4; defaults to Radius when decoding an older envelope
	Radius      float64
	PolygonType sweep.PolygonType
	LightHeight float64 // version >= 2
	HasWedge    bool
	WedgeStart  float64
	WedgeEnd    float64
	Walls       []sweep.WallBase
}

// Encode serializes req at CurrentVersion and returns the ascii85-framed
// string.
func Encode(req ComputeRequest) (string, error) {
	return encodeVersion(req, CurrentVersion)
}

func encodeVersion(req ComputeRequest, version byte) (string, error) {
	var body bytes.Buffer
	if err := writePoint(&body, req.Origin); err != nil {
		return "", err
	}
	if err := writeFloat64(&body, req.Radius); err != nil {
		return "", err
	}
	if err := body.WriteByte(byte(req.PolygonType)); err != nil {
		return "", err
	}
	if err := writeBool(&body, req.HasWedge); err != nil {
		return "", err
	}
	if req.HasWedge {
		if err := writeFloat64(&body, req.WedgeStart); err != nil {
			return "", err
		}
		if err := writeFloat64(&body, req.WedgeEnd); err != nil {
			return "", err
		}
	}
	if version >= 2 {
		if err := writeFloat64(&body, req.LightHeight); err != nil {
			return "", err
		}
	}
	if version >= 4 {
		if err := writeFloat64(&body, req.Distance); err != nil {
			return "", err
		}
	}
	if err := writeUint32(&body, uint32(len(req.Walls))); err != nil {
		return "", err
	}
	for _, w := range req.Walls {
		if err := encodeWallBase(&body, w, version); err != nil {
			return "", err
		}
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(body.Bytes()); err != nil {
		return "", fmt.Errorf("envelope: compressing body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("envelope: closing compressor: %w", err)
	}

	var framed bytes.Buffer
	framed.WriteByte(version)
	framed.Write(compressed.Bytes())

	var encoded bytes.Buffer
	aw := ascii85.NewEncoder(&encoded)
	if _, err := aw.Write(framed.Bytes()); err != nil {
		return "", fmt.Errorf("envelope: ascii85 encoding: %w", err)
	}
	if err := aw.Close(); err != nil {
		return "", fmt.Errorf("envelope: closing ascii85 encoder: %w", err)
	}

	return encoded.String(), nil
}

// Decode parses an envelope produced by Encode (this package's or a
// version-compatible one).
func Decode(s string) (ComputeRequest, error) {
	framed, err := io.ReadAll(ascii85.NewDecoder(bytes.NewReader([]byte(s))))
	if err != nil {
		return ComputeRequest{}, fmt.Errorf("%w: ascii85: %v", ErrMalformedEnvelope, err)
	}
	if len(framed) < 1 {
		return ComputeRequest{}, fmt.Errorf("%w: empty payload", ErrMalformedEnvelope)
	}

	version := framed[0]
	if version == 0 || version > CurrentVersion {
		return ComputeRequest{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	zr, err := zlib.NewReader(bytes.NewReader(framed[1:]))
	if err != nil {
		return ComputeRequest{}, fmt.Errorf("%w: zlib: %v", ErrMalformedEnvelope, err)
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return ComputeRequest{}, fmt.Errorf("%w: zlib: %v", ErrMalformedEnvelope, err)
	}

	r := bytes.NewReader(body)
	var req ComputeRequest

	req.Origin, err = readPoint(r)
	if err != nil {
		return ComputeRequest{}, err
	}
	req.Radius, err = readFloat64(r)
	if err != nil {
		return ComputeRequest{}, err
	}
	pt, err := r.ReadByte()
	if err != nil {
		return ComputeRequest{}, fmt.Errorf("%w: polygon type: %v", ErrMalformedEnvelope, err)
	}
	req.PolygonType = sweep.PolygonType(pt)

	req.HasWedge, err = readBool(r)
	if err != nil {
		return ComputeRequest{}, err
	}
	if req.HasWedge {
		if req.WedgeStart, err = readFloat64(r); err != nil {
			return ComputeRequest{}, err
		}
		if req.WedgeEnd, err = readFloat64(r); err != nil {
			return ComputeRequest{}, err
		}
	}

	if version >= 2 {
		if req.LightHeight, err = readFloat64(r); err != nil {
			return ComputeRequest{}, err
		}
	}

	if version >= 4 {
		if req.Distance, err = readFloat64(r); err != nil {
			return ComputeRequest{}, err
		}
	} else {
		req.Distance = req.Radius
	}

	count, err := readUint32(r)
	if err != nil {
		return ComputeRequest{}, err
	}
	req.Walls = make([]sweep.WallBase, 0, count)
	for i := uint32(0); i < count; i++ {
		w, err := decodeWallBase(r, version)
		if err != nil {
			return ComputeRequest{}, err
		}
		req.Walls = append(req.Walls, w)
	}

	return req, nil
}

func encodeWallBase(w io.Writer, base sweep.WallBase, version byte) error {
	if err := writePoint(w, base.P1); err != nil {
		return err
	}
	if err := writePoint(w, base.P2); err != nil {
		return err
	}
	if err := writeByte(w, byte(base.Sense)); err != nil {
		return err
	}
	if err := writeByte(w, byte(base.Door)); err != nil {
		return err
	}
	if err := writeByte(w, byte(base.DoorState)); err != nil {
		return err
	}
	if err := writeByte(w, byte(base.Direction)); err != nil {
		return err
	}
	if version >= 1 {
		if err := writeFloat64(w, base.Height.Top); err != nil {
			return err
		}
		if err := writeFloat64(w, base.Height.Bottom); err != nil {
			return err
		}
	}
	if version >= 3 {
		if err := writeByte(w, byte(base.Sound)); err != nil {
			return err
		}
		if err := writeString(w, base.Roof.TileID); err != nil {
			return err
		}
	}
	return nil
}

func decodeWallBase(r *bytes.Reader, version byte) (sweep.WallBase, error) {
	p1, err := readPoint(r)
	if err != nil {
		return sweep.WallBase{}, err
	}
	p2, err := readPoint(r)
	if err != nil {
		return sweep.WallBase{}, err
	}
	senseB, err := r.ReadByte()
	if err != nil {
		return sweep.WallBase{}, fmt.Errorf("%w: wall sense: %v", ErrMalformedEnvelope, err)
	}
	doorB, err := r.ReadByte()
	if err != nil {
		return sweep.WallBase{}, fmt.Errorf("%w: wall door: %v", ErrMalformedEnvelope, err)
	}
	doorStateB, err := r.ReadByte()
	if err != nil {
		return sweep.WallBase{}, fmt.Errorf("%w: wall door state: %v", ErrMalformedEnvelope, err)
	}
	dirB, err := r.ReadByte()
	if err != nil {
		return sweep.WallBase{}, fmt.Errorf("%w: wall direction: %v", ErrMalformedEnvelope, err)
	}

	height := sweep.DefaultWallHeight()
	if version >= 1 {
		top, err := readFloat64(r)
		if err != nil {
			return sweep.WallBase{}, err
		}
		bottom, err := readFloat64(r)
		if err != nil {
			return sweep.WallBase{}, err
		}
		height = sweep.WallHeight{Top: top, Bottom: bottom}
	}

	sound := sweep.Sense(senseB)
	roof := sweep.RoofRef{}
	if version >= 3 {
		soundB, err := r.ReadByte()
		if err != nil {
			return sweep.WallBase{}, fmt.Errorf("%w: wall sound sense: %v", ErrMalformedEnvelope, err)
		}
		sound = sweep.Sense(soundB)
		tileID, err := readString(r)
		if err != nil {
			return sweep.WallBase{}, err
		}
		roof = sweep.RoofRef{TileID: tileID}
	}

	return sweep.NewWallBase(p1, p2, sweep.Sense(senseB), sound,
		sweep.DoorKind(doorB), sweep.DoorState(doorStateB), sweep.Direction(dirB), height, roof), nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeBool(w io.Writer, b bool) error {
	if b {
		return writeByte(w, 1)
	}
	return writeByte(w, 0)
}

func readBool(r *bytes.Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, fmt.Errorf("%w: bool: %v", ErrMalformedEnvelope, err)
	}
	return b != 0, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: uint32: %v", ErrMalformedEnvelope, err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func writeFloat64(w io.Writer, v float64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

func readFloat64(r *bytes.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: float64: %v", ErrMalformedEnvelope, err)
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}

func writePoint(w io.Writer, p geom.Point) error {
	if err := writeFloat64(w, p.X); err != nil {
		return err
	}
	return writeFloat64(w, p.Y)
}

func readPoint(r *bytes.Reader) (geom.Point, error) {
	x, err := readFloat64(r)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := readFloat64(r)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.NewPoint(x, y), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: string: %v", ErrMalformedEnvelope, err)
	}
	return string(buf), nil
}
