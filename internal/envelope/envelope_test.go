package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

func sampleRequest() ComputeRequest {
	return ComputeRequest{
		Origin:      geom.NewPoint(1.5, -2.5),
		Radius:      42,
		PolygonType: sweep.PolygonSight,
		LightHeight: 3,
		HasWedge:    true,
		WedgeStart:  -1.0,
		WedgeEnd:    1.0,
		Walls: []sweep.WallBase{
			sweep.NewWallBase(geom.NewPoint(0, 0), geom.NewPoint(10, 0),
				sweep.SenseNormal, sweep.SenseLimited,
				sweep.DoorRegular, sweep.DoorLocked, sweep.DirLeft,
				sweep.WallHeight{Top: 10, Bottom: 0},
				sweep.RoofRef{TileID: "roof-1"}),
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	req := sampleRequest()
	s, err := Encode(req)
	require.NoError(t, err)

	got, err := Decode(s)
	require.NoError(t, err)

	assert.Equal(t, req.Origin, got.Origin)
	assert.Equal(t, req.Radius, got.Radius)
	assert.Equal(t, req.LightHeight, got.LightHeight)
	assert.True(t, got.HasWedge)
	assert.Equal(t, req.WedgeStart, got.WedgeStart)
	assert.Equal(t, req.WedgeEnd, got.WedgeEnd)
	require.Len(t, got.Walls, 1)

	w, want := got.Walls[0], req.Walls[0]
	assert.Equal(t, want.P1, w.P1)
	assert.Equal(t, want.P2, w.P2)
	assert.Equal(t, want.Sense, w.Sense)
	assert.Equal(t, want.Sound, w.Sound)
	assert.Equal(t, want.Door, w.Door)
	assert.Equal(t, want.DoorState, w.DoorState)
	assert.Equal(t, want.Roof.TileID, w.Roof.TileID)
	assert.Equal(t, want.Height, w.Height)
}

func TestDecode_RejectsUnsupportedVersion(t *testing.T) {
	s, err := encodeVersion(sampleRequest(), CurrentVersion+1)
	if err != nil {
		t.Fatalf("encodeVersion: %v", err)
	}
	if _, err := Decode(s); err == nil {
		t.Fatal("expected an error decoding a future version")
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := Decode("not a valid envelope"); err == nil {
		t.Fatal("expected an error decoding garbage input")
	}
}

func TestEncodeDecode_Version1OmitsSoundAndRoof(t *testing.T) {
	req := sampleRequest()
	s, err := encodeVersion(req, 1)
	if err != nil {
		t.Fatalf("encodeVersion: %v", err)
	}
	got, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(got.Walls))
	}
	// Version 1 has no per-wall sound sense field; decode falls back to
	// mirroring the sight sense.
	if got.Walls[0].Sound != got.Walls[0].Sense {
		t.Fatalf("v1 sound fallback mismatch: %+v", got.Walls[0])
	}
	if got.Walls[0].Roof.TileID != "" {
		t.Fatalf("v1 should not carry a roof reference, got %q", got.Walls[0].Roof.TileID)
	}
}
