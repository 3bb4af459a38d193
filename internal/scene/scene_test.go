package scene

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/vision-sweep/internal/sweep"
)

func TestGenerateDemoWalls_ProducesWallsAndRoofs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	walls, registry := GenerateDemoWalls(rng, DefaultSceneOptions())

	if len(walls) == 0 {
		t.Fatal("expected at least one wall")
	}

	roofTiles := make(map[string]bool)
	for _, w := range walls {
		if w.Roof.TileID != "" {
			roofTiles[w.Roof.TileID] = true
		}
	}
	if len(roofTiles) == 0 {
		t.Fatal("expected at least one roofed wall")
	}
	for id := range roofTiles {
		if !registry.IsOccluded(id) {
			t.Fatalf("roof %s should start occluded", id)
		}
	}
}

func TestRoofRegistry_BindPropagatesToCache(t *testing.T) {
	registry := NewRoofRegistry()
	registry.Register("roof-a", true)

	cache := sweep.NewCache(nil)
	registry.Bind(cache)
	if !cache.IsRoofOccluded("roof-a") {
		t.Fatal("binding should push existing registry state into the cache")
	}

	registry.SetOccluded("roof-a", false)
	if cache.IsRoofOccluded("roof-a") {
		t.Fatal("SetOccluded after Bind should update the cache too")
	}
}

func TestPickBuildingSize_AlwaysFromPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		w, h := pickBuildingSize(rng)
		found := false
		for _, s := range buildingSizePool {
			if s.w == w && s.h == h {
				found = true
			}
		}
		if !found {
			t.Fatalf("size (%v,%v) not in pool", w, h)
		}
	}
}
