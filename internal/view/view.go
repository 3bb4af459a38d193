// Package view is an Ebiten-driven interactive demo for internal/sweep:
// generates one internal/scene layout, lets the mouse reposition the
// light origin and the scroll wheel adjust the radius, recomputes the
// LOS/FOV polygons every frame, and renders walls and the FOV polygon
// (filled, with its outline) under a small HUD. The LOS polygon is
// computed but not kept or drawn. Adapted from cmd/game's
// Game/Update/Draw structure, trimmed to the one thing this module
// actually computes.
package view

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/vision-sweep/internal/envelope"
	"github.com/Garsondee/vision-sweep/internal/geom"
	"github.com/Garsondee/vision-sweep/internal/scene"
	"github.com/Garsondee/vision-sweep/internal/sweep"
)

const (
	windowW, windowH = 900, 700
	hudScale         = 2
)

// Game is the ebiten.Game implementation driving the demo.
type Game struct {
	cache    *sweep.Cache
	roofs    *scene.RoofRegistry
	opts     scene.SceneOptions
	worldBuf *ebiten.Image
	fovBuf   *ebiten.Image
	hudBuf   *ebiten.Image

	origin      geom.Point
	radius      float64
	polygonType sweep.PolygonType

	fov []geom.Point
	err error

	prevKeys     map[ebiten.Key]bool
	frameMicros  int64
	copyFlashTTL int
}

// New builds a fresh demo instance with a freshly generated scene.
func New() *Game {
	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- demo visualizer only
	opts := scene.DefaultSceneOptions()
	opts.Width, opts.Height = float64(windowW)-40, float64(windowH)-40

	walls, roofs := scene.GenerateDemoWalls(rng, opts)
	cache := sweep.NewCache(walls)
	roofs.Bind(cache)

	g := &Game{
		cache:       cache,
		roofs:       roofs,
		opts:        opts,
		worldBuf:    ebiten.NewImage(windowW, windowH),
		fovBuf:      ebiten.NewImage(windowW, windowH),
		hudBuf:      ebiten.NewImage(windowW/hudScale, windowH/hudScale),
		origin:      geom.NewPoint(opts.Width/2, opts.Height/2),
		radius:      180,
		polygonType: sweep.PolygonSight,
		prevKeys:    make(map[ebiten.Key]bool),
	}
	slog.Info("visionview scene generated", "seed", seed, "walls", len(walls))
	return g
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	g.origin = geom.NewPoint(float64(mx), float64(my))

	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.radius *= 1.0 + wy*0.08
		if g.radius < 10 {
			g.radius = 10
		}
		if g.radius > 2000 {
			g.radius = 2000
		}
	}

	pressed := func(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
	edge := func(k ebiten.Key) bool { return pressed(k) && !g.prevKeys[k] }

	if edge(ebiten.KeyT) {
		if g.polygonType == sweep.PolygonSight {
			g.polygonType = sweep.PolygonSound
		} else {
			g.polygonType = sweep.PolygonSight
		}
	}
	if edge(ebiten.KeyC) {
		g.copyRepro()
	}

	for _, k := range []ebiten.Key{ebiten.KeyT, ebiten.KeyC} {
		g.prevKeys[k] = pressed(k)
	}

	start := time.Now()
	res, err := sweep.Compute(sweep.Request{
		Cache:       g.cache,
		Origin:      g.origin,
		Distance:    g.radius,
		Radius:      g.radius,
		PolygonType: g.polygonType,
	})
	g.frameMicros = time.Since(start).Microseconds()
	g.err = err
	if err == nil {
		g.fov = res.FOV
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 12, B: 10, A: 255})
	g.worldBuf.Clear()
	g.drawWalls(g.worldBuf)
	g.drawFOV(g.worldBuf)
	screen.DrawImage(g.worldBuf, &ebiten.DrawImageOptions{})
	g.drawHUD(screen)
}

func (g *Game) drawWalls(screen *ebiten.Image) {
	for _, w := range g.cache.Walls() {
		col := color.RGBA{R: 160, G: 170, B: 160, A: 255}
		if w.Sense == sweep.SenseNone {
			col = color.RGBA{R: 60, G: 60, B: 60, A: 120}
		} else if w.Sense == sweep.SenseLimited {
			col = color.RGBA{R: 200, G: 170, B: 80, A: 220}
		}
		vector.StrokeLine(screen,
			float32(w.P1.X), float32(w.P1.Y), float32(w.P2.X), float32(w.P2.Y),
			1.5, col, false)
	}
}

func (g *Game) drawFOV(screen *ebiten.Image) {
	if g.err != nil || len(g.fov) < 3 {
		return
	}

	// Fill a solid white fan into its own buffer, then composite with a
	// team-style colour tint — the same two-step FillPath-then-ColorScale
	// trick the vision cone renderer uses, so blending stays additive-free.
	g.fovBuf.Clear()
	var path vector.Path
	path.MoveTo(float32(g.fov[0].X), float32(g.fov[0].Y))
	for _, p := range g.fov[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	vector.FillPath(g.fovBuf, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})

	tint := color.RGBA{R: 255, G: 230, B: 140, A: 255}
	if g.polygonType == sweep.PolygonSound {
		tint = color.RGBA{R: 140, G: 180, B: 255, A: 255}
	}
	opts := &ebiten.DrawImageOptions{}
	opts.ColorScale.ScaleWithColor(tint)
	opts.ColorScale.ScaleAlpha(0.25)
	screen.DrawImage(g.fovBuf, opts)

	edgeCol := color.RGBA{R: 255, G: 220, B: 120, A: 200}
	for i := 1; i < len(g.fov); i++ {
		prev, curr := g.fov[i-1], g.fov[i]
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(curr.X), float32(curr.Y), 1.0, edgeCol, false)
	}

	vector.FillCircle(screen, float32(g.origin.X), float32(g.origin.Y), 3, color.RGBA{R: 255, G: 60, B: 60, A: 255}, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.hudBuf.Clear()
	mode := "SIGHT"
	if g.polygonType == sweep.PolygonSound {
		mode = "SOUND"
	}
	lines := []string{
		fmt.Sprintf("origin: %.0f, %.0f", g.origin.X, g.origin.Y),
		fmt.Sprintf("radius: %.0f  (scroll to adjust)", g.radius),
		fmt.Sprintf("mode: %s  [T] toggle", mode),
		fmt.Sprintf("vertices: %d", len(g.fov)),
		fmt.Sprintf("compute: %dus", g.frameMicros),
		"[C] copy repro envelope",
	}
	if g.err != nil {
		lines = append(lines, "error: "+g.err.Error())
	}
	if g.copyFlashTTL > 0 {
		lines = append(lines, "copied to clipboard")
		g.copyFlashTTL--
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, l, 4, 4+i*12)
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}

// copyRepro ascii85-encodes the current scene and viewpoint as a
// ComputeRequest envelope and puts it on the system clipboard, so a bug
// report can carry an exact repro case.
func (g *Game) copyRepro() {
	req := envelope.ComputeRequest{
		Origin:      g.origin,
		Distance:    g.radius,
		Radius:      g.radius,
		PolygonType: g.polygonType,
		Walls:       g.cache.Walls(),
	}
	encoded, err := envelope.Encode(req)
	if err != nil {
		slog.Warn("encoding repro envelope", "error", err)
		return
	}
	if err := clipboard.WriteAll(encoded); err != nil {
		slog.Warn("writing to clipboard", "error", err)
		return
	}
	g.copyFlashTTL = 90
}

func (g *Game) Layout(_, _ int) (int, int) {
	return windowW, windowH
}
