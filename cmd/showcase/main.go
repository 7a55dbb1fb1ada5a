// cmd/showcase/main.go
// Preset gallery for the animation variants.
//
// Usage:
//	go run ./cmd/showcase [-presets=path/to/presets.yaml] [-verbose]
//
// Keys: Space pause/resume, Right step one frame, Left step back,
// Home rewind to frame 0, F fullscreen, Esc quit.

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/whirl/pkg/config"
	"github.com/decker502/whirl/pkg/render"
	"github.com/decker502/whirl/pkg/shapes"
)

//go:embed presets.yaml
var defaultPresets []byte

var (
	presetsPath = flag.String("presets", "", "preset file overriding the built-in gallery")
	verbose     = flag.Bool("verbose", false, "enable log output")
)

const (
	cellSize = 180
	columns  = 3
	padding  = 12
)

type cell struct {
	name string
	ctx  *render.EbitenContext
	anim *shapes.Animation
}

// Game hosts one animation per preset, laid out on a fixed grid.
type Game struct {
	cells     []cell
	scheduler *frameScheduler
	settings  *SettingsManager
	rows      int
}

func NewGame(presetFile *config.PresetFile, settings *SettingsManager) (*Game, error) {
	g := &Game{
		scheduler: newFrameScheduler(),
		settings:  settings,
		rows:      (len(presetFile.Presets) + columns - 1) / columns,
	}

	for _, preset := range presetFile.Presets {
		variant, err := preset.Build()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", preset.Name, err)
		}
		ctx := render.NewEbitenContext(cellSize, cellSize)
		anim, err := shapes.NewAnimation(ctx, g.scheduler, variant)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", preset.Name, err)
		}
		g.cells = append(g.cells, cell{name: preset.Name, ctx: ctx, anim: anim})
	}

	if !settings.Settings().Paused {
		g.playAll()
	}
	return g, nil
}

func (g *Game) playAll() {
	for _, c := range g.cells {
		c.anim.Play()
	}
}

func (g *Game) pauseAll() {
	for _, c := range g.cells {
		c.anim.Pause()
	}
}

func (g *Game) paused() bool {
	for _, c := range g.cells {
		if !c.anim.Clock().Paused() {
			return false
		}
	}
	return true
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		paused := g.paused()
		if paused {
			g.playAll()
		} else {
			g.pauseAll()
		}
		g.settings.Settings().Paused = !paused
		if err := g.settings.Save(); err != nil {
			log.Printf("[Showcase] Failed to save settings: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		for _, c := range g.cells {
			c.anim.Step()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		for _, c := range g.cells {
			c.anim.Seek(-1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		for _, c := range g.cells {
			c.anim.Seek(-c.anim.Clock().Progress() * c.anim.Clock().FrameCount())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		g.settings.Settings().Fullscreen = full
		if err := g.settings.Save(); err != nil {
			log.Printf("[Showcase] Failed to save settings: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	g.scheduler.flush()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff})

	for i, c := range g.cells {
		col := i % columns
		row := i / columns
		x := padding + col*(cellSize+padding)
		y := padding + row*(cellSize+padding)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(c.ctx.Image(), op)

		label := c.name
		if err := c.anim.Err(); err != nil {
			label = fmt.Sprintf("%s (failed)", c.name)
		}
		ebitenutil.DebugPrintAt(screen, label, x+2, y+cellSize-16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := padding + columns*(cellSize+padding)
	h := padding + g.rows*(cellSize+padding)
	return w, h
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	presetFile, err := loadPresets(*presetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}

	// Persistence is optional; a failed open just means settings
	// will not survive the session.
	var manager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "whirl_showcase"}); err != nil {
		log.Printf("[Showcase] Warning: settings storage unavailable: %v", err)
	} else {
		manager = m
	}
	settings, err := NewSettingsManager(manager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(presetFile, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("whirl showcase")
	ebiten.SetFullscreen(settings.Settings().Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}

func loadPresets(path string) (*config.PresetFile, error) {
	if path != "" {
		return config.LoadPresetFile(path)
	}
	return config.ParsePresetFile(defaultPresets)
}
