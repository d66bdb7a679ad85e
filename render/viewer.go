package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 960
	baseHeight = 640
)

// Stepper advances a simulation by one tick.
type Stepper interface {
	Step() error
	World() *ecs.World
	Done() bool
}

// Viewer is an ebiten.Game showing a running simulation from above. Space
// pauses, period steps one tick while paused.
type Viewer struct {
	sim    Stepper
	cam    Camera
	paused bool
	canvas *Canvas
}

func NewViewer(sim Stepper, scale float64) *Viewer {
	return &Viewer{
		sim: sim,
		cam: Camera{Scale: scale, Width: baseWidth, Height: baseHeight},
	}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	step := !v.paused || inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
	if step && !v.sim.Done() {
		if err := v.sim.Step(); err != nil {
			return err
		}
	}
	v.follow()
	return nil
}

// follow centres the camera on the first player.
func (v *Viewer) follow() {
	w := v.sim.World()
	p, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, p, component.TransformComponent.Kind()); ok {
		v.cam.X, v.cam.Z = t.X, t.Z
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	if v.canvas == nil || v.canvas.dst != screen {
		v.canvas = NewCanvas(screen)
	}
	w := v.sim.World()
	if vw := terrainOf(w); vw != nil {
		DrawTerrain(v.canvas, vw, v.cam)
	}
	DrawEntities(w, v.canvas, v.cam, 0)
	Specials(w, v.canvas, v.cam, 0)

	status := fmt.Sprintf("Tick: %d    FPS: %.2f", w.Tick(), ebiten.ActualFPS())
	if v.paused {
		status += "    paused"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Run opens a window and blocks until it is closed.
func Run(v *Viewer, title string) error {
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}
