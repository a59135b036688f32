// Package game is the interactive driver: a human on the left paddle
// against a Policy on the right, rendered with raylib.
package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rally/arena"
	"github.com/pthm-cable/rally/config"
	"github.com/pthm-cable/rally/policy"
	"github.com/pthm-cable/rally/renderer"
)

// PanelWidth is the extra window width reserved for the control panel.
const PanelWidth = 240

// Game runs the play-mode loop. The window and font are created by the
// caller; Game only consumes them through the renderer.
type Game struct {
	cfg      *config.Config
	engine   *arena.Engine
	right    policy.Policy
	renderer *renderer.Renderer

	paused   bool
	speed    int
	showHits bool
	tick     int
}

// New wires an engine and a right-side opponent into an interactive game.
func New(cfg *config.Config, engine *arena.Engine, right policy.Policy, r *renderer.Renderer) *Game {
	return &Game{
		cfg:      cfg,
		engine:   engine,
		right:    right,
		renderer: r,
		speed:    1,
	}
}

// Update advances the match by speed ticks, unless paused.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.speed; i++ {
		g.step()
	}
}

func (g *Game) step() {
	g.engine.Advance()
	g.tick++

	// Human drives the left paddle. Rejected moves are simply dropped,
	// there is no penalty channel in play mode.
	if rl.IsKeyDown(rl.KeyW) {
		g.engine.MovePaddle(arena.SideLeft, arena.DirUp)
	} else if rl.IsKeyDown(rl.KeyS) {
		g.engine.MovePaddle(arena.SideLeft, arena.DirDown)
	}

	action := g.right.Decide(policy.Observe(g.engine, arena.SideRight))
	if action != policy.Hold {
		g.engine.MovePaddle(arena.SideRight, action.Direction())
	}
}

func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyComma) && g.speed > 1 {
		g.speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.speed < 10 {
		g.speed++
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.engine.Reset()
	}
}

// Draw renders the playfield and the control panel.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.renderer.Draw(g.engine, renderer.Options{
		ShowScore: true,
		ShowHits:  g.showHits,
	})

	rl.DrawText(fmt.Sprintf("Tick: %d  Speed: %dx  [</>]", g.tick, g.speed), 10, g.screenH()-25, 14, rl.Gray)
	if g.paused {
		rl.DrawText("PAUSED", 10, g.screenH()-45, 16, rl.Yellow)
	}

	g.drawPanel()

	rl.EndDrawing()
}

func (g *Game) drawPanel() {
	panelX := float32(g.cfg.Screen.Width) + 20
	panelY := float32(10)

	rl.DrawText("Match Controls", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 35

	rl.DrawText("Speed", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: PanelWidth - 80, Height: 20},
		"1", "10",
		float32(g.speed), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%dx", g.speed), int32(panelX+PanelWidth-50), int32(panelY+2), 16, rl.DarkGray)
	g.speed = int(newSpeed)
	panelY += 35

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 30}, toggleText(g.showHits, "Hide Hits", "Show Hits")) {
		g.showHits = !g.showHits
	}
	if gui.Button(rl.Rectangle{X: panelX + 110, Y: panelY, Width: 100, Height: 30}, toggleText(g.paused, "Resume", "Pause")) {
		g.paused = !g.paused
	}
	panelY += 40

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 30}, "Reset") {
		g.engine.Reset()
		g.tick = 0
	}
}

// Tick reports how many engine steps have run.
func (g *Game) Tick() int {
	return g.tick
}

func (g *Game) screenH() int32 {
	return int32(g.cfg.Screen.Height)
}

func toggleText(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}
