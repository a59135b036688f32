// Package renderer draws arena state with raylib. It owns no window and no
// fonts; callers create the window and pass the font in, so multiple
// renderers can coexist and tests can construct one without a GPU context.
package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rally/arena"
)

const (
	scoreFontSize = 50
	fontSpacing   = 2
)

// Options selects which overlays Draw paints on top of the playfield.
type Options struct {
	ShowScore bool
	ShowHits  bool
}

// Renderer paints one playfield. The font stays owned by the caller and
// must outlive the renderer.
type Renderer struct {
	font   rl.Font
	width  int32
	height int32
}

// New creates a renderer for a playfield of the given pixel dimensions.
func New(font rl.Font, width, height int32) *Renderer {
	return &Renderer{font: font, width: width, height: height}
}

// Draw paints a full frame: background, divider, paddles, ball and the
// overlays selected in opts. The caller owns the BeginDrawing/EndDrawing
// bracket.
func (r *Renderer) Draw(e *arena.Engine, opts Options) {
	rl.ClearBackground(rl.Black)
	r.drawDivider()

	snap := e.Snapshot()
	if opts.ShowScore {
		r.drawScore(snap)
	}
	if opts.ShowHits {
		r.drawHits(snap)
	}

	for _, p := range []*arena.Paddle{e.Left, e.Right} {
		rl.DrawRectangle(int32(p.X), int32(p.Y), int32(arena.PaddleWidth), int32(arena.PaddleHeight), rl.White)
	}
	rl.DrawCircleV(rl.NewVector2(float32(e.Ball.X), float32(e.Ball.Y)), float32(arena.BallRadius), rl.White)
}

// drawDivider paints the dashed center line, one segment out of two.
func (r *Renderer) drawDivider() {
	seg := r.height / 20
	for i := int32(0); i*seg+10 < r.height; i++ {
		if i%2 == 1 {
			continue
		}
		rl.DrawRectangle(r.width/2-5, i*seg+10, 10, seg, rl.White)
	}
}

func (r *Renderer) drawScore(snap arena.Snapshot) {
	r.drawCentered(fmt.Sprintf("%d", snap.LeftScore), r.width/4, 20, rl.White)
	r.drawCentered(fmt.Sprintf("%d", snap.RightScore), r.width*3/4, 20, rl.White)
}

// drawHits paints the combined rally counter in red so it reads apart from
// the scores.
func (r *Renderer) drawHits(snap arena.Snapshot) {
	r.drawCentered(fmt.Sprintf("%d", snap.LeftHits+snap.RightHits), r.width/2, 10, rl.Red)
}

// drawCentered draws text horizontally centered on x.
func (r *Renderer) drawCentered(text string, x, y int32, color rl.Color) {
	size := rl.MeasureTextEx(r.font, text, scoreFontSize, fontSpacing)
	pos := rl.NewVector2(float32(x)-size.X/2, float32(y))
	rl.DrawTextEx(r.font, text, pos, scoreFontSize, fontSpacing, color)
}
