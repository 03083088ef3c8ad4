package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// toScreen maps world space to the screen with camera at the center.
func toScreen(p, camera cp.Vector) cp.Vector {
	return cp.Vector{X: p.X - camera.X + baseWidth/2, Y: p.Y - camera.Y + baseHeight/2}
}

func strokeShape(screen *ebiten.Image, s collision.DrawShape, camera cp.Vector, debug bool) {
	world := s.World()
	for _, r := range world {
		p := toScreen(cp.Vector{X: r.X, Y: r.Y}, camera)
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(r.Width), float32(r.Height), 2, s.Color, false)
	}
	if !debug || len(world) < 2 {
		return
	}
	bounds := world[0]
	for _, r := range world[1:] {
		bounds = bounds.Union(r)
	}
	p := toScreen(cp.Vector{X: bounds.X, Y: bounds.Y}, camera)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(bounds.Width), float32(bounds.Height), 1, colornames.Gray, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lvl := g.level
	var lines []string
	lines = append(lines, fmt.Sprintf("tick %d    FPS %.1f", lvl.Tick(), ebiten.ActualFPS()))
	lines = append(lines, fmt.Sprintf("hp %.0f/%.0f  facing %v  hurt %v", lvl.Protag.HP.Current, lvl.Protag.HP.Max, lvl.Protag.Direction, lvl.Protag.Hurt))
	if lvl.Protag.Sword.Active() {
		lines = append(lines, fmt.Sprintf("sword %v frame %d/%d", lvl.Protag.Sword.Direction(), lvl.Protag.Sword.Frame()+1, lvl.Protag.Sword.Len()))
	}
	if g.debug {
		if adv, ok := lvl.Advanced(); ok {
			sw := adv.Swing()
			lines = append(lines, fmt.Sprintf("%s: keyframe %d hold %d t=%.2f facing %v", adv.Name(), sw.CurrentInterval(), sw.Remaining(), sw.Progress(), sw.Direction()))
		}
		for _, e := range lvl.Enemies {
			lines = append(lines, fmt.Sprintf("%s hp %.0f at (%.0f, %.0f)", e.Name(), e.Health().CurrentHP(), e.Position().X, e.Position().Y))
		}
	}
	if lvl.Over() {
		lines = append(lines, "defeated - press R to restart")
	}
	if g.statusLeft > 0 {
		lines = append(lines, g.status)
	}
	lines = append(lines, "WASD move  Space swing  C copy frame  R restart  F1 debug  Esc pause")

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, strings.Join(lines, "\n"), hudFace, op)
}
