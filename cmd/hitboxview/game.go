package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/linklike/arena"
	"github.com/milk9111/linklike/collision"
	"github.com/milk9111/linklike/prefabs"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	statusFrames = 120
)

type Game struct {
	frames int

	level   *arena.Level
	lib     *prefabs.Library
	watcher *prefabs.Watcher

	debug  bool
	paused bool
	quit   bool
	ui     *ebitenui.UI

	clipboardOK bool
	status      string
	statusLeft  int
}

func NewGame(debug bool) (*Game, error) {
	lib, err := prefabs.Attacks()
	if err != nil {
		return nil, err
	}
	lvl, err := arena.NewDefault()
	if err != nil {
		return nil, err
	}

	g := &Game{
		level: lvl,
		lib:   lib,
		debug: debug,
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}
	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) Watch(dirs ...string) error {
	if len(dirs) == 0 {
		return fmt.Errorf("no prefab directories under %s", prefabs.DiskDir)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	g.watcher = w
	log.Printf("watching %v", dirs)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	if g.statusLeft > 0 {
		g.statusLeft--
	}
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}

	g.level.Update(readInput())
	return nil
}

func readInput() arena.Input {
	var held []collision.Direction
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		held = append(held, collision.Left)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		held = append(held, collision.Right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		held = append(held, collision.Up)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		held = append(held, collision.Down)
	}
	return arena.Press(ebiten.IsKeyPressed(ebiten.KeySpace), held...)
}

func (g *Game) restart() {
	lvl, err := arena.NewDefault()
	if err != nil {
		g.setStatus(fmt.Sprintf("restart failed: %v", err))
		return
	}
	g.level = lvl
	g.paused = false
	g.setStatus("restarted")
}

// copyFrame puts the advanced enemy's current interpolated frame on the
// clipboard as a keyframe entry.
func (g *Game) copyFrame() {
	adv, ok := g.level.Advanced()
	if !ok {
		g.setStatus("nothing to copy")
		return
	}
	out, err := prefabs.MarshalFrame(adv.Swing().Lerped())
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	if !g.clipboardOK {
		log.Printf("frame:\n%s", out)
		g.setStatus("clipboard unavailable, frame logged")
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	g.setStatus(fmt.Sprintf("copied %s keyframe %d", adv.Attack(), adv.Swing().CurrentInterval()))
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusLeft = statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	camera := g.level.Protag.Position
	for _, s := range g.level.Shapes() {
		strokeShape(screen, s, camera, g.debug)
	}
	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
