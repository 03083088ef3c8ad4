package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/linklike/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show bounds and combat highlights")
	watch := flag.Bool("watch", false, "hot reload prefabs from -prefabs when they change on disk")
	scale := flag.Float64("scale", 1, "window scale")
	dir := flag.String("prefabs", prefabs.DiskDir, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.DiskDir = *dir

	game, err := NewGame(*debug)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := game.Watch(prefabs.WatchDirs()...); err != nil {
			log.Printf("hot reload disabled: %v", err)
		}
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(baseWidth * *scale), int(baseHeight * *scale))
	ebiten.SetWindowTitle("hitboxview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
