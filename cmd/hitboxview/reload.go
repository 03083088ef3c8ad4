package main

import (
	"fmt"
	"log"

	"github.com/milk9111/linklike/arena"
	"github.com/milk9111/linklike/prefabs"
)

// drainWatcher applies any prefab edits reported since the last frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.apply(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) apply(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeAttack:
		attack, err := g.lib.Reload(change.Name)
		if err != nil {
			g.reloadFailed(change, err)
			return
		}
		n := g.level.ApplyAttack(attack)
		if g.level.Decoration != nil && change.Name == decorationAttack() {
			g.level.ApplyDecoration(attack)
			n++
		}
		g.reloaded(fmt.Sprintf("reloaded %s (%d users)", change.Name, n))
	case prefabs.ChangeScript:
		if err := g.level.ReloadScript(change.Name); err != nil {
			g.reloadFailed(change, err)
			return
		}
		g.reloaded(fmt.Sprintf("reloaded script %s", change.Name))
	case prefabs.ChangeConfig:
		lvl, err := arena.NewDefault()
		if err != nil {
			g.reloadFailed(change, err)
			return
		}
		g.level = lvl
		g.reloaded(fmt.Sprintf("rebuilt arena from %s", change.Name))
	}
}

func decorationAttack() string {
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return ""
	}
	return spec.Decoration.Attack
}

func (g *Game) reloaded(msg string) {
	log.Print(msg)
	g.setStatus(msg)
}

func (g *Game) reloadFailed(change prefabs.Change, err error) {
	log.Printf("reload %s: %v", change.Path, err)
	g.setStatus(fmt.Sprintf("reload %s failed, keeping previous", change.Name))
}
