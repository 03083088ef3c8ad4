package ai

import (
	"fmt"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/linklike/collision"
	"github.com/milk9111/linklike/prefabs"
)

const aimDispatchScript = `
__result = aim(__dx, __dy)
`

// Aimer runs an aim script to pick which way an attack should face. Scripts
// define aim(dx, dy) returning "right", "up", "left", "down" or "" to keep the
// current facing.
type Aimer struct {
	mu         sync.Mutex
	scriptPath string
	compiled   *tengo.Compiled
}

func NewAimer(scriptPath string) (*Aimer, error) {
	if strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("ai: empty aim script path")
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("ai: load %s: %w", scriptPath, err)
	}
	return compileAimer(scriptPath, src)
}

func compileAimer(scriptPath string, src []byte) (*Aimer, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + aimDispatchScript))
	_ = script.Add("__dx", 0.0)
	_ = script.Add("__dy", 0.0)
	_ = script.Add("__result", "")
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", scriptPath, err)
	}
	return &Aimer{scriptPath: scriptPath, compiled: compiled}, nil
}

func (a *Aimer) ScriptPath() string {
	return a.scriptPath
}

// Clone returns an Aimer sharing the compiled bytecode but with its own
// globals.
func (a *Aimer) Clone() *Aimer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return &Aimer{scriptPath: a.scriptPath, compiled: a.compiled.Clone()}
}

// Aim returns the direction to face when attacking from toward to.
func (a *Aimer) Aim(from, to cp.Vector, current collision.Direction) (collision.Direction, error) {
	d := to.Sub(from)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.compiled.Set("__dx", d.X); err != nil {
		return current, err
	}
	if err := a.compiled.Set("__dy", d.Y); err != nil {
		return current, err
	}
	if err := a.compiled.Run(); err != nil {
		return current, fmt.Errorf("ai: run %s: %w", a.scriptPath, err)
	}

	name := strings.TrimSpace(a.compiled.Get("__result").String())
	if name == "" {
		return current, nil
	}
	dir, err := collision.ParseDirection(name)
	if err != nil {
		return current, fmt.Errorf("ai: %s: %w", a.scriptPath, err)
	}
	return dir, nil
}
