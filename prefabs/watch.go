package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type ChangeKind int

const (
	ChangeAttack ChangeKind = iota
	ChangeScript
	ChangeConfig
)

// Change reports an edited prefab. Name is the attack or script name, or the
// base file name for other yaml.
type Change struct {
	Kind ChangeKind
	Name string
	Path string
}

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchDirs returns the prefab directories under DiskDir that exist.
func WatchDirs() []string {
	var dirs []string
	for _, dir := range []string{DiskDir, filepath.Join(DiskDir, "attacks"), filepath.Join(DiskDir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			// Editors often emit several writes per save.
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	slash := filepath.ToSlash(path)
	base := filepath.Base(slash)
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	parent := filepath.Base(filepath.Dir(slash))

	switch {
	case ext == ".tengo":
		return Change{Kind: ChangeScript, Name: base, Path: path}, true
	case ext == ".yaml" || ext == ".yml":
		if parent == "attacks" {
			return Change{Kind: ChangeAttack, Name: name, Path: path}, true
		}
		return Change{Kind: ChangeConfig, Name: base, Path: path}, true
	}
	return Change{}, false
}
