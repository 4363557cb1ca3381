package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "prefabs")

// FileKind classifies a changed file so the game loop knows what to reload.
type FileKind int

const (
	FileOther FileKind = iota
	FileStats
	FileScript
	FileMap
)

func (k FileKind) String() string {
	switch k {
	case FileStats:
		return "stats"
	case FileScript:
		return "script"
	case FileMap:
		return "map"
	default:
		return "other"
	}
}

// Classify maps a path to its FileKind by extension.
func Classify(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FileStats
	case ".tengo":
		return FileScript
	case ".json":
		return FileMap
	default:
		return FileOther
	}
}

// Watcher reports writes to stat, script and map files once each file has
// gone quiet, so a burst of saves yields one event for the final contents.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
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
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	log.WithField("dirs", dirs).Info("watching for changes")
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

// debounce is how long a file must stay quiet before its change is reported.
const debounce = 100 * time.Millisecond

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]time.Time)
	var flush <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if Classify(event.Name) == FileOther {
				continue
			}
			pending[event.Name] = time.Now()
			if flush == nil {
				flush = time.After(debounce)
			}
		case now := <-flush:
			flush = nil
			var ready []string
			next := debounce
			for name, at := range pending {
				if quiet := now.Sub(at); quiet < debounce {
					next = min(next, debounce-quiet)
					continue
				}
				ready = append(ready, name)
			}
			sort.Strings(ready)
			for _, name := range ready {
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(pending) > 0 {
				flush = time.After(next)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.WithError(err).Warn("dropping watcher error")
			}
		case <-w.closeCh:
			return
		}
	}
}
