package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gioui.org/x/explorer"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/CirKit/internal/config"
	"github.com/OpenTraceLab/CirKit/internal/watch"
	"github.com/OpenTraceLab/CirKit/pkg/scenefile"
)

func (a *App) openInitialScene() {
	path := a.opts.ScenePath
	if path == "" {
		a.cfgMu.Lock()
		path = a.cfg.LastScene
		a.cfgMu.Unlock()
		if path == "" {
			return
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug("last scene no longer exists", zap.String("path", path))
			return
		}
	}

	if err := a.openScene(path); err != nil {
		a.reportError("opening scene failed", err)
		return
	}
	if a.opts.Watch && a.opts.ScenePath != "" {
		a.watchScene(path)
	}
}

// openScene replaces the current scene with the one stored at path.
func (a *App) openScene(path string) error {
	doc, err := scenefile.Load(path)
	if err != nil {
		return err
	}
	a.applyDocument(path, doc)
	a.logger.Info("scene opened", zap.String("path", path), zap.Int("components", len(doc.Symbols)))
	return nil
}

func (a *App) applyDocument(path string, doc scenefile.Document) {
	a.store.Dispatch(doc.Action())
	a.state.SetScene(path, doc.UUID)
	a.state.SetError(nil)
	a.state.SetStatus("Opened " + path)
	a.updateConfig(func(c *config.Config) { c.LastScene = path })
	a.invalidate()
}

func (a *App) openScenePicker() {
	go func() {
		file, err := a.explorer.ChooseFile(strings.TrimPrefix(scenefile.Extension, "."))
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.reportError("file picker failed", err)
			}
			return
		}
		defer file.Close()

		doc, err := scenefile.Read(file)
		if err != nil {
			a.reportError("importing scene failed", err)
			return
		}
		path := ""
		if f, ok := file.(*os.File); ok {
			path = f.Name()
		}
		a.applyDocument(path, doc)
		a.logger.Info("scene imported", zap.String("path", path), zap.Int("components", len(doc.Symbols)))
	}()
}

// saveScene writes to the current scene file, or asks for one.
func (a *App) saveScene() {
	path, id := a.state.Scene()
	if path == "" {
		a.saveScenePicker()
		return
	}
	doc := scenefile.FromSnapshot(a.store.Snapshot(), id)
	if err := scenefile.Save(path, doc); err != nil {
		a.reportError("saving scene failed", err)
		return
	}
	a.written.record(path)
	a.state.SetScene(path, doc.UUID)
	a.state.SetStatus("Saved " + path)
	a.logger.Info("scene saved", zap.String("path", path), zap.Int("components", len(doc.Symbols)))
}

func (a *App) saveScenePicker() {
	_, id := a.state.Scene()
	doc := scenefile.FromSnapshot(a.store.Snapshot(), id)

	go func() {
		file, err := a.explorer.CreateFile("scene" + scenefile.Extension)
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.reportError("file picker failed", err)
			}
			return
		}
		if err := scenefile.Write(file, doc); err != nil {
			file.Close()
			a.reportError("saving scene failed", err)
			return
		}
		if err := file.Close(); err != nil {
			a.reportError("saving scene failed", fmt.Errorf("close: %w", err))
			return
		}

		path := ""
		if f, ok := file.(*os.File); ok {
			path = f.Name()
			a.written.record(path)
			a.updateConfig(func(c *config.Config) { c.LastScene = path })
		}
		a.state.SetScene(path, doc.UUID)
		a.state.SetStatus("Saved " + path)
		a.logger.Info("scene saved", zap.String("path", path), zap.Int("components", len(doc.Symbols)))
		a.invalidate()
	}()
}

// watchScene reloads path whenever another program rewrites it.
func (a *App) watchScene(path string) {
	fw, err := watch.New(path, func(p string) {
		if a.written.matches(p) {
			a.logger.Debug("ignoring change from our own save", zap.String("path", p))
			return
		}
		if err := a.openScene(p); err != nil {
			a.reportError("reloading scene failed", err)
		}
	}, a.logger.Named("watch"))
	if err != nil {
		a.reportError("watching scene failed", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := fw.Start(ctx); err != nil {
		cancel()
		fw.Stop()
		a.reportError("watching scene failed", err)
		return
	}
	a.watcher = fw
	a.stopWatcher = cancel
	a.logger.Info("watching scene for changes", zap.String("path", path))
}

// ownWrites remembers the modification time of files the editor saved, so
// the watcher can tell them apart from edits made by other programs.
type ownWrites struct {
	mu      sync.Mutex
	modTime map[string]time.Time
}

func (w *ownWrites) record(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.modTime == nil {
		w.modTime = make(map[string]time.Time)
	}
	w.modTime[filepath.Clean(path)] = info.ModTime()
}

// matches reports whether path still holds the content we last wrote.
func (w *ownWrites) matches(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	mod, ok := w.modTime[filepath.Clean(path)]
	return ok && mod.Equal(info.ModTime())
}
