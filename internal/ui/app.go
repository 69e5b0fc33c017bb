// Package ui hosts the CirKit editor window: toolbar, component palette,
// scene canvas, properties panel and log pane.
package ui

import (
	"context"
	"image/color"
	"sync"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/CirKit/assets"
	"github.com/OpenTraceLab/CirKit/internal/config"
	"github.com/OpenTraceLab/CirKit/internal/watch"
	"github.com/OpenTraceLab/CirKit/pkg/interact"
	"github.com/OpenTraceLab/CirKit/pkg/render"
	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// App drives the editor window.
type App struct {
	window *app.Window
	ops    op.Ops
	logger *zap.Logger
	opts   Options

	cfgMu sync.Mutex
	cfg   config.Config

	state    *AppState
	store    *scene.Store
	router   *interact.Router
	keymap   *interact.Keymap
	reporter *scene.Reporter

	unmountKeys func()
	unsubscribe func()

	gvTheme *theme.Theme
	icons   *render.IconSet
	canvas  *render.Canvas

	explorer    *explorer.Explorer
	watcher     *watch.FileWatcher
	stopWatcher context.CancelFunc
	written     ownWrites

	inputTag bool

	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	fitBtn     widget.Clickable
	resetBtn   widget.Clickable
	simBtn     widget.Clickable
	importBtn  widget.Clickable
	saveBtn    widget.Clickable
	clearBtn   widget.Clickable
	viewBtn    widget.Clickable

	zoomInIcon  *widget.Icon
	zoomOutIcon *widget.Icon
	playIcon    *widget.Icon
	stopIcon    *widget.Icon
	openIcon    *widget.Icon
	saveIcon    *widget.Icon
	clearIcon   *widget.Icon
	viewIcon    *widget.Icon

	viewMenu *menu.DropdownMenu
	logList  widget.List
}

// New creates the editor for w. The window is configured by the caller.
func New(w *app.Window, opts Options) *App {
	if w == nil {
		w = new(app.Window)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		window:  w,
		logger:  logger,
		opts:    opts,
		cfg:     opts.Config,
		state:   NewState(),
		store:   scene.NewStore(),
		keymap:  interact.NewKeymap(),
		gvTheme: theme.NewTheme("", nil, true),
		icons:   render.NewIconSet(assets.Icons),
	}
	a.router = interact.NewRouter(a.store)
	a.explorer = explorer.NewExplorer(w)

	a.state.SetAppVersion(opts.Version)
	a.state.SetDarkMode(a.cfg.DarkMode)
	a.state.SetShowGrid(a.cfg.ShowGrid)
	a.state.SetLeftPanelVisible(a.cfg.Panels.Left)
	a.state.SetRightPanelVisible(a.cfg.Panels.Right)

	if opts.Sink != nil {
		opts.Sink.Attach(func(line string) {
			a.state.AppendLog(line)
			a.invalidate()
		})
	}

	a.zoomInIcon = loadIcon(icons.ContentAdd)
	a.zoomOutIcon = loadIcon(icons.ContentRemove)
	a.playIcon = loadIcon(icons.AVPlayArrow)
	a.stopIcon = loadIcon(icons.AVStop)
	a.openIcon = loadIcon(icons.FileFolderOpen)
	a.saveIcon = loadIcon(icons.ContentSave)
	a.clearIcon = loadIcon(icons.ActionDelete)
	a.viewIcon = loadIcon(icons.NavigationMenu)
	a.viewMenu = a.buildViewMenu()

	a.logList.Axis = layout.Vertical
	a.logList.ScrollToEnd = true

	a.applyPalette()

	a.unsubscribe = a.store.Subscribe(func(scene.Snapshot) { a.invalidate() })
	a.reporter = scene.NewReporter(a.store, a.state.SetProperties)
	a.unmountKeys = interact.MountCanvas(a.keymap, interact.CanvasKeys{
		Rotate: a.cfg.Keys.Rotate,
		Lock:   a.cfg.Keys.Lock,
	})

	a.logger.Info("editor initialized", zap.String("version", a.state.Snapshot().AppVersion))
	a.logger.Info("drag components from the palette, right-drag to pan, wheel to zoom")
	return a
}

func loadIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		return nil
	}
	return icon
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	defer a.shutdown()
	a.openInitialScene()

	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) shutdown() {
	a.unmountKeys()
	a.reporter.Close()
	a.unsubscribe()
	if a.stopWatcher != nil {
		a.stopWatcher()
		a.watcher.Stop()
	}
	if a.opts.Sink != nil {
		a.opts.Sink.Attach(nil)
	}
	a.saveConfig()
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	st := a.state.Snapshot()
	size := gtx.Constraints.Max

	a.router.SetLayout(interact.NewLayout(
		scene.Size{Width: float64(size.X), Height: float64(size.Y)},
		interact.DefaultMetrics(float64(gtx.Metric.PxPerDp)),
		st.LeftPanelVisible, st.RightPanelVisible,
	))
	a.handleKeys(gtx)
	a.handlePointer(gtx)

	l := a.router.Layout()
	snap := a.store.Snapshot()

	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: size}.Op())

	region(gtx, l.Canvas, func(gtx layout.Context) layout.Dimensions {
		return a.layoutCanvas(gtx, snap, st)
	})
	region(gtx, l.Palette, func(gtx layout.Context) layout.Dimensions {
		return a.layoutPalette(gtx, l)
	})
	region(gtx, l.Properties, func(gtx layout.Context) layout.Dimensions {
		return a.layoutProperties(gtx, st)
	})
	region(gtx, l.Status, func(gtx layout.Context) layout.Dimensions {
		return a.layoutStatusBar(gtx, snap, st)
	})
	region(gtx, l.Toolbar, func(gtx layout.Context) layout.Dimensions {
		return a.layoutToolbar(gtx, snap, st)
	})

	if kind, at, ok := a.router.PaletteDrag(); ok {
		a.canvas.DrawGhost(gtx.Ops, kind, f32.Pt(float32(at.X), float32(at.Y)), float32(snap.Transform.Scale))
	}

	a.registerInput(gtx)
	return layout.Dimensions{Size: size}
}

// region lays out w inside r, in r's own coordinate space.
func region(gtx layout.Context, r interact.Rect, w layout.Widget) {
	rect := pixelRect(r)
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	defer op.Offset(rect.Min).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: rect.Size()}.Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(rect.Size())
	w(gtx)
}

func (a *App) handleKeys(gtx layout.Context) {
	for _, name := range a.keymap.Keys() {
		for {
			ev, ok := gtx.Event(key.Filter{Name: key.Name(name)})
			if !ok {
				break
			}
			ke, ok := ev.(key.Event)
			if !ok || ke.State != key.Press {
				continue
			}
			if a.keymap.Press(a.store, name) {
				a.logger.Debug("shortcut", zap.String("key", name))
			}
		}
	}
}

func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &a.inputTag,
			Kinds:   pointerKinds,
			ScrollY: pointer.ScrollRange{Min: -1 << 16, Max: 1 << 16},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if in, ok := toPointerEvent(pe); ok {
			a.router.Handle(in)
			a.invalidate()
		}
	}
}

// registerInput covers the whole window with a pass-through input area so
// the router sees every pointer event while widgets below still get theirs.
func (a *App) registerInput(gtx layout.Context) {
	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &a.inputTag)
	if c := a.router.Cursor(); c != interact.CursorDefault {
		cursorFor(c).Add(gtx.Ops)
	}
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	dark := a.state.Snapshot().DarkMode
	if dark {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}

	canvasTheme := render.ThemeLight
	if dark {
		canvasTheme = render.ThemeDark
	}
	colors := render.ColorsFor(canvasTheme)
	reg, errs := render.NewRegistry(a.icons, colors)

	opts := render.DefaultOptions()
	if a.canvas != nil {
		opts = a.canvas.Options
	} else {
		for _, err := range errs {
			a.logger.Warn("symbol icon unavailable, drawing placeholder", zap.Error(err))
		}
	}
	a.canvas = render.NewCanvas(reg, colors)
	a.canvas.Options = opts
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// reportError logs err and shows it in the status bar.
func (a *App) reportError(msg string, err error) {
	a.logger.Error(msg, zap.Error(err))
	a.state.SetError(err)
	a.invalidate()
}

func (a *App) updateConfig(fn func(*config.Config)) {
	a.cfgMu.Lock()
	fn(&a.cfg)
	a.cfgMu.Unlock()
	a.saveConfig()
}

func (a *App) saveConfig() {
	if a.opts.ConfigPath == "" {
		return
	}
	a.cfgMu.Lock()
	cfg := a.cfg
	a.cfgMu.Unlock()
	if err := config.Save(a.opts.ConfigPath, cfg); err != nil {
		a.logger.Warn("saving config failed", zap.Error(err))
	}
}

func (a *App) opaqueFg() color.NRGBA {
	fg := a.gvTheme.Palette.Fg
	fg.A = 0xFF
	return fg
}

func (a *App) mutedFg() color.NRGBA {
	fg := a.opaqueFg()
	fg.A = 0xAA
	return fg
}
