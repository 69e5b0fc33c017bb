package ui

import (
	"fmt"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/CirKit/internal/config"
	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// zoomLabel formats the toolbar zoom readout.
func zoomLabel(t scene.Transform) string {
	return fmt.Sprintf("Zoom: %d%%", int(math.Round(t.Scale*100)))
}

func (a *App) handleToolbar(gtx layout.Context) {
	if a.zoomInBtn.Clicked(gtx) {
		a.store.Dispatch(scene.ZoomStep{Direction: 1})
	}
	if a.zoomOutBtn.Clicked(gtx) {
		a.store.Dispatch(scene.ZoomStep{Direction: -1})
	}
	if a.fitBtn.Clicked(gtx) {
		a.store.Dispatch(scene.FitView{})
	}
	if a.resetBtn.Clicked(gtx) {
		a.store.Dispatch(scene.ResetView{})
	}
	if a.simBtn.Clicked(gtx) {
		running := a.state.ToggleSimulation()
		a.logger.Info("simulation toggled", zap.Bool("running", running))
	}
	if a.importBtn.Clicked(gtx) {
		a.openScenePicker()
	}
	if a.saveBtn.Clicked(gtx) {
		a.saveScene()
	}
	if a.clearBtn.Clicked(gtx) {
		n := len(a.store.Snapshot().Symbols)
		a.store.Dispatch(scene.ClearAll{})
		a.logger.Info("scene cleared", zap.Int("removed", n))
	}
	if a.viewMenu != nil && a.viewBtn.Clicked(gtx) {
		a.viewMenu.ToggleVisibility(gtx)
	}
}

func (a *App) layoutToolbar(gtx layout.Context, snap scene.Snapshot, st StateSnapshot) layout.Dimensions {
	a.handleToolbar(gtx)
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())

	th := a.gvTheme.Theme
	simIcon, simDesc := a.playIcon, "Run"
	if st.Simulating {
		simIcon, simDesc = a.stopIcon, "Stop"
	}

	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.H6(th, "CirKit")
				lbl.Color = a.opaqueFg()
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(24)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(90))
				return material.Body2(th, zoomLabel(snap.Transform)).Layout(gtx)
			}),
			layout.Rigid(a.iconButton(&a.zoomOutBtn, a.zoomOutIcon, "Zoom out")),
			layout.Rigid(a.iconButton(&a.zoomInBtn, a.zoomInIcon, "Zoom in")),
			layout.Rigid(a.textButton(&a.fitBtn, "Fit")),
			layout.Rigid(a.textButton(&a.resetBtn, "Reset")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(24)}.Layout),
			layout.Rigid(a.iconButton(&a.simBtn, simIcon, simDesc)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Body2(th, st.SimulationStatus()).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Rigid(a.iconButton(&a.importBtn, a.openIcon, "Import")),
			layout.Rigid(a.iconButton(&a.saveBtn, a.saveIcon, "Save")),
			layout.Rigid(a.iconButton(&a.clearBtn, a.clearIcon, "Clear")),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				dims := a.iconButton(&a.viewBtn, a.viewIcon, "View")(gtx)
				if a.viewMenu != nil {
					a.viewMenu.Layout(gtx, a.gvTheme)
				}
				return dims
			}),
		)
	})
}

// iconButton falls back to a text button when the icon failed to load.
func (a *App) iconButton(btn *widget.Clickable, icon *widget.Icon, desc string) layout.Widget {
	if icon == nil {
		return a.textButton(btn, desc)
	}
	return func(gtx layout.Context) layout.Dimensions {
		b := material.IconButton(a.gvTheme.Theme, btn, icon, desc)
		b.Size = unit.Dp(18)
		b.Inset = layout.UniformInset(unit.Dp(6))
		b.Background = a.gvTheme.Palette.ContrastBg
		b.Color = a.gvTheme.Palette.ContrastFg
		return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, b.Layout)
	}
}

func (a *App) textButton(btn *widget.Clickable, label string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		b := material.Button(a.gvTheme.Theme, btn, label)
		b.Inset = layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(10), Right: unit.Dp(10)}
		b.Background = a.gvTheme.Palette.ContrastBg
		b.Color = a.gvTheme.Palette.ContrastFg
		return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, b.Layout)
	}
}

type viewToggle struct {
	label string
	on    func(StateSnapshot) bool
	set   func(bool)
}

func (a *App) viewToggles() []viewToggle {
	return []viewToggle{
		{"Show grid", func(s StateSnapshot) bool { return s.ShowGrid }, a.setShowGrid},
		{"Dark mode", func(s StateSnapshot) bool { return s.DarkMode }, a.setDarkMode},
		{"Components panel", func(s StateSnapshot) bool { return s.LeftPanelVisible }, a.setLeftPanel},
		{"Properties panel", func(s StateSnapshot) bool { return s.RightPanelVisible }, a.setRightPanel},
	}
}

func (a *App) buildViewMenu() *menu.DropdownMenu {
	toggles := a.viewToggles()
	opts := make([]menu.MenuOption, 0, len(toggles))
	for _, t := range toggles {
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				t.set(!t.on(a.state.Snapshot()))
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				label := t.label
				if t.on(a.state.Snapshot()) {
					label = "✓ " + label
				} else {
					label = "   " + label
				}
				lbl := material.Body1(th.Theme, label)
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func (a *App) setShowGrid(show bool) {
	a.state.SetShowGrid(show)
	a.updateConfig(func(c *config.Config) { c.ShowGrid = show })
	a.logger.Info("grid visibility changed", zap.Bool("visible", show))
	a.invalidate()
}

func (a *App) setDarkMode(enabled bool) {
	a.state.SetDarkMode(enabled)
	a.applyPalette()
	a.updateConfig(func(c *config.Config) { c.DarkMode = enabled })
	if enabled {
		a.logger.Info("theme switched to dark mode")
	} else {
		a.logger.Info("theme switched to light mode")
	}
	a.invalidate()
}

func (a *App) setLeftPanel(visible bool) {
	a.state.SetLeftPanelVisible(visible)
	a.updateConfig(func(c *config.Config) { c.Panels.Left = visible })
	a.logger.Info("components panel toggled", zap.Bool("visible", visible))
	a.invalidate()
}

func (a *App) setRightPanel(visible bool) {
	a.state.SetRightPanelVisible(visible)
	a.updateConfig(func(c *config.Config) { c.Panels.Right = visible })
	a.logger.Info("properties panel toggled", zap.Bool("visible", visible))
	a.invalidate()
}
