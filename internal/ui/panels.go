package ui

import (
	"fmt"
	"image"
	"path/filepath"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/CirKit/pkg/interact"
	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

var instructions = []string{
	"Right-click + drag to pan",
	"Mouse wheel to zoom",
	"Drag components from sidebar",
}

func (a *App) layoutCanvas(gtx layout.Context, snap scene.Snapshot, st StateSnapshot) layout.Dimensions {
	a.canvas.Options.ShowGrid = st.ShowGrid
	a.canvas.Draw(gtx.Ops, gtx.Constraints.Max, snap)

	// Instructions card in the top-left corner
	layout.Inset{Top: unit.Dp(12), Left: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = image.Point{}
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				bg := a.gvTheme.Palette.Bg
				bg.A = 0xDD
				rr := gtx.Dp(unit.Dp(6))
				paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Op(gtx.Ops))
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					children := make([]layout.FlexChild, 0, len(instructions))
					for _, line := range instructions {
						children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							lbl := material.Caption(a.gvTheme.Theme, line)
							lbl.Color = a.canvas.Colors.Hint
							return lbl.Layout(gtx)
						}))
					}
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
				})
			},
		)
	})
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (a *App) layoutPalette(gtx layout.Context, l interact.Layout) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: size}.Op())

	m := l.Metrics()
	header := image.Pt(size.X, int(m.PaletteHeader))
	func() {
		gtx := gtx
		gtx.Constraints = layout.Exact(header)
		layout.Inset{Left: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.W.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Subtitle1(a.gvTheme.Theme, "Components")
				lbl.Color = a.opaqueFg()
				return lbl.Layout(gtx)
			})
		})
	}()

	dragging, _, isDragging := a.router.PaletteDrag()
	for i, kind := range scene.Kinds() {
		item := pixelRect(l.PaletteItem(i)).Sub(pixelRect(l.Palette).Min)
		if item.Max.Y > size.Y {
			break
		}
		a.layoutPaletteItem(gtx, item, kind, isDragging && dragging == kind)
	}
	return layout.Dimensions{Size: size}
}

func (a *App) layoutPaletteItem(gtx layout.Context, item image.Rectangle, kind scene.Kind, active bool) {
	defer op.Offset(item.Min).Push(gtx.Ops).Pop()

	pad := gtx.Dp(unit.Dp(6))
	card := image.Rect(pad, pad/2, item.Dx()-pad, item.Dy()-pad/2)
	bg := a.gvTheme.Palette.Bg
	if active {
		bg = a.gvTheme.Palette.ContrastBg
		bg.A = 0x40
	}
	paint.FillShape(gtx.Ops, bg, clip.UniformRRect(card, gtx.Dp(unit.Dp(8))).Op(gtx.Ops))

	// Symbol preview at one scene unit per dp
	scale := gtx.Metric.PxPerDp
	iconH := float32(scene.SymbolHeight) * scale
	origin := f32.Pt(float32(card.Min.X+pad), float32(card.Min.Y)+(float32(card.Dy())-iconH)/2)
	t := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale)).Offset(origin)).Push(gtx.Ops)
	a.canvas.Registry.For(kind).Draw(gtx.Ops)
	t.Pop()

	labelX := card.Min.X + pad*2 + int(float32(scene.SymbolWidth)*scale)
	off := op.Offset(image.Pt(labelX, card.Min.Y)).Push(gtx.Ops)
	lgtx := gtx
	lgtx.Constraints = layout.Exact(image.Pt(max(card.Max.X-labelX, 0), card.Dy()))
	layout.W.Layout(lgtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(a.gvTheme.Theme, kind.Label())
		lbl.Color = a.opaqueFg()
		return lbl.Layout(gtx)
	})
	off.Pop()
}

type propertyRow struct {
	label, value string
}

// propertyRows lists the fields shown for a selected symbol.
func propertyRows(p scene.Properties) []propertyRow {
	if !p.Selected {
		return nil
	}
	locked := "No"
	if p.Locked {
		locked = "Yes"
	}
	return []propertyRow{
		{"Type", p.Type},
		{"Position", p.Position},
		{"Rotation", p.Rotation},
		{"ID", p.ID},
		{"Locked", locked},
	}
}

func (a *App) layoutProperties(gtx layout.Context, st StateSnapshot) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())
	th := a.gvTheme.Theme

	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Subtitle1(th, "Properties")
				lbl.Color = a.opaqueFg()
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if text := st.Properties.Placeholder(); text != "" {
					lbl := material.Body2(th, text)
					lbl.Color = a.mutedFg()
					return lbl.Layout(gtx)
				}
				rows := propertyRows(st.Properties)
				children := make([]layout.FlexChild, 0, len(rows))
				for _, row := range rows {
					children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									gtx.Constraints.Min.X = gtx.Dp(unit.Dp(80))
									lbl := material.Body2(th, row.label)
									lbl.Color = a.mutedFg()
									return lbl.Layout(gtx)
								}),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									lbl := material.Body2(th, row.value)
									lbl.Color = a.opaqueFg()
									return lbl.Layout(gtx)
								}),
							)
						})
					}))
				}
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Subtitle2(th, "Log")
				lbl.Color = a.opaqueFg()
				return lbl.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return a.layoutLogPane(gtx, st.Logs)
			}),
		)
	})
}

func (a *App) layoutLogPane(gtx layout.Context, logs []string) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: size}.Op())
	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		return material.List(a.gvTheme.Theme, &a.logList).Layout(gtx, len(logs), func(gtx layout.Context, i int) layout.Dimensions {
			lbl := material.Caption(a.gvTheme.Theme, logs[i])
			lbl.Color = a.opaqueFg()
			return lbl.Layout(gtx)
		})
	})
}

func (a *App) layoutStatusBar(gtx layout.Context, snap scene.Snapshot, st StateSnapshot) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())
	th := a.gvTheme.Theme

	sceneName := "unsaved scene"
	if st.ScenePath != "" {
		sceneName = filepath.Base(st.ScenePath)
	}

	inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
				return layout.W.Layout(gtx, material.Body2(th, st.Status).Layout)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				text := fmt.Sprintf("%s · %d components · %s", sceneName, len(snap.Symbols), st.SimulationStatus())
				lbl := material.Body2(th, text)
				lbl.Color = a.mutedFg()
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(th, "v"+st.AppVersion)
				lbl.Color = a.mutedFg()
				return lbl.Layout(gtx)
			}),
		)
	})
}
