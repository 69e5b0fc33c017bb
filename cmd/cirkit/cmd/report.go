package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// SceneInfo is the structured summary printed by info and replay.
type SceneInfo struct {
	UUID       string         `json:"uuid,omitempty"`
	Components int            `json:"components"`
	Kinds      map[string]int `json:"kinds"`
	Scale      float64        `json:"scale"`
	Offset     [2]float64     `json:"offset"`
	Bounds     *BoundsInfo    `json:"bounds,omitempty"`
	Selection  string         `json:"selection,omitempty"`
	Symbols    []SymbolInfo   `json:"symbols"`
}

// BoundsInfo is the scene-space box around all symbols.
type BoundsInfo struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// SymbolInfo describes one placed symbol.
type SymbolInfo struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation int     `json:"rotation"`
	Locked   bool    `json:"locked,omitempty"`
}

func summarize(symbols []scene.Symbol, t scene.Transform, selection string, id uuid.UUID) SceneInfo {
	info := SceneInfo{
		Components: len(symbols),
		Kinds:      make(map[string]int),
		Scale:      t.Scale,
		Offset:     [2]float64{t.Offset.X, t.Offset.Y},
		Selection:  selection,
		Symbols:    make([]SymbolInfo, 0, len(symbols)),
	}
	if id != uuid.Nil {
		info.UUID = id.String()
	}
	for _, sym := range symbols {
		info.Kinds[sym.Kind.String()]++
		info.Symbols = append(info.Symbols, SymbolInfo{
			ID:       sym.ID,
			Kind:     sym.Kind.String(),
			X:        sym.Position.X,
			Y:        sym.Position.Y,
			Rotation: sym.Rotation,
			Locked:   sym.Locked,
		})
	}
	if b := scene.ContentBounds(symbols); !b.Empty() {
		info.Bounds = &BoundsInfo{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y}
	}
	return info
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func printSceneInfo(w io.Writer, info SceneInfo) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	label := r.NewStyle().Faint(true)

	fmt.Fprintln(w, title.Render("Scene"))
	if info.UUID != "" {
		fmt.Fprintf(w, "  %s %s\n", label.Render("UUID:"), info.UUID)
	}
	fmt.Fprintf(w, "  %s %d\n", label.Render("Components:"), info.Components)
	for _, k := range scene.Kinds() {
		if n := info.Kinds[k.String()]; n > 0 {
			fmt.Fprintf(w, "    %-10s %d\n", k.Label(), n)
		}
	}
	fmt.Fprintf(w, "  %s %d%% at (%s, %s)\n", label.Render("View:"),
		int(info.Scale*100+0.5), num(info.Offset[0]), num(info.Offset[1]))
	if info.Bounds != nil {
		fmt.Fprintf(w, "  %s (%s, %s) - (%s, %s)\n", label.Render("Bounds:"),
			num(info.Bounds.MinX), num(info.Bounds.MinY), num(info.Bounds.MaxX), num(info.Bounds.MaxY))
	}
	if len(info.Symbols) == 0 {
		return
	}

	rows := make([][]string, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		locked := ""
		if s.Locked {
			locked = "yes"
		}
		rows = append(rows, []string{s.ID, s.Kind, num(s.X), num(s.Y), strconv.Itoa(s.Rotation) + "°", locked})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "KIND", "X", "Y", "ROTATION", "LOCKED").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func printProperties(w io.Writer, p scene.Properties) {
	r := lipgloss.NewRenderer(w)
	fmt.Fprintln(w, r.NewStyle().Bold(true).Render("Properties"))
	if text := p.Placeholder(); text != "" {
		fmt.Fprintf(w, "  %s\n", text)
		return
	}
	fmt.Fprintf(w, "  Type:     %s\n", p.Type)
	fmt.Fprintf(w, "  Position: %s\n", p.Position)
	fmt.Fprintf(w, "  Rotation: %s\n", p.Rotation)
	fmt.Fprintf(w, "  ID:       %s\n", p.ID)
	if p.Locked {
		fmt.Fprintln(w, "  Locked:   yes")
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
