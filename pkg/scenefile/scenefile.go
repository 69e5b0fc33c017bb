// Package scenefile reads and writes CirKit scenes as S-expressions:
//
//	(cirkit_scene
//	  (version 1)
//	  (generator cirkit)
//	  (uuid 6f1c2a3e-...)
//	  (transform (offset 0 0) (scale 1))
//	  (symbol (id resistor-1) (kind resistor) (at 100 100) (rotation 90) (locked no)))
package scenefile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chewxy/sexp"
	"github.com/google/uuid"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

const (
	// Version is the format revision written by this package.
	Version = 1
	// Extension is the conventional file suffix.
	Extension = ".cirkit"

	rootKey   = "cirkit_scene"
	generator = "cirkit"
)

// Document is a saved scene.
type Document struct {
	UUID      uuid.UUID
	Transform scene.Transform
	Symbols   []scene.Symbol
}

// FromSnapshot captures the persistent parts of a scene. A nil id is
// replaced by a fresh random one.
func FromSnapshot(snap scene.Snapshot, id uuid.UUID) Document {
	if id == uuid.Nil {
		id = uuid.New()
	}
	symbols := make([]scene.Symbol, len(snap.Symbols))
	copy(symbols, snap.Symbols)
	return Document{UUID: id, Transform: snap.Transform, Symbols: symbols}
}

// Action returns the store action that loads the document.
func (d Document) Action() scene.Action {
	t := d.Transform
	return scene.Load{Symbols: d.Symbols, Transform: &t}
}

// Write encodes doc.
func Write(w io.Writer, doc Document) error {
	if doc.UUID == uuid.Nil {
		doc.UUID = uuid.New()
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "(%s\n", rootKey)
	fmt.Fprintf(bw, "  (version %d)\n", Version)
	fmt.Fprintf(bw, "  (generator %s)\n", generator)
	fmt.Fprintf(bw, "  (uuid %s)\n", doc.UUID)
	fmt.Fprintf(bw, "  (transform (offset %s %s) (scale %s))\n",
		num(doc.Transform.Offset.X), num(doc.Transform.Offset.Y), num(doc.Transform.Scale))
	for _, s := range doc.Symbols {
		if !s.Kind.Valid() {
			return fmt.Errorf("scenefile: symbol %q has no valid kind", s.ID)
		}
		fmt.Fprintf(bw, "  (symbol (id %s) (kind %s) (at %s %s) (rotation %d) (locked %s))\n",
			s.ID, s.Kind, num(s.Position.X), num(s.Position.Y), s.Rotation, yesNo(s.Locked))
	}
	fmt.Fprintln(bw, ")")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("scenefile: write: %w", err)
	}
	return nil
}

// Read decodes a document and validates it.
func Read(r io.Reader) (Document, error) {
	exprs, err := sexp.Parse(r)
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: parse: %w", err)
	}

	var root sexp.Sexp
	for _, e := range exprs {
		if e != nil && !e.IsLeaf() && keyOf(e) == rootKey {
			root = e
			break
		}
	}
	if root == nil {
		return Document{}, fmt.Errorf("scenefile: no (%s) expression", rootKey)
	}

	version, err := intField(root, "version")
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: %w", err)
	}
	if version < 1 || version > Version {
		return Document{}, fmt.Errorf("scenefile: unsupported version %d", version)
	}

	var doc Document
	if idText, err := stringField(root, "uuid"); err == nil {
		doc.UUID, err = uuid.Parse(idText)
		if err != nil {
			return Document{}, fmt.Errorf("scenefile: bad uuid: %w", err)
		}
	}

	doc.Transform, err = readTransform(root)
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: %w", err)
	}

	seen := make(map[string]bool)
	for i, node := range findAllNodes(root, "symbol") {
		sym, err := readSymbol(node)
		if err != nil {
			return Document{}, fmt.Errorf("scenefile: symbol %d: %w", i, err)
		}
		if seen[sym.ID] {
			return Document{}, fmt.Errorf("scenefile: duplicate symbol id %q", sym.ID)
		}
		seen[sym.ID] = true
		doc.Symbols = append(doc.Symbols, sym)
	}
	return doc, nil
}

func readTransform(root sexp.Sexp) (scene.Transform, error) {
	node, ok := findNode(root, "transform")
	if !ok {
		return scene.IdentityTransform(), nil
	}
	offset, err := floatsField(node, "offset", 2)
	if err != nil {
		return scene.Transform{}, err
	}
	scale, err := floatsField(node, "scale", 1)
	if err != nil {
		return scene.Transform{}, err
	}
	if scale[0] < scene.MinScale || scale[0] > scene.MaxScale || math.IsNaN(scale[0]) {
		return scene.Transform{}, fmt.Errorf("scale %v outside [%v, %v]", scale[0], scene.MinScale, scene.MaxScale)
	}
	return scene.Transform{Offset: scene.Pt(offset[0], offset[1]), Scale: scale[0]}, nil
}

func readSymbol(node sexp.Sexp) (scene.Symbol, error) {
	id, err := stringField(node, "id")
	if err != nil {
		return scene.Symbol{}, err
	}
	kindText, err := stringField(node, "kind")
	if err != nil {
		return scene.Symbol{}, err
	}
	kind, err := scene.ParseKind(kindText)
	if err != nil {
		return scene.Symbol{}, err
	}
	at, err := floatsField(node, "at", 2)
	if err != nil {
		return scene.Symbol{}, err
	}
	rotation, err := intField(node, "rotation")
	if err != nil {
		return scene.Symbol{}, err
	}
	if rotation < 0 || rotation >= 360 || rotation%90 != 0 {
		return scene.Symbol{}, fmt.Errorf("rotation %d is not one of 0, 90, 180, 270", rotation)
	}
	locked, err := boolField(node, "locked", false)
	if err != nil {
		return scene.Symbol{}, err
	}
	return scene.Symbol{
		ID:       id,
		Kind:     kind,
		Position: scene.Pt(at[0], at[1]),
		Rotation: rotation,
		Locked:   locked,
	}, nil
}

// Save writes doc to path, replacing the file only once the write succeeded.
func Save(path string, doc Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cirkit-*")
	if err != nil {
		return fmt.Errorf("scenefile: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("scenefile: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("scenefile: rename: %w", err)
	}
	return nil
}

// Load reads a document from path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: open: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
