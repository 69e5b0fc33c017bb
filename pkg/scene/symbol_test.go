package scene

import "testing"

func TestSymbolContainsFollowsRotation(t *testing.T) {
	sym := Symbol{ID: "resistor-1", Kind: KindResistor}

	if !sym.Contains(Pt(30, 10)) {
		t.Fatalf("unrotated symbol should contain (30,10)")
	}
	if sym.Contains(Pt(-10, 30)) {
		t.Fatalf("unrotated symbol should not contain (-10,30)")
	}

	sym.Rotation = 90
	if !sym.Contains(Pt(-10, 30)) {
		t.Fatalf("rotated symbol should contain (-10,30)")
	}
	if sym.Contains(Pt(30, 10)) {
		t.Fatalf("rotated symbol should not contain (30,10)")
	}
}

func TestSymbolAtPrefersTopmost(t *testing.T) {
	symbols := []Symbol{
		{ID: "resistor-1", Kind: KindResistor, Position: Pt(0, 0)},
		{ID: "battery-2", Kind: KindBattery, Position: Pt(30, 5)},
	}
	got, ok := SymbolAt(symbols, Pt(40, 10))
	if !ok || got.ID != "battery-2" {
		t.Fatalf("SymbolAt overlap = %q, %v", got.ID, ok)
	}
	got, ok = SymbolAt(symbols, Pt(5, 5))
	if !ok || got.ID != "resistor-1" {
		t.Fatalf("SymbolAt = %q, %v", got.ID, ok)
	}
	if _, ok := SymbolAt(symbols, Pt(500, 500)); ok {
		t.Fatalf("SymbolAt hit empty space")
	}
}

func TestContentBounds(t *testing.T) {
	if !ContentBounds(nil).Empty() {
		t.Fatalf("no symbols should give empty bounds")
	}
	b := ContentBounds([]Symbol{
		{Position: Pt(0, 0)},
		{Position: Pt(100, 50), Rotation: 180},
	})
	if b.Min.X < -1e-9 || b.Min.X > 1e-9 || b.Min.Y < -1e-9 || b.Min.Y > 1e-9 {
		t.Fatalf("min = %+v, want (0,0)", b.Min)
	}
	if b.Max.X < 100-1e-9 || b.Max.X > 100+1e-9 || b.Max.Y < 50-1e-9 || b.Max.Y > 50+1e-9 {
		t.Fatalf("max = %+v, want (100,50)", b.Max)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}
	if _, err := ParseKind("transistor"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
