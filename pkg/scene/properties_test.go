package scene

import "testing"

func TestDescribeRoundsLikeTheBrowser(t *testing.T) {
	props := Describe(Symbol{
		ID:       "resistor-4",
		Kind:     KindResistor,
		Position: Pt(2.5, -0.5),
		Rotation: 270,
	}, true)

	if props.Type != "Resistor" {
		t.Fatalf("type = %q", props.Type)
	}
	if props.Position != "x: 3, y: 0" {
		t.Fatalf("position = %q, want %q", props.Position, "x: 3, y: 0")
	}
	if props.Rotation != "270°" {
		t.Fatalf("rotation = %q", props.Rotation)
	}
	if props.ID != "resistor-4" || props.Placeholder() != "" {
		t.Fatalf("unexpected props %+v", props)
	}
}

func TestDescribeNothingSelected(t *testing.T) {
	props := DescribeSelection(Snapshot{})
	if props.Selected {
		t.Fatalf("empty snapshot reported a selection")
	}
	if props.Placeholder() != NoSelectionText {
		t.Fatalf("placeholder = %q", props.Placeholder())
	}
}

func TestReporterPushesOnlyOnSelectionChange(t *testing.T) {
	s := NewStore()
	var pushed []Properties
	r := NewReporter(s, func(p Properties) { pushed = append(pushed, p) })
	defer r.Close()

	if len(pushed) != 1 || pushed[0].Selected {
		t.Fatalf("initial push = %+v", pushed)
	}

	s.Dispatch(Resize{Width: 640, Height: 480})
	s.Dispatch(Zoom{At: ptr(1, 1), Direction: 1})
	if len(pushed) != 1 {
		t.Fatalf("view changes pushed %d times", len(pushed)-1)
	}

	s.Dispatch(Place{Kind: KindBattery, At: ptr(0, 0)})
	s.Dispatch(RotateSelected{})
	s.Dispatch(Select{ID: "battery-1"})

	if len(pushed) != 4 {
		t.Fatalf("got %d pushes, want 4", len(pushed))
	}
	if pushed[1].ID != "battery-1" || pushed[1].Rotation != "0°" {
		t.Fatalf("place push = %+v", pushed[1])
	}
	if pushed[2].Rotation != "90°" {
		t.Fatalf("rotate push = %+v", pushed[2])
	}
	if pushed[3].Selected {
		t.Fatalf("toggle push still selected: %+v", pushed[3])
	}
	if r.Current() != pushed[3] {
		t.Fatalf("Current() = %+v, want %+v", r.Current(), pushed[3])
	}
}
