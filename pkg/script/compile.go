package script

import (
	"fmt"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// Compile translates a parsed script into scene actions, in order.
func Compile(s *Script) ([]scene.Action, error) {
	if s == nil {
		return nil, nil
	}
	var actions []scene.Action
	for _, cmd := range s.Commands {
		a, err := compileCommand(cmd)
		if err != nil {
			return nil, fmt.Errorf("script: %s: %w", cmd.Pos, err)
		}
		actions = append(actions, a...)
	}
	return actions, nil
}

func compileCommand(cmd *Command) ([]scene.Action, error) {
	switch {
	case cmd.Resize != nil:
		return one(scene.Resize{Width: cmd.Resize.Size.X, Height: cmd.Resize.Size.Y}), nil

	case cmd.Place != nil:
		kind, err := scene.ParseKind(cmd.Place.Kind)
		if err != nil {
			return nil, err
		}
		return one(scene.Place{Kind: kind, At: cmd.Place.At.point()}), nil

	case cmd.Select != nil:
		if cmd.Select.ID == "none" {
			return one(scene.Select{}), nil
		}
		return one(scene.Select{ID: cmd.Select.ID}), nil

	case cmd.Move != nil:
		return one(scene.Reposition{ID: cmd.Move.ID, To: *cmd.Move.To.point()}), nil

	case cmd.Rotate != nil:
		return one(scene.RotateSelected{}), nil

	case cmd.Lock != nil:
		return one(scene.SetLocked{ID: cmd.Lock.ID, Locked: cmd.Lock.Verb == "lock"}), nil

	case cmd.Zoom != nil:
		dir := 1
		if cmd.Zoom.Direction == "out" {
			dir = -1
		}
		if cmd.Zoom.At == nil {
			return one(scene.ZoomStep{Direction: dir}), nil
		}
		return one(scene.Zoom{At: cmd.Zoom.At.point(), Direction: dir}), nil

	case cmd.Pan != nil:
		actions := []scene.Action{scene.BeginPan{At: cmd.Pan.From.point()}}
		for _, to := range cmd.Pan.To {
			actions = append(actions, scene.UpdatePan{At: to.point()})
		}
		return append(actions, scene.EndPan{}), nil

	case cmd.View != nil:
		switch cmd.View.Verb {
		case "reset":
			return one(scene.ResetView{}), nil
		case "fit":
			return one(scene.FitView{}), nil
		case "clear":
			return one(scene.ClearAll{}), nil
		}
	}
	return nil, fmt.Errorf("empty command")
}

func one(a scene.Action) []scene.Action {
	return []scene.Action{a}
}

func (c *Coord) point() *scene.Point {
	p := scene.Pt(c.X, c.Y)
	return &p
}

// Run parses src, compiles it and dispatches the actions to store.
func Run(store *scene.Store, name, src string) error {
	p, err := NewParser()
	if err != nil {
		return err
	}
	s, err := p.ParseString(name, src)
	if err != nil {
		return err
	}
	actions, err := Compile(s)
	if err != nil {
		return err
	}
	store.Dispatch(actions...)
	return nil
}
