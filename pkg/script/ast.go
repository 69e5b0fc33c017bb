package script

import "github.com/alecthomas/participle/v2/lexer"

// Script is a sequence of commands.
type Script struct {
	Commands []*Command `@@*`
}

// Command is one scene operation.
type Command struct {
	Pos lexer.Position

	Resize *Resize `  @@`
	Place  *Place  `| @@`
	Select *Select `| @@`
	Move   *Move   `| @@`
	Rotate *Rotate `| @@`
	Lock   *Lock   `| @@`
	Zoom   *Zoom   `| @@`
	Pan    *Pan    `| @@`
	View   *View   `| @@`
}

// Coord is a pair of numbers, optionally comma separated.
// Example: 100 200 or 100, 200
type Coord struct {
	X float64 `@Number Comma?`
	Y float64 `@Number`
}

// Resize sets the viewport size.
// Example: resize 800 600
type Resize struct {
	Size *Coord `"resize" @@`
}

// Place drops a symbol at a viewport point.
// Example: place resistor at 100 100
type Place struct {
	Kind string `"place" @Ident`
	At   *Coord `"at" @@`
}

// Select toggles the selection of a symbol; "none" clears it.
// Example: select resistor-1
type Select struct {
	ID string `"select" @Ident`
}

// Move repositions a symbol in scene coordinates.
// Example: move resistor-1 to 40 60
type Move struct {
	ID string `"move" @Ident`
	To *Coord `"to" @@`
}

// Rotate turns the selected symbol.
type Rotate struct {
	Rotate bool `@"rotate"`
}

// Lock pins or unpins a symbol.
// Example: lock resistor-1
type Lock struct {
	Verb string `@( "lock" | "unlock" )`
	ID   string `@Ident`
}

// Zoom zooms at a viewport point, or steps around the centre without one.
// Example: zoom in at 400 300
type Zoom struct {
	Direction string `"zoom" @( "in" | "out" )`
	At        *Coord `( "at" @@ )?`
}

// Pan drags the view along a path of viewport points.
// Example: pan from 0 0 to 50 0
type Pan struct {
	From *Coord   `"pan" "from" @@`
	To   []*Coord `( "to" @@ )+`
}

// View resets, fits or clears the scene.
type View struct {
	Verb string `@( "reset" | "fit" | "clear" )`
}
