package piece

// Position anchors the top-left corner of a piece's bounding box. X is the
// board column, Y is the level of the box's top row counted up from the floor.
type Position struct {
	X int
	Y int
}

// SpawnPosition is where new pieces enter the board: column 3, inside the
// hidden rows above the visible playfield.
var SpawnPosition = Position{X: 3, Y: 22}

func (p *Position) MoveLeft() {
	p.X--
}

func (p *Position) MoveRight() {
	p.X++
}

func (p *Position) SetX(x int) {
	p.X = x
}

func (p *Position) SetY(y int) {
	p.Y = y
}
