package jump

// Direction restricts which side of the cursor a jump considers.
type Direction uint8

const (
	// DirectionAnywhere considers targets on both sides of the cursor.
	DirectionAnywhere Direction = iota

	// DirectionBeforeCursor considers only targets before the cursor.
	DirectionBeforeCursor

	// DirectionAfterCursor considers only targets after the cursor.
	DirectionAfterCursor
)

// Position is a cursor location: a line number and a byte column within
// that line.
type Position struct {
	Line int
	Col  int
}

// Window describes the visible region of the window being scanned.
type Window struct {
	// TopLine and BottomLine are the first and last visible lines.
	TopLine    int
	BottomLine int

	// ColumnFirst and ColumnLast are the first and last visible display
	// cells. ColumnFirst is the column the vertical matcher targets.
	ColumnFirst int
	ColumnLast  int
}

// Context carries the jump invocation state every matcher receives.
type Context struct {
	Direction Direction
	Cursor    Position
	Window    Window
}
