package fractal

// CommandType identifies the kind of recorded surface call.
type CommandType uint8

const (
	CommandClear        CommandType = iota // Clear
	CommandSetColor                        // SetFillColor
	CommandFillTriangle                    // FillTriangle
	CommandFillRect                        // FillRect
	CommandPush                            // Push
	CommandPop                             // Pop
	CommandTranslate                       // Translate
	CommandScale                           // Scale
)

var commandNames = [...]string{
	CommandClear:        "clear",
	CommandSetColor:     "setColor",
	CommandFillTriangle: "fillTriangle",
	CommandFillRect:     "fillRect",
	CommandPush:         "push",
	CommandPop:          "pop",
	CommandTranslate:    "translate",
	CommandScale:        "scale",
}

func (t CommandType) String() string {
	if int(t) < len(commandNames) {
		return commandNames[t]
	}
	return "unknown"
}

// Command is a single recorded surface call. Only the fields relevant to Type
// are set: Triangle for fills of triangles, Square for rect fills, Color for
// SetColor and X/Y for Translate and Scale.
type Command struct {
	Type     CommandType
	Triangle Triangle
	Square   Square
	Color    Color
	X, Y     float64
	// Transform is the transform in effect when a fill was recorded.
	Transform [6]float64
}

// Recorder is a Surface that records every call instead of rasterizing.
// It keeps the transform stack so recorded fills carry their final
// transform, which lets tests check on-screen placement.
type Recorder struct {
	Commands []Command

	stack     *MatrixStack
	triangles int
	rects     int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{stack: NewMatrixStack()}
}

func (r *Recorder) record(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}

// Clear records a clear and resets the transform.
func (r *Recorder) Clear() {
	r.stack.Reset()
	r.record(Command{Type: CommandClear})
}

// SetFillColor records a color change.
func (r *Recorder) SetFillColor(c Color) {
	r.record(Command{Type: CommandSetColor, Color: c})
}

// FillTriangle records a triangle fill.
func (r *Recorder) FillTriangle(t Triangle) {
	r.triangles++
	r.record(Command{Type: CommandFillTriangle, Triangle: t, Transform: r.stack.Matrix()})
}

// FillRect records a square fill.
func (r *Recorder) FillRect(sq Square) {
	r.rects++
	r.record(Command{Type: CommandFillRect, Square: sq, Transform: r.stack.Matrix()})
}

// Push records a transform save.
func (r *Recorder) Push() {
	r.stack.Push()
	r.record(Command{Type: CommandPush})
}

// Pop records a transform restore.
func (r *Recorder) Pop() {
	r.stack.Pop()
	r.record(Command{Type: CommandPop})
}

// Translate records a translation.
func (r *Recorder) Translate(x, y float64) {
	r.stack.Translate(x, y)
	r.record(Command{Type: CommandTranslate, X: x, Y: y})
}

// Scale records a scale.
func (r *Recorder) Scale(sx, sy float64) {
	r.stack.Scale(sx, sy)
	r.record(Command{Type: CommandScale, X: sx, Y: sy})
}

// Triangles returns the number of FillTriangle calls recorded.
func (r *Recorder) Triangles() int { return r.triangles }

// Rects returns the number of FillRect calls recorded.
func (r *Recorder) Rects() int { return r.rects }

// Fills returns the total number of fill calls recorded.
func (r *Recorder) Fills() int { return r.triangles + r.rects }

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Type == t {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands and counters.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.triangles = 0
	r.rects = 0
	r.stack.Reset()
}

// Replay issues every recorded command against dst in order.
func (r *Recorder) Replay(dst Surface) {
	for i := range r.Commands {
		cmd := &r.Commands[i]
		switch cmd.Type {
		case CommandClear:
			dst.Clear()
		case CommandSetColor:
			dst.SetFillColor(cmd.Color)
		case CommandFillTriangle:
			dst.FillTriangle(cmd.Triangle)
		case CommandFillRect:
			dst.FillRect(cmd.Square)
		case CommandPush:
			dst.Push()
		case CommandPop:
			dst.Pop()
		case CommandTranslate:
			dst.Translate(cmd.X, cmd.Y)
		case CommandScale:
			dst.Scale(cmd.X, cmd.Y)
		}
	}
}
