package canvas

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	"github.com/sarchlab/overview/overview"
	"github.com/vmihailenco/msgpack/v5"
)

// Op names a recorded drawing operation.
type Op string

// The operations a Recorder can record.
const (
	OpSetFillColor   Op = "setFillColor"
	OpSetStrokeColor Op = "setStrokeColor"
	OpSetLineWidth   Op = "setLineWidth"
	OpSetFont        Op = "setFont"
	OpSetTextAlign   Op = "setTextAlign"
	OpFillRect       Op = "fillRect"
	OpBeginPath      Op = "beginPath"
	OpMoveTo         Op = "moveTo"
	OpLineTo         Op = "lineTo"
	OpArc            Op = "arc"
	OpStroke         Op = "stroke"
	OpFillText       Op = "fillText"
)

// A Command is one entry of a display list.
type Command struct {
	Op    Op        `json:"op" msgpack:"op"`
	Args  []float64 `json:"args,omitempty" msgpack:"args,omitempty"`
	Text  string    `json:"text,omitempty" msgpack:"text,omitempty"`
	Color string    `json:"color,omitempty" msgpack:"color,omitempty"`
	Alpha float64   `json:"alpha,omitempty" msgpack:"alpha,omitempty"`
	Flag  bool      `json:"flag,omitempty" msgpack:"flag,omitempty"`
}

// Recorder is an overview.Canvas that records a display list.
type Recorder struct {
	Commands []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(c Command) {
	r.Commands = append(r.Commands, c)
}

func colorCommand(op Op, c color.Color) Command {
	return Command{Op: op, Color: CSS(c), Alpha: Opacity(c)}
}

// SetFillColor records a fill colour change.
func (r *Recorder) SetFillColor(c color.Color) {
	r.add(colorCommand(OpSetFillColor, c))
}

// SetStrokeColor records a stroke colour change.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.add(colorCommand(OpSetStrokeColor, c))
}

// SetLineWidth records a line width change.
func (r *Recorder) SetLineWidth(w float64) {
	r.add(Command{Op: OpSetLineWidth, Args: []float64{w}})
}

// SetFont records a font change.
func (r *Recorder) SetFont(font string) {
	r.add(Command{Op: OpSetFont, Text: font})
}

// SetTextAlign records a text alignment change.
func (r *Recorder) SetTextAlign(align overview.TextAlign) {
	r.add(Command{Op: OpSetTextAlign, Text: align.String()})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add(Command{Op: OpFillRect, Args: []float64{x, y, w, h}})
}

// BeginPath records the start of a new path.
func (r *Recorder) BeginPath() {
	r.add(Command{Op: OpBeginPath})
}

// MoveTo records a move.
func (r *Recorder) MoveTo(x, y float64) {
	r.add(Command{Op: OpMoveTo, Args: []float64{x, y}})
}

// LineTo records a line segment.
func (r *Recorder) LineTo(x, y float64) {
	r.add(Command{Op: OpLineTo, Args: []float64{x, y}})
}

// Arc records an arc.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	r.add(Command{
		Op:   OpArc,
		Args: []float64{x, y, radius, startAngle, endAngle},
		Flag: anticlockwise,
	})
}

// Stroke records a stroke of the current path.
func (r *Recorder) Stroke() {
	r.add(Command{Op: OpStroke})
}

// FillText records a text label.
func (r *Recorder) FillText(text string, x, y float64) {
	r.add(Command{Op: OpFillText, Args: []float64{x, y}, Text: text})
}

// Count returns how many commands of the given operation were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}

	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay issues the recorded commands on another context.
func (r *Recorder) Replay(ctx overview.Canvas) error {
	for i, c := range r.Commands {
		if err := replayCommand(ctx, c); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}

	return nil
}

var argCounts = map[Op]int{
	OpSetLineWidth: 1,
	OpFillRect:     4,
	OpMoveTo:       2,
	OpLineTo:       2,
	OpArc:          5,
	OpFillText:     2,
}

func replayCommand(ctx overview.Canvas, c Command) error {
	if n, ok := argCounts[c.Op]; ok && len(c.Args) != n {
		return fmt.Errorf("%s takes %d arguments, got %d", c.Op, n, len(c.Args))
	}

	a := c.Args

	switch c.Op {
	case OpSetFillColor:
		col, err := commandColor(c)
		if err != nil {
			return err
		}
		ctx.SetFillColor(col)
	case OpSetStrokeColor:
		col, err := commandColor(c)
		if err != nil {
			return err
		}
		ctx.SetStrokeColor(col)
	case OpSetLineWidth:
		ctx.SetLineWidth(a[0])
	case OpSetFont:
		ctx.SetFont(c.Text)
	case OpSetTextAlign:
		ctx.SetTextAlign(parseAlign(c.Text))
	case OpFillRect:
		ctx.FillRect(a[0], a[1], a[2], a[3])
	case OpBeginPath:
		ctx.BeginPath()
	case OpMoveTo:
		ctx.MoveTo(a[0], a[1])
	case OpLineTo:
		ctx.LineTo(a[0], a[1])
	case OpArc:
		ctx.Arc(a[0], a[1], a[2], a[3], a[4], c.Flag)
	case OpStroke:
		ctx.Stroke()
	case OpFillText:
		ctx.FillText(c.Text, a[0], a[1])
	default:
		return fmt.Errorf("unknown operation %q", c.Op)
	}

	return nil
}

func commandColor(c Command) (color.Color, error) {
	if c.Color == "none" {
		return color.RGBA{}, nil
	}

	rgba, err := ParseColor(c.Color)
	if err != nil {
		return nil, err
	}

	if c.Alpha > 0 && c.Alpha < 1 {
		return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(c.Alpha*0xff + 0.5)}, nil
	}

	return rgba, nil
}

func parseAlign(s string) overview.TextAlign {
	switch s {
	case "center":
		return overview.AlignCenter
	case "end":
		return overview.AlignEnd
	default:
		return overview.AlignStart
	}
}

// EncodeJSON writes the display list as a JSON array.
func (r *Recorder) EncodeJSON(w io.Writer) error {
	cmds := r.Commands
	if cmds == nil {
		cmds = []Command{}
	}

	return json.NewEncoder(w).Encode(cmds)
}

// EncodeMsgpack writes the display list in MessagePack.
func (r *Recorder) EncodeMsgpack(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(r.Commands)
}

// DecodeJSON reads a display list written by EncodeJSON.
func DecodeJSON(rd io.Reader) (*Recorder, error) {
	r := NewRecorder()
	if err := json.NewDecoder(rd).Decode(&r.Commands); err != nil {
		return nil, fmt.Errorf("decoding display list: %w", err)
	}

	return r, nil
}

// DecodeMsgpack reads a display list written by EncodeMsgpack.
func DecodeMsgpack(rd io.Reader) (*Recorder, error) {
	r := NewRecorder()
	if err := msgpack.NewDecoder(rd).Decode(&r.Commands); err != nil {
		return nil, fmt.Errorf("decoding display list: %w", err)
	}

	return r, nil
}
