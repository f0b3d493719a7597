package cardface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardface/geom"
)

// CommandType identifies a draw command.
type CommandType uint8

const (
	CmdFillRoundedRect CommandType = iota // Fill the card background
	CmdDrawText                           // Draw a corner label or a pip
	CmdDrawImage                          // Draw face or back art
)

var commandTypeNames = [...]string{
	CmdFillRoundedRect: "FillRoundedRect",
	CmdDrawText:        "DrawText",
	CmdDrawImage:       "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded draw call.
type Command interface {
	Type() CommandType
	replay(s Surface)
}

// FillRoundedRectCommand fills a rounded rectangle.
type FillRoundedRectCommand struct {
	Rect   geom.Rect
	Radius float64
	Color  color.Color
}

// Type implements Command.
func (FillRoundedRectCommand) Type() CommandType { return CmdFillRoundedRect }

func (c FillRoundedRectCommand) replay(s Surface) { s.FillRoundedRect(c.Rect, c.Radius, c.Color) }

// DrawTextCommand draws text inside a transformed local box.
type DrawTextCommand struct {
	Text      string
	Size      float64
	Box       geom.Size
	Transform gg.Matrix
	Color     color.Color
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) replay(s Surface) {
	s.DrawText(c.Text, c.Size, c.Box, c.Transform, c.Color)
}

// DrawImageCommand draws an image into a rectangle.
type DrawImageCommand struct {
	Image image.Image
	Rect  geom.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

func (c DrawImageCommand) replay(s Surface) { s.DrawImage(c.Image, c.Rect) }

// DisplayList is the flat, ordered set of draw commands of one render
// pass. It implements Surface, so anything drawn into it is recorded.
//
// DisplayList is not safe for concurrent use.
type DisplayList struct {
	commands []Command
}

// Commands returns the recorded commands in draw order.
func (d *DisplayList) Commands() []Command {
	return d.commands
}

// Len returns the number of recorded commands.
func (d *DisplayList) Len() int {
	return len(d.commands)
}

// Count returns the number of recorded commands of type t.
func (d *DisplayList) Count(t CommandType) int {
	n := 0
	for _, c := range d.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards all commands, keeping the allocated storage.
func (d *DisplayList) Reset() {
	clear(d.commands)
	d.commands = d.commands[:0]
}

// Replay issues every command to s in order.
func (d *DisplayList) Replay(s Surface) {
	for _, c := range d.commands {
		c.replay(s)
	}
}

// FillRoundedRect implements Surface.
func (d *DisplayList) FillRoundedRect(r geom.Rect, radius float64, c color.Color) {
	d.commands = append(d.commands, FillRoundedRectCommand{Rect: r, Radius: radius, Color: c})
}

// DrawText implements Surface.
func (d *DisplayList) DrawText(text string, size float64, box geom.Size, transform gg.Matrix, c color.Color) {
	d.commands = append(d.commands, DrawTextCommand{
		Text:      text,
		Size:      size,
		Box:       box,
		Transform: transform,
		Color:     c,
	})
}

// DrawImage implements Surface.
func (d *DisplayList) DrawImage(img image.Image, r geom.Rect) {
	d.commands = append(d.commands, DrawImageCommand{Image: img, Rect: r})
}
