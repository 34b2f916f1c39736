package automation

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Pointer abstracts mouse control.
type Pointer interface {
	Location() (x, y int)
	Move(x, y int) error
	Click(button string, double bool) error
	Drag(x, y int, button string) error
}

// Screen abstracts display geometry.
type Screen interface {
	Size() (width, height int)
}

// normalizeButton resolves a mouse button name to the event library's
// vocabulary. "middle" is accepted as a synonym for "center"; empty
// means the left button.
func normalizeButton(button string) (string, error) {
	switch button {
	case "":
		return "left", nil
	case "middle":
		return "center", nil
	case "left", "right", "center":
		return button, nil
	default:
		return "", fmt.Errorf("%w: unknown mouse button %q", ErrInvalidArgument, button)
	}
}

// systemPointer drives the real mouse.
type systemPointer struct{}

// NewPointer returns the platform pointer.
func NewPointer() Pointer { return systemPointer{} }

func (systemPointer) Location() (int, int) {
	return robotgo.Location()
}

func (systemPointer) Move(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (systemPointer) Click(button string, double bool) error {
	switch button {
	case "left", "right", "center":
	default:
		return fmt.Errorf("%w: unknown mouse button %q", ErrInvalidArgument, button)
	}
	robotgo.Click(button, double)
	return nil
}

func (systemPointer) Drag(x, y int, button string) error {
	robotgo.DragSmooth(x, y, button)
	return nil
}

// systemScreen reports the primary display size.
type systemScreen struct{}

// NewScreen returns the platform screen.
func NewScreen() Screen { return systemScreen{} }

func (systemScreen) Size() (int, int) {
	return robotgo.GetScreenSize()
}
