//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/rhino/graphics"
)

func NewHeadless(width, height int) (graphics.Window, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
