package headless

import "github.com/richinsley/rhino/graphics"

// every platform hands back the same window type
var _ func(int, int) (graphics.Window, error) = NewHeadless
