package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brainwave/parameter"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// overlayCell is a text rune drawn over the pixel layer
type overlayCell struct {
	r     rune
	fg    RGB
	alpha float64
}

// Canvas is an RGB pixel buffer mapped onto terminal cells at DensityX x DensityY pixels per cell
type Canvas struct {
	cols, rows    int
	width, height int
	pix           []RGB
	overlay       []overlayCell
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
// Returns true if the size changed
func (c *Canvas) Resize(cols, rows int) bool {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows && c.pix != nil {
		return false
	}
	c.cols, c.rows = cols, rows
	c.width = cols * parameter.DensityX
	c.height = rows * parameter.DensityY

	size := c.width * c.height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
	}
	cells := cols * rows
	if cap(c.overlay) < cells {
		c.overlay = make([]overlayCell, cells)
	} else {
		c.overlay = c.overlay[:cells]
	}
	c.Clear(RGBBlack)
	return true
}

// Cols returns the width in terminal cells
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in terminal cells
func (c *Canvas) Rows() int { return c.rows }

// Width returns the width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the height in pixels
func (c *Canvas) Height() int { return c.height }

// Clear fills every pixel with bg and drops overlay text
func (c *Canvas) Clear(bg RGB) {
	if len(c.pix) > 0 {
		c.pix[0] = bg
		for filled := 1; filled < len(c.pix); filled *= 2 {
			copy(c.pix[filled:], c.pix[:filled])
		}
	}
	clear(c.overlay)
}

// At returns the pixel at (x, y), black when out of bounds
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

// Set composites col onto pixel (x, y), out of bounds writes are dropped
func (c *Canvas) Set(x, y int, col RGB, alpha float64, mode BlendMode) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height || alpha <= 0 {
		return
	}
	i := y*c.width + x
	c.pix[i] = mode.apply(c.pix[i], col, alpha)
}

// Text places a string on cell row starting at cell col, fg faded in by alpha against the pixels below
func (c *Canvas) Text(col, row int, s string, fg RGB, alpha float64) {
	if row < 0 || row >= c.rows || alpha <= 0 {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			c.overlay[row*c.cols+col] = overlayCell{r: r, fg: fg, alpha: alpha}
		}
		col++
	}
}

// Flush writes every cell to screen as a half block, overlay text replaces the block glyph
// Does not call Show, the caller owns presentation
func (c *Canvas) Flush(screen tcell.Screen) {
	if screen == nil {
		return
	}
	for row := 0; row < c.rows; row++ {
		top := row * parameter.DensityY
		for col := 0; col < c.cols; col++ {
			x := col * parameter.DensityX
			upper := c.At(x, top)
			lower := c.At(x, top+parameter.DensityY-1)

			if ov := c.overlay[row*c.cols+col]; ov.r != 0 {
				bg := Lerp(upper, lower, 0.5)
				fg := Lerp(bg, ov.fg, ov.alpha)
				screen.SetContent(col, row, ov.r, nil, tcell.StyleDefault.Foreground(fg.Color()).Background(bg.Color()))
				continue
			}
			screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(upper.Color()).Background(lower.Color()))
		}
	}
}
