package render

// BlendMode selects how a source color is composited onto a canvas pixel
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendScreen
)

// apply composites src over dst with the given coverage
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendReplace:
		return src
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return Blend(dst, src, alpha)
	}
}
