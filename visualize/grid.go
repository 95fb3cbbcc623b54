package visualize

// bitGrid is a single-channel luminance image, one row per machine and one
// texel per output bit: every texel is either fully lit or fully dark, so
// there is no reason to carry RGBA's three redundant channels the way a
// photographic framebuffer would.
type bitGrid struct {
	width, height int
	pix           []uint8
}

func newBitGrid(width, height int) *bitGrid {
	return &bitGrid{width: width, height: height, pix: make([]uint8, width*height)}
}

// setBit paints texel (x, y) white if on, black otherwise.
func (g *bitGrid) setBit(x, y int, on bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	var v uint8
	if on {
		v = 0xFF
	}
	g.pix[y*g.width+x] = v
}
