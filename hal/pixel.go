package hal

// RGB565From888 packs an 8-bit-per-channel colour.
func RGB565From888(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888From565 expands a packed pixel to full range.
func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// SnapshotRGBA converts an RGB565 framebuffer into RGBA bytes, 4 per pixel,
// row by row. dst is reused when large enough.
func SnapshotRGBA(fb Framebuffer, dst []byte) []byte {
	w, h := fb.Width(), fb.Height()
	n := w * h * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	src := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*stride + x*2
			if off+1 >= len(src) {
				continue
			}
			r, g, b := RGB888From565(uint16(src[off]) | uint16(src[off+1])<<8)
			j := (y*w + x) * 4
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}
	return dst
}
