package blend

// Over composites a source color with effective alpha sa over a
// destination color using the Porter-Duff "source over" operator on
// non-premultiplied values:
//
//	out_a = sa + da*(1-sa)
//	out_c = (dc*da*(1-sa) + sc*sa) / out_a
//
// Results are rounded half up. A zero sa returns the destination
// unchanged and a full sa returns the source, so those two cases are
// bit-exact.
func Over(dr, dg, db, da, sr, sg, sb, sa byte) (r, g, b, a byte) {
	switch sa {
	case 0:
		return dr, dg, db, da
	case 255:
		return sr, sg, sb, 255
	}

	fs := float64(sa) / 255
	fd := float64(da) / 255 * (1 - fs)
	oa := fs + fd
	if oa <= 0 {
		return 0, 0, 0, 0
	}

	r = byte((float64(dr)*fd+float64(sr)*fs)/oa + 0.5)
	g = byte((float64(dg)*fd+float64(sg)*fs)/oa + 0.5)
	b = byte((float64(db)*fd+float64(sb)*fs)/oa + 0.5)
	a = byte(oa*255 + 0.5)
	return r, g, b, a
}

// OverBGRA blends one B, G, R, A source pixel with effective alpha sa into
// a B, G, R, A destination pixel in place.
func OverBGRA(dst, src []byte, sa byte) {
	dst[2], dst[1], dst[0], dst[3] = Over(dst[2], dst[1], dst[0], dst[3], src[2], src[1], src[0], sa)
}

// OverRow blends a row of B, G, R, A source pixels into dst using each
// source pixel's own alpha. Both rows must have the same length.
func OverRow(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		OverBGRA(dst[i:i+4], src[i:i+4], src[i+3])
	}
}

// OverRowOpacity is like OverRow but scales each source alpha by opacity
// first.
func OverRowOpacity(dst, src []byte, opacity float32) {
	for i := 0; i+3 < len(src); i += 4 {
		OverBGRA(dst[i:i+4], src[i:i+4], ScaleAlpha(src[i+3], opacity))
	}
}

// FillRow writes color (r, g, b, a) to every B, G, R, A pixel of row.
// When withAlpha is false the existing alpha bytes are kept.
func FillRow(row []byte, r, g, b, a byte, withAlpha bool) {
	for i := 0; i+3 < len(row); i += 4 {
		row[i], row[i+1], row[i+2] = b, g, r
		if withAlpha {
			row[i+3] = a
		}
	}
}
