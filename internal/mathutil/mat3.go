package mathutil

// Mat3 is a 3×3 homogeneous 2D transform stored row-major:
// [a, b, tx, c, d, ty, 0, 0, 1]. Value type for zero heap allocation.
type Mat3 [9]float64

// Mat3Scale returns a transform scaling x by sx and y by sy about the origin.
func Mat3Scale(sx, sy float64) Mat3 {
	return Mat3{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

func Mat3Translate(tx, ty float64) Mat3 {
	return Mat3{1, 0, tx, 0, 1, ty, 0, 0, 1}
}

// Mat3Mul returns a × b (b is applied first).
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// Apply maps the point (x, y).
func (m Mat3) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// ApplyVector maps a direction, ignoring translation.
func (m Mat3) ApplyVector(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y, m[3]*x + m[4]*y
}
