// Package matrix provides the dense kernel the stamping math is built on.
// Matrices are flat row-major float64 slices with explicit dimensions.
// Output arguments must not alias any input argument.
package matrix

import "math"

// Inv replaces the m×m matrix a with its inverse. Partial-pivot LU on a
// permuted copy, L and U inverted independently, then recomposed as
// U⁻¹·L⁻¹ and column-permuted back. The caller must not pass a singular
// matrix; a zero pivot is skipped, not reported.
func Inv(m int, a []float64) {
	pm := make([]int, m)
	lu := make([]float64, m*m)
	for i := 0; i < m; i++ {
		pm[i] = i
	}
	// Sort rows by pivot element.
	for j := 0; j < m; j++ {
		mv := 0.0
		for i := j; i < m; i++ {
			cv := math.Abs(a[pm[i]*m+j])
			if cv > mv {
				mv = cv
				pm[j], pm[i] = pm[i], pm[j]
			}
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			lu[i*m+j] = a[pm[i]*m+j]
		}
	}
	// Decompose, storing L below the diagonal (unit diagonal implied)
	// and U on and above it.
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			for k := 0; k < i; k++ {
				lu[i*m+j] -= lu[i*m+k] * lu[k*m+j]
			}
		}
		for k := i + 1; k < m; k++ {
			for j := 0; j < i; j++ {
				lu[k*m+i] -= lu[k*m+j] * lu[j*m+i]
			}
			lu[k*m+i] /= lu[i*m+i]
		}
	}
	// Invert L and U independently into a.
	for i := 0; i < m*m; i++ {
		a[i] = 0.0
	}
	for i := 0; i < m; i++ {
		a[i*m+i] = 1.0 // unit diagonal of L⁻¹, overwritten below
		for k := i + 1; k < m; k++ {
			for j := i; j <= k-1; j++ {
				a[k*m+i] -= lu[k*m+j] * a[j*m+i]
			}
		}
		a[i*m+i] = 1.0 / lu[i*m+i]
		for k := i - 1; k >= 0; k-- {
			for j := k + 1; j <= i; j++ {
				a[k*m+i] -= lu[k*m+j] * a[j*m+i]
			}
			a[k*m+i] /= lu[k*m+k]
		}
	}
	// Recompose U⁻¹·L⁻¹ into lu, upper and lower accumulation split.
	for i := 0; i < m; i++ {
		for j := 0; j < i; j++ {
			lu[i*m+j] = 0.0
		}
		for j := i; j < m; j++ {
			lu[i*m+j] = a[i*m+j]
		}
	}
	for i := 1; i < m; i++ {
		for k := i; k < m; k++ {
			for j := 0; j < i; j++ {
				lu[i*m+j] += a[i*m+k] * a[k*m+j]
			}
		}
	}
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			for k := j + 1; k < m; k++ {
				lu[i*m+j] += a[i*m+k] * a[k*m+j]
			}
		}
	}
	// Permute columns back.
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			a[i*m+pm[j]] = lu[i*m+j]
		}
	}
}

// Mul computes the m×m product c = a·b. c must be distinct from a and b.
func Mul(m int, c, a, b []float64) {
	for i := 0; i < m*m; i++ {
		c[i] = 0.0
	}
	for i := 0; i < m; i++ {
		for k := 0; k < m; k++ {
			s := a[i*m+k]
			for j := 0; j < m; j++ {
				c[i*m+j] += s * b[k*m+j]
			}
		}
	}
}

// MulVec computes y = a·x for an m×n matrix a and an n-vector x.
func MulVec(m, n int, y, a, x []float64) {
	for i := 0; i < m; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += a[i*n+j] * x[j]
		}
		y[i] = sum
	}
}

// AddVec computes z = x + y elementwise over m entries.
func AddVec(m int, z, x, y []float64) {
	for i := 0; i < m; i++ {
		z[i] = x[i] + y[i]
	}
}

// FMAVec updates y in place as y[i] = w1[i]*x[i] + w2[i]*y[i].
func FMAVec(m int, y, w1, x, w2 []float64) {
	for i := 0; i < m; i++ {
		y[i] = w1[i]*x[i] + w2[i]*y[i]
	}
}
