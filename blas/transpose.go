package blas

// Transpose selects whether a matrix operand is used as stored or as its
// transpose. The values are the CBLAS_TRANSPOSE enumerators so that C
// callers can pass CblasNoTrans and CblasTrans unchanged.
type Transpose int

const (
	NoTrans Transpose = 111
	Trans   Transpose = 112
)

// NewTranspose returns Trans when transpose is true and NoTrans otherwise.
func NewTranspose(transpose bool) Transpose {
	if transpose {
		return Trans
	}
	return NoTrans
}

// IsTrans reports whether t is Trans. Every other value, including
// unknown ones, means no transpose.
func (t Transpose) IsTrans() bool {
	return t == Trans
}

func (t Transpose) String() string {
	if t.IsTrans() {
		return "Trans"
	}
	return "NoTrans"
}
