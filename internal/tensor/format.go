package tensor

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// String renders the tensor's header and contents.
//
// The output is deterministic: equal indices and contents give equal text.
//
//	Tensor[float64](i:2, a:4)
//	data =
//	15.64,15.64,15.64,15.64,15.64,15.64,15.64,15.64
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

// WriteTo writes the rendering to w. It implements io.WriterTo.
func (t *Tensor[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// Print writes the tensor to standard output.
func (t *Tensor[T]) Print() error {
	_, err := t.WriteTo(os.Stdout)
	return err
}

func (t *Tensor[T]) render(sb *strings.Builder) {
	dtype := t.DType()

	sb.WriteString("Tensor[")
	sb.WriteString(dtype.String())
	sb.WriteString("](")
	for k, ix := range t.indices {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ix.String())
	}
	sb.WriteString(")\ndata =\n")

	bits := dtype.Bits()
	for i, v := range t.data {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bits))
	}
	sb.WriteByte('\n')
}
