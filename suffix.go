package scalar

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any Go integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Largest first; the first bucket that matches wins.
var siSuffixes = [...]struct {
	scale  float64
	suffix string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
}

// suffixGuard pulls values just short of a bucket (999700) up into it so they
// print as "1.00M" rather than "1e+03k".
const suffixGuard = 0.999

// WithSuffix formats n to 3 significant digits with an SI magnitude suffix,
// e.g. 14226 -> "14.2k", 5395984 -> "5.40M". Values that need a suffix keep
// trailing zeros so the width stays fixed; values below 1k do not ("999",
// "500", "0"). Integers are converted to float64 first.
func WithSuffix[N Number](n N) string {
	f := float64(n)
	for _, s := range siSuffixes {
		if f > suffixGuard*s.scale {
			return strings.TrimSuffix(fmt.Sprintf("%#.3g", f/s.scale), ".") + s.suffix
		}
	}
	return strconv.FormatFloat(f, 'g', 3, 64)
}
