package scalar

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestWithSuffixFloat(t *testing.T) {
	for _, tc := range []struct {
		in  float64
		out string
	}{
		{14226, "14.2k"},
		{5395984, "5.40M"},
		{999, "999"},
		{999700, "1.00M"}, // guard pulls this up into M
		{500, "500"},
		{0, "0"},
		{0.5, "0.5"},
		{12.5, "12.5"},
		{0.001234, "0.00123"},
		{1000, "1.00k"},
		{1500000000, "1.50G"},
		{999e9, "999G"},
		{2.5e12, "2.50e+03G"},
		{-14226, "-1.42e+04"},
	} {
		t.Run(fmt.Sprintf("%g=%s", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, WithSuffix(tc.in))
		})
	}
}

func TestWithSuffixInt(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("14.2k", WithSuffix(14226))
	tt.MustEqual("5.40M", WithSuffix(int64(5395984)))
	tt.MustEqual("999", WithSuffix(int32(999)))
	tt.MustEqual("1.00M", WithSuffix(uint32(999700)))
	tt.MustEqual("500", WithSuffix(uint16(500)))
	tt.MustEqual("200", WithSuffix(uint8(200)))
	tt.MustEqual("3.00G", WithSuffix(uint64(3000000000)))
	tt.MustEqual("1.23k", WithSuffix(float32(1234.5)))
}

func TestWithSuffixMatchesFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		n := globalRNG.Int63n(1 << 40)
		tt.MustEqual(WithSuffix(float64(n)), WithSuffix(n), "n=%d", n)
	}
}
