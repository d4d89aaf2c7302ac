package encode

import (
	"io"
	"testing"

	"github.com/ocapn/syrup/value"
)

// Benchmark data sizes representing different message shapes.
var benchmarkSizes = []struct {
	name string
	size int
}{
	{"10_fields", 10},
	{"100_fields", 100},
	{"1000_fields", 1000},
}

func buildRecord(n int) value.Value {
	fields := make([]value.Value, n)
	for i := range fields {
		fields[i] = value.NewInteger(int64(i))
	}

	return value.NewRecord(value.NewSymbol("bench"), fields)
}

// BenchmarkAppend measures the allocating, growable-slice encode path.
func BenchmarkAppend(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			v := buildRecord(size.size)
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				_ = Append(nil, v)
			}
		})
	}
}

// BenchmarkInto measures the zero-reallocation bounded encode path into a
// pre-sized caller-owned buffer.
func BenchmarkInto(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			v := buildRecord(size.size)
			buf := make([]byte, len(Append(nil, v)))
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Into(buf, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTo measures the io.Writer streaming encode path.
func BenchmarkTo(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			v := buildRecord(size.size)
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				if err := To(io.Discard, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
