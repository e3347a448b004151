package stream

import (
	"testing"

	"github.com/cwbudde/algo-rtm/internal/testutil"
	"github.com/cwbudde/algo-rtm/rtm/quat"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

func randomVecs(s *testutil.Sampler, n int) []vector4.Vec64 {
	out := make([]vector4.Vec64, n)
	for i := range out {
		out[i] = vector4.Vec64(s.Lanes(-10, 10))
	}
	return out
}

func randomQuats(s *testutil.Sampler, n int) []quat.Quat64 {
	out := make([]quat.Quat64, n)
	for i := range out {
		out[i] = quat.Quat64(s.UnitQuat())
	}
	return out
}

func to32(v []vector4.Vec64) []vector4.Vec32 {
	out := make([]vector4.Vec32, len(v))
	for i := range v {
		out[i] = v[i].To32()
	}
	return out
}

func TestElementwise64(t *testing.T) {
	s := testutil.NewSampler(1)

	for _, n := range []int{0, 1, 3, 17} {
		a := randomVecs(s, n)
		b := randomVecs(s, n)
		dst := make([]vector4.Vec64, n)

		Add64(dst, a, b)
		for i := range dst {
			if want := a[i].Add(b[i]); dst[i] != want {
				t.Fatalf("n=%d Add64[%d] = %v, want %v", n, i, dst[i], want)
			}
		}

		Mul64(dst, a, b)
		for i := range dst {
			if want := a[i].Mul(b[i]); dst[i] != want {
				t.Fatalf("n=%d Mul64[%d] = %v, want %v", n, i, dst[i], want)
			}
		}

		Scale64(dst, a, 0.5)
		for i := range dst {
			if want := a[i].Scale(0.5); dst[i] != want {
				t.Fatalf("n=%d Scale64[%d] = %v, want %v", n, i, dst[i], want)
			}
		}

		Lerp64(dst, a, b, 0.25)
		for i := range dst {
			if want := a[i].Lerp(b[i], 0.25); dst[i] != want {
				t.Fatalf("n=%d Lerp64[%d] = %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestInPlace64(t *testing.T) {
	s := testutil.NewSampler(2)
	a := randomVecs(s, 9)
	b := randomVecs(s, 9)

	sum := append([]vector4.Vec64(nil), a...)
	AddInPlace64(sum, b)
	prod := append([]vector4.Vec64(nil), a...)
	MulInPlace64(prod, b)

	for i := range a {
		if want := a[i].Add(b[i]); sum[i] != want {
			t.Fatalf("AddInPlace64[%d] = %v, want %v", i, sum[i], want)
		}
		if want := a[i].Mul(b[i]); prod[i] != want {
			t.Fatalf("MulInPlace64[%d] = %v, want %v", i, prod[i], want)
		}
	}
}

func TestAddAliasing(t *testing.T) {
	s := testutil.NewSampler(3)
	a := randomVecs(s, 5)
	b := randomVecs(s, 5)

	want := make([]vector4.Vec64, len(a))
	Add64(want, a, b)

	tests := []struct {
		name string
		run  func(a, b []vector4.Vec64) []vector4.Vec64
	}{
		{"dst is a", func(a, b []vector4.Vec64) []vector4.Vec64 { Add64(a, a, b); return a }},
		{"dst is b", func(a, b []vector4.Vec64) []vector4.Vec64 { Add64(b, a, b); return b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := append([]vector4.Vec64(nil), a...)
			bc := append([]vector4.Vec64(nil), b...)
			got := tt.run(ac, bc)
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("[%d] = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestElementwise32(t *testing.T) {
	s := testutil.NewSampler(4)
	a := to32(randomVecs(s, 6))
	b := to32(randomVecs(s, 6))
	dst := make([]vector4.Vec32, len(a))

	Add32(dst, a, b)
	for i := range dst {
		if want := a[i].Add(b[i]); dst[i] != want {
			t.Fatalf("Add32[%d] = %v, want %v", i, dst[i], want)
		}
	}

	Mul32(dst, a, b)
	for i := range dst {
		if want := a[i].Mul(b[i]); dst[i] != want {
			t.Fatalf("Mul32[%d] = %v, want %v", i, dst[i], want)
		}
	}

	Scale32(dst, a, 2)
	for i := range dst {
		if want := a[i].Scale(2); dst[i] != want {
			t.Fatalf("Scale32[%d] = %v, want %v", i, dst[i], want)
		}
	}

	Lerp32(dst, a, b, 0.5)
	for i := range dst {
		if want := a[i].Lerp(b[i], 0.5); dst[i] != want {
			t.Fatalf("Lerp32[%d] = %v, want %v", i, dst[i], want)
		}
	}

	acc := append([]vector4.Vec32(nil), a...)
	AddInPlace32(acc, b)
	MulInPlace32(acc, b)
	for i := range acc {
		if want := a[i].Add(b[i]).Mul(b[i]); acc[i] != want {
			t.Fatalf("in place (32)[%d] = %v, want %v", i, acc[i], want)
		}
	}
}

func TestRotate(t *testing.T) {
	s := testutil.NewSampler(5)
	q := quat.Quat64(s.UnitQuat())
	src := randomVecs(s, 8)
	dst := make([]vector4.Vec64, len(src))

	Rotate64(dst, q, src)
	for i := range src {
		if want := q.Rotate(src[i]); dst[i] != want {
			t.Fatalf("Rotate64[%d] = %v, want %v", i, dst[i], want)
		}
	}

	src32 := to32(src)
	dst32 := make([]vector4.Vec32, len(src32))
	Rotate32(dst32, q.To32(), src32)
	for i := range src32 {
		if want := q.To32().Rotate(src32[i]); dst32[i] != want {
			t.Fatalf("Rotate32[%d] = %v, want %v", i, dst32[i], want)
		}
	}
}

func TestQuatBatch64(t *testing.T) {
	s := testutil.NewSampler(6)
	a := randomQuats(s, 7)
	b := randomQuats(s, 7)
	dst := make([]quat.Quat64, len(a))

	MulQuats64(dst, a, b)
	for i := range a {
		if want := a[i].Mul(b[i]); dst[i] != want {
			t.Fatalf("MulQuats64[%d] = %v, want %v", i, dst[i], want)
		}
	}

	LerpQuats64(dst, a, b, 0.4)
	for i := range a {
		if want := a[i].Lerp(b[i], 0.4); dst[i] != want {
			t.Fatalf("LerpQuats64[%d] = %v, want %v", i, dst[i], want)
		}
	}

	scaled := make([]quat.Quat64, len(a))
	for i := range a {
		scaled[i] = quat.FromVector64(a[i].ToVector().Scale(3))
	}
	NormalizeQuats64(dst, scaled)
	for i := range a {
		if !dst[i].NearEqual(a[i], 1e-12) {
			t.Fatalf("NormalizeQuats64[%d] = %v, want %v", i, dst[i], a[i])
		}
	}

	EnsurePositiveW64(dst, a)
	for i := range a {
		if dst[i].W() < 0 {
			t.Fatalf("EnsurePositiveW64[%d] = %v has negative w", i, dst[i])
		}
	}
}

func TestQuatBatch32(t *testing.T) {
	s := testutil.NewSampler(7)
	a64 := randomQuats(s, 4)
	b64 := randomQuats(s, 4)
	a := make([]quat.Quat32, len(a64))
	b := make([]quat.Quat32, len(b64))
	for i := range a64 {
		a[i], b[i] = a64[i].To32(), b64[i].To32()
	}
	dst := make([]quat.Quat32, len(a))

	MulQuats32(dst, a, b)
	for i := range a {
		if want := a[i].Mul(b[i]); dst[i] != want {
			t.Fatalf("MulQuats32[%d] = %v, want %v", i, dst[i], want)
		}
	}

	LerpQuats32(dst, a, b, 0.5)
	NormalizeQuats32(dst, dst)
	EnsurePositiveW32(dst, dst)
	for i := range dst {
		if !dst[i].IsNormalized(1e-5) || dst[i].W() < 0 {
			t.Fatalf("batch (32)[%d] = %v", i, dst[i])
		}
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	a := make([]vector4.Vec64, 3)
	b := make([]vector4.Vec64, 4)
	q := make([]quat.Quat64, 2)

	tests := []struct {
		name string
		run  func()
	}{
		{"Add64", func() { Add64(a, a, b) }},
		{"AddInPlace64", func() { AddInPlace64(a, b) }},
		{"Mul64", func() { Mul64(b, a, a) }},
		{"Scale64", func() { Scale64(a, b, 1) }},
		{"Rotate64", func() { Rotate64(a, quat.Identity64(), b) }},
		{"Add32", func() { Add32(make([]vector4.Vec32, 1), nil, nil) }},
		{"MulQuats64", func() { MulQuats64(q, q, make([]quat.Quat64, 3)) }},
		{"NormalizeQuats32", func() { NormalizeQuats32(make([]quat.Quat32, 1), nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic on mismatched lengths")
				}
				if msg, ok := r.(string); !ok || msg != errLength {
					t.Fatalf("panic = %v, want %q", r, errLength)
				}
			}()
			tt.run()
		})
	}
}

func BenchmarkAdd64(b *testing.B) {
	s := testutil.NewSampler(1)
	x := randomVecs(s, 1024)
	y := randomVecs(s, 1024)
	dst := make([]vector4.Vec64, len(x))
	b.ReportAllocs()
	b.SetBytes(int64(len(x) * 32))
	for i := 0; i < b.N; i++ {
		Add64(dst, x, y)
	}
}

func BenchmarkRotate64(b *testing.B) {
	s := testutil.NewSampler(2)
	q := quat.Quat64(s.UnitQuat())
	src := randomVecs(s, 1024)
	dst := make([]vector4.Vec64, len(src))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Rotate64(dst, q, src)
	}
}
