// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pool

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/fixpool/hwy"
)

func TestScenarios(t *testing.T) {
	tests := []struct {
		name      string
		window    []int8
		wantMax   int8
		wantAcc   int16
		wantAvg   int8
		wantQuant int8
	}{
		{"mixed", []int8{3, -5, 7, 2}, 7, 7, 1, 1},
		{"all minus one", []int8{-1, -1, -1, -1}, -1, -4, -1, -1},
		// Sum -3: truncation gives 0, the arithmetic shift floors to -1.
		{"negative remainder", []int8{-1, -1, -1, 0}, 0, -3, 0, -1},
		{"negative exact", []int8{-8, 4, -4, 0}, 4, -8, -2, -2},
		{"extremes", []int8{-128, 127, -128, 127}, 127, -2, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(NewMax[int8](4), tt.window); got != tt.wantMax {
				t.Errorf("Max = %d, want %d", got, tt.wantMax)
			}
			if got := Reduce(NewAcc[int8, int16](4), tt.window); got != tt.wantAcc {
				t.Errorf("Acc = %d, want %d", got, tt.wantAcc)
			}
			if got := Reduce(NewAvg[int8, int16, int8](4), tt.window); got != tt.wantAvg {
				t.Errorf("Avg = %d, want %d", got, tt.wantAvg)
			}
			if got := Reduce(NewQuantAvg[int8, int16, int8](2), tt.window); got != tt.wantQuant {
				t.Errorf("QuantAvg = %d, want %d", got, tt.wantQuant)
			}
		})
	}
}

func TestWindowSizeOne(t *testing.T) {
	for v := -128; v <= 127; v++ {
		w := []int8{int8(v)}
		if got := Reduce(NewMax[int8](1), w); got != int8(v) {
			t.Fatalf("Max(%d) = %d", v, got)
		}
		if got := Reduce(NewAcc[int8, int16](1), w); got != int16(v) {
			t.Fatalf("Acc(%d) = %d", v, got)
		}
		if got := Reduce(NewAvg[int8, int16, int8](1), w); got != int8(v) {
			t.Fatalf("Avg(%d) = %d", v, got)
		}
		if got := Reduce(NewQuantAvg[int8, int16, int8](0), w); got != int8(v) {
			t.Fatalf("QuantAvg(%d) = %d", v, got)
		}
	}
}

func TestMaxInit(t *testing.T) {
	if got := NewMax[int8](4).Init(); got != -128 {
		t.Errorf("Max[int8].Init() = %d, want -128", got)
	}
	if got := NewMax[int16](4).Init(); got != -32768 {
		t.Errorf("Max[int16].Init() = %d, want -32768", got)
	}
	if got := NewMax[uint8](4).Init(); got != 0 {
		t.Errorf("Max[uint8].Init() = %d, want 0", got)
	}
	if got := NewMax[uint32](4).Init(); got != 0 {
		t.Errorf("Max[uint32].Init() = %d, want 0", got)
	}
}

// Combining any input into the Max sentinel yields that input.
func TestMaxSentinelReplacement(t *testing.T) {
	s := NewMax[int8](1)
	for v := -128; v <= 127; v++ {
		if got := s.Combine(int8(v), s.Init()); got != int8(v) {
			t.Errorf("Combine(%d, Init()) = %d", v, got)
		}
	}
	u := NewMax[uint8](1)
	for v := 0; v <= 255; v++ {
		if got := u.Combine(uint8(v), u.Init()); got != uint8(v) {
			t.Errorf("uint8 Combine(%d, Init()) = %d", v, got)
		}
	}
}

func TestMaxUnsignedOrdering(t *testing.T) {
	// 200 is the largest uint8 here, even though int8(200) would be negative.
	if got := Reduce(NewMax[uint8](3), []uint8{200, 7, 100}); got != 200 {
		t.Errorf("Max = %d, want 200", got)
	}
}

func TestInitIdempotent(t *testing.T) {
	avg := NewAvg[int8, int32, int8](9)
	acc := NewAcc[uint8, uint16](9)
	q := NewQuantAvg[int8, int32, int8](3)
	m := NewMax[int32](9)
	for range 3 {
		if avg.Init() != 0 || acc.Init() != 0 || q.Init() != 0 {
			t.Fatal("sum-based Init() != 0")
		}
		if m.Init() != hwy.MinValue[int32]() {
			t.Fatalf("Max.Init() = %d", m.Init())
		}
	}
}

func TestSize(t *testing.T) {
	if got := NewMax[int8](9).Size(); got != 9 {
		t.Errorf("Max.Size() = %d, want 9", got)
	}
	if got := NewAvg[int8, int16, int8](4).Size(); got != 4 {
		t.Errorf("Avg.Size() = %d, want 4", got)
	}
	if got := NewAcc[int8, int16](6).Size(); got != 6 {
		t.Errorf("Acc.Size() = %d, want 6", got)
	}
	if got := NewQuantAvg[int8, int16, int8](2).Size(); got != 2 {
		t.Errorf("QuantAvg.Size() = %d, want 2", got)
	}
}

func TestFunctionBase(t *testing.T) {
	f := Function[int16]{size: 5}
	if f.Init() != 0 {
		t.Errorf("Function.Init() = %d, want 0", f.Init())
	}
	if f.Size() != 5 {
		t.Errorf("Function.Size() = %d, want 5", f.Size())
	}
}

func TestFinalizePure(t *testing.T) {
	s := NewAvg[int8, int16, int8](4)
	acc := int16(-7)
	first := s.Finalize(acc)
	second := s.Finalize(acc)
	if first != second || acc != -7 {
		t.Errorf("Finalize not pure: %d, %d, acc=%d", first, second, acc)
	}
	if first != -1 {
		t.Errorf("Finalize(-7) = %d, want -1", first)
	}
}

// Sums wrap in the accumulator type; there is no saturation.
func TestAccumulatorWraps(t *testing.T) {
	if got := Reduce(NewAcc[int8, int8](2), []int8{127, 1}); got != -128 {
		t.Errorf("Acc[int8,int8] 127+1 = %d, want -128", got)
	}
	if got := Reduce(NewQuantAvg[uint8, uint8, uint8](1), []uint8{255, 3}); got != 1 {
		t.Errorf("QuantAvg[uint8] (255+3)>>1 = %d, want 1", got)
	}
	// The same inputs in a wide accumulator do not wrap.
	if got := Reduce(NewAcc[int8, int16](2), []int8{127, 1}); got != 128 {
		t.Errorf("Acc[int8,int16] 127+1 = %d, want 128", got)
	}
}

// Inputs are sign- or zero-extended into the accumulator.
func TestInputWidening(t *testing.T) {
	if got := Reduce(NewAcc[int8, int32](3), []int8{-100, -100, -100}); got != -300 {
		t.Errorf("Acc[int8,int32] = %d, want -300", got)
	}
	if got := Reduce(NewAcc[uint8, int32](3), []uint8{200, 200, 200}); got != 600 {
		t.Errorf("Acc[uint8,int32] = %d, want 600", got)
	}
}

// Narrowing to the output type keeps the low bits.
func TestOutputNarrowing(t *testing.T) {
	s := NewAvg[int16, int32, int8](2)
	if got := Reduce(s, []int16{300, 300}); got != int8(44) {
		t.Errorf("Avg narrowing = %d, want 44", got)
	}
	q := NewQuantAvg[int16, int32, uint8](0)
	if got := Reduce(q, []int16{-1}); got != 255 {
		t.Errorf("QuantAvg narrowing = %d, want 255", got)
	}
}

func TestRandomWindows(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 500; iter++ {
		n := 1 + r.IntN(64)
		shift := uint(r.IntN(7))
		window := make([]int8, n)
		var sum int32
		want := int8(-128)
		for i := range window {
			window[i] = int8(r.IntN(256) - 128)
			sum += int32(window[i])
			want = max(want, window[i])
		}

		if got := Reduce(NewMax[int8](uint(n)), window); got != want {
			t.Fatalf("Max = %d, want %d (window %v)", got, want, window)
		}
		if got := Reduce(NewAcc[int8, int32](uint(n)), window); got != sum {
			t.Fatalf("Acc = %d, want %d", got, sum)
		}
		if got, want := Reduce(NewAvg[int8, int32, int32](uint(n)), window), sum/int32(n); got != want {
			t.Fatalf("Avg = %d, want %d", got, want)
		}
		if got, want := Reduce(NewQuantAvg[int8, int32, int32](shift), window), sum>>shift; got != want {
			t.Fatalf("QuantAvg = %d, want %d", got, want)
		}
	}
}

// Reducing the same multiset in any order gives the same result, including
// when the sum wraps.
func TestOrderInsensitive(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for iter := 0; iter < 200; iter++ {
		window := make([]int8, 1+r.IntN(32))
		for i := range window {
			window[i] = int8(r.IntN(256) - 128)
		}
		shuffled := append([]int8(nil), window...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		assertSame(t, NewMax[int8](4), window, shuffled)
		assertSame(t, NewAcc[int8, int8](4), window, shuffled)
		assertSame(t, NewAvg[int8, int16, int8](4), window, shuffled)
		assertSame(t, NewQuantAvg[int8, int8, int8](2), window, shuffled)
	}
}

func assertSame[S Strategy[I, A, O], I, A, O hwy.Integers](t *testing.T, s S, a, b []I) {
	t.Helper()
	if x, y := Reduce[S, I, A, O](s, a), Reduce[S, I, A, O](s, b); x != y {
		t.Fatalf("%T: %v -> %d, %v -> %d", s, a, x, b, y)
	}
}

func BenchmarkReduce(b *testing.B) {
	window := make([]int8, 64)
	for i := range window {
		window[i] = int8(i*37 - 100)
	}
	b.Run("Max", func(b *testing.B) {
		s := NewMax[int8](64)
		for i := 0; i < b.N; i++ {
			_ = Reduce(s, window)
		}
	})
	b.Run("Avg", func(b *testing.B) {
		s := NewAvg[int8, int16, int8](64)
		for i := 0; i < b.N; i++ {
			_ = Reduce(s, window)
		}
	})
	b.Run("QuantAvg", func(b *testing.B) {
		s := NewQuantAvg[int8, int16, int8](6)
		for i := 0; i < b.N; i++ {
			_ = Reduce(s, window)
		}
	})
}
