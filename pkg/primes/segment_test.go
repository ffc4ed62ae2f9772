package primes

import "testing"

func TestPrimesBetweenMatchesFullSieve(t *testing.T) {
	want, err := PrimesUpTo(30)
	if err != nil {
		t.Fatalf("PrimesUpTo failed: %v", err)
	}
	got, err := PrimesBetween(0, 30)
	if err != nil {
		t.Fatalf("PrimesBetween failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("PrimesBetween(0, 30) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("primes[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPrimesBetweenWindow(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int64
		want   []int64
	}{
		{name: "interior window", lo: 10, hi: 30, want: []int64{11, 13, 17, 19, 23, 29}},
		{name: "window with no primes", lo: 24, hi: 28, want: []int64{}},
		{name: "single prime window", lo: 29, hi: 29, want: []int64{29}},
		{name: "window above 2^16", lo: 65530, hi: 65540, want: []int64{65537, 65539}},
		{name: "inverted window is empty", lo: 50, hi: 40, want: []int64{}},
		{name: "window below 2 is empty", lo: -5, hi: 1, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrimesBetween(tt.lo, tt.hi)
			if err != nil {
				t.Fatalf("PrimesBetween(%d, %d) failed: %v", tt.lo, tt.hi, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("PrimesBetween(%d, %d) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("primes[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrimesBetweenShardsMergeToFullRange(t *testing.T) {
	full, err := PrimesUpTo(10000)
	if err != nil {
		t.Fatalf("PrimesUpTo failed: %v", err)
	}

	var merged []int64
	for lo := int64(0); lo <= 10000; lo += 1000 {
		hi := lo + 999
		if hi > 10000 {
			hi = 10000
		}
		shard, err := PrimesBetween(lo, hi)
		if err != nil {
			t.Fatalf("PrimesBetween(%d, %d) failed: %v", lo, hi, err)
		}
		merged = append(merged, shard...)
	}

	if len(merged) != len(full) {
		t.Fatalf("sharded enumeration found %d primes, full sieve found %d", len(merged), len(full))
	}
	for i := range full {
		if merged[i] != full[i] {
			t.Errorf("primes[%d] = %d, want %d", i, merged[i], full[i])
		}
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2},
		{8, 2}, {9, 3}, {15, 3}, {16, 4},
		{65536, 256}, {65537, 256},
		{MaxSieveBound, 46340},
	}
	for _, tt := range tests {
		if got := isqrt(tt.n); got != tt.want {
			t.Errorf("isqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
