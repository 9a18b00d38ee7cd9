package backend

import "testing"

func TestScanLoopKey(t *testing.T) {
	cases := []struct {
		name string
		buf  string
		want int64
		ok   bool
	}{
		{"plain value", "xxLOOPSTART=4512\x00yy", 4512, true},
		{"zero", "LOOPSTART=0", 0, true},
		{"empty value at comment end", "LOOPSTART=\x00next", 0, true},
		{"empty value at buffer end", "LOOPSTART=", 0, true},
		{"non-digit value discards", "LOOPSTART=abc", 0, false},
		{"missing key", "TITLE=song", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := scanLoopKey([]byte(c.buf), []byte("LOOPSTART="))
			if got != c.want || ok != c.ok {
				t.Fatalf("scanLoopKey = (%d, %v), want (%d, %v)", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestScanLoopKeyIsCaseExact(t *testing.T) {
	if _, ok := scanLoopKey([]byte("loopstart=10"), []byte("LOOPSTART=")); ok {
		t.Fatal("lower-case key must not match")
	}
}
