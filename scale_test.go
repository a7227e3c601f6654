package guide

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestScaleMapOrder(t *testing.T) {
	sm := NewScaleMap()
	sm.Put(AesKey(ShapeAes), &Scale{Label: "a"})
	sm.Put(AesKey(ColorAes), &Scale{Label: "b"})
	sm.Put(PosKey(1), &Scale{})
	sm.Put(AesKey(ShapeAes), &Scale{Label: "c"}) // replace keeps position

	want := []Key{AesKey(ShapeAes), AesKey(ColorAes), PosKey(1)}
	got := sm.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, got[i], want[i])
		}
	}

	if s, ok := sm.Get(AesKey(ShapeAes)); !ok || s.Label != "c" {
		t.Errorf("replaced scale = %v, %t, want label c", s, ok)
	}
	if sm.Len() != 3 {
		t.Errorf("Len = %d, want 3", sm.Len())
	}
}
