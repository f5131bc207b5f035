package chunklist

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"both empty", nil, nil, true},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different values", []int{1, 2, 3}, []int{1, 2, 4}, false},
		{"different lengths", []int{1, 2}, []int{1, 2, 3}, false},
		{"prefix", []int{1}, []int{1, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := FromSlice(tt.a), FromSlice(tt.b)
			assert.Equal(t, tt.want, Equal(a, b))
			assert.Equal(t, tt.want, Equal(b, a))
		})
	}
}

func TestEqualIgnoresLayout(t *testing.T) {
	a := New[int]()
	a.SetChunkSize(2)
	b := WithCapacity[int](100)
	for i := range 10 {
		a.PushBack(i)
		b.PushBack(i)
	}
	assert.True(t, Equal(a, b), "chunk layout must not affect equality")
}

func TestEqualFunc(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]string{"1", "2", "3"})
	eq := func(i int, s string) bool { return strconv.Itoa(i) == s }
	assert.True(t, EqualFunc(a, b, eq))

	c := FromSlice([]string{"1", "2", "4"})
	assert.False(t, EqualFunc(a, c, eq))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"less", []int{1, 2, 3}, []int{1, 2, 4}, -1},
		{"greater", []int{2}, []int{1, 9, 9}, 1},
		{"prefix is less", []int{1, 2}, []int{1, 2, 0}, -1},
		{"empty is least", nil, []int{0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(FromSlice(tt.a), FromSlice(tt.b)))
			assert.Equal(t, -tt.want, Compare(FromSlice(tt.b), FromSlice(tt.a)))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[]", New[int]().String())
	assert.Equal(t, "[1 2 3]", FromSlice([]int{1, 2, 3}).String())
	assert.Equal(t, "[a b]", FromSlice([]string{"a", "b"}).String())
	assert.Equal(t, "[1 2]", fmt.Sprint(FromSlice([]int{1, 2})))
}
