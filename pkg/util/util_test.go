package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	testCases := []struct {
		name      string
		val       float64
		precision uint
		want      float64
	}{
		{name: "round down", val: 0.6893, precision: 2, want: 0.69},
		{name: "round up", val: 1.096, precision: 2, want: 1.1},
		{name: "already exact", val: 4.0, precision: 2, want: 4.0},
		{name: "negative", val: -0.456, precision: 2, want: -0.46},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundFloat(tt.val, tt.precision))
		})
	}
}

func TestErrorCodeUnwrapsTaxonomy(t *testing.T) {
	err := WrapErrorf(errors.New("open /x: no such file"), ErrDataset, "read dataset")
	assert.Equal(t, ErrDataset, ErrorCode(err))

	// nested wraps keep the outermost code
	outer := WrapErrorf(err, ErrRoutingFailure, "compute route")
	assert.Equal(t, ErrRoutingFailure, ErrorCode(outer))

	plain := errors.New("plain")
	assert.Equal(t, plain, ErrorCode(plain))
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3}
	out := ReverseG(in)
	assert.Equal(t, []int{3, 2, 1}, out)
	// input untouched
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestMinMaxG(t *testing.T) {
	assert.Equal(t, 1, MinG(1, 2))
	assert.Equal(t, 2, MaxG(1, 2))
	assert.Equal(t, "a", MinG("a", "b"))
}
