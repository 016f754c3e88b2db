package util

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    *big.Int
		wantErr bool
	}{
		{input: "0", want: big.NewInt(0)},
		{input: " 1000000000000000000 ", want: big.NewInt(1_000_000_000_000_000_000)},
		{input: "115792089237316195423570985008687907853269984665640564039457584007913129639935", want: math.MaxBig256},
		{input: "115792089237316195423570985008687907853269984665640564039457584007913129639936", wantErr: true},
		{input: "", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "+1", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "0x10", wantErr: true},
		{input: "1e18", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(tt.want), "got %s", got)
		})
	}
}

func TestGweiToWei(t *testing.T) {
	assert.Equal(t, "25000000000", GweiToWei(25).String())
	assert.Equal(t, int64(0), GweiToWei(0).Int64())
}

func TestMap(t *testing.T) {
	out := Map([]string{"a", "b"}, func(s string, i uint64) string {
		return s + string(rune('0'+i))
	})
	assert.Equal(t, []string{"a0", "b1"}, out)
}

func TestFind(t *testing.T) {
	one, two := 1, 2
	coll := []*int{&one, &two}

	assert.Equal(t, &two, Find(coll, func(i *int) bool { return *i == 2 }))
	assert.Nil(t, Find(coll, func(i *int) bool { return *i == 3 }))
}
