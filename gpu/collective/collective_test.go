package collective

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningValues(t *testing.T) {
	tuning := DefaultTuning()

	assert.True(t, tuning.Blocking)
	assert.Equal(t, uint8(4), tuning.CGAClusterSize)
	assert.Equal(t, uint8(1), tuning.MinCTAs)
	assert.Equal(t, uint8(32), tuning.MaxCTAs)
	assert.Empty(t, tuning.NetName)
	assert.False(t, tuning.SplitShare)
}

func TestTuningJSONRoundTrip(t *testing.T) {
	tuning := DefaultTuning()
	tuning.NetName = "IB"

	data, err := json.Marshal(tuning)
	require.NoError(t, err)

	var decoded Tuning
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tuning, decoded)
}

func TestReduceOpValues(t *testing.T) {
	// The numeric values are wire-visible and fixed by the vendor.
	assert.Equal(t, ReduceOp(0), ReduceSum)
	assert.Equal(t, ReduceOp(1), ReduceProd)
	assert.Equal(t, ReduceOp(2), ReduceMax)
	assert.Equal(t, ReduceOp(3), ReduceMin)
	assert.Equal(t, ReduceOp(4), ReduceAvg)

	assert.Equal(t, "avg", ReduceAvg.String())
	assert.Equal(t, "ReduceOp(9)", ReduceOp(9).String())
}

func TestDataTypeValues(t *testing.T) {
	assert.Equal(t, DataType(7), Float32)
	assert.Equal(t, DataType(9), Bfloat16)
	assert.Equal(t, "bfloat16", Bfloat16.String())
	assert.Equal(t, "DataType(42)", DataType(42).String())
}

func TestResultErrorMapping(t *testing.T) {
	assert.NoError(t, resultError(0, ""))
	// In-progress is a status, not a failure.
	assert.NoError(t, resultError(7, ""))

	tests := []struct {
		code int32
		want error
	}{
		{1, ErrUnhandledRuntime},
		{2, ErrSystem},
		{3, ErrInternal},
		{4, ErrInvalidArgument},
		{5, ErrInvalidUsage},
		{6, ErrRemote},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, resultError(tt.code, ""), tt.want, "code %d", tt.code)
		err := resultError(tt.code, "detail from library")
		assert.ErrorIs(t, err, tt.want)
		assert.Contains(t, err.Error(), "detail from library")
	}

	assert.Error(t, resultError(99, "unknown"))
}
