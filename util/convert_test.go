package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString_String(t *testing.T) {
	var out string
	require.NoError(t, ConvertString("hello", &out))
	assert.Equal(t, "hello", out)
}

func TestConvertString_Bool(t *testing.T) {
	var out bool
	require.NoError(t, ConvertString("true", &out))
	assert.True(t, out)

	assert.ErrorIs(t, ConvertString("yes", &out), ErrParseBool)
}

func TestConvertString_Int(t *testing.T) {
	var out int
	require.NoError(t, ConvertString("-12", &out))
	assert.Equal(t, -12, out)

	assert.ErrorIs(t, ConvertString("12.5", &out), ErrParseInt)
}

func TestConvertString_Int64(t *testing.T) {
	var out int64
	require.NoError(t, ConvertString("9007199254740993", &out))
	assert.Equal(t, int64(9007199254740993), out)

	assert.ErrorIs(t, ConvertString("abc", &out), ErrParseInt)
}

func TestConvertString_Float64(t *testing.T) {
	var out float64
	require.NoError(t, ConvertString("3.25", &out))
	assert.Equal(t, 3.25, out)

	assert.ErrorIs(t, ConvertString("abc", &out), ErrParseFloat)
}

func TestConvertString_Time(t *testing.T) {
	var out time.Time
	require.NoError(t, ConvertString("2021-04-29", &out))
	assert.Equal(t, 2021, out.Year())
	assert.Equal(t, time.April, out.Month())

	require.NoError(t, ConvertString("April 29, 2021", &out), "common layouts are recognized")
	assert.Equal(t, 29, out.Day())

	assert.ErrorIs(t, ConvertString("not a date", &out), ErrParseTime)
}

func TestConvertString_Duration(t *testing.T) {
	var out time.Duration
	require.NoError(t, ConvertString("90s", &out))
	assert.Equal(t, 90*time.Second, out)

	assert.ErrorIs(t, ConvertString("fast", &out), ErrParseDuration)
}

func TestConvertString_Unsupported(t *testing.T) {
	var out []string
	assert.ErrorIs(t, ConvertString("a,b", &out), ErrUnsupportedTypeConversion)
	assert.ErrorIs(t, ConvertString("a", "not a pointer"), ErrUnsupportedTypeConversion)
}
