package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrParseBool                 = errors.New("could not parse bool")
	ErrParseInt                  = errors.New("could not parse integer")
	ErrParseFloat                = errors.New("could not parse float")
	ErrParseTime                 = errors.New("could not parse time")
	ErrParseDuration             = errors.New("could not parse duration")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
)

// ConvertString converts value into the scalar pointed to by data. Supported
// targets are *string, *bool, *int, *int64, *float64, *time.Time and
// *time.Duration. Times are parsed with dateparse in the local location, so
// most common layouts are accepted.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseBool, value)
		}
		*t = val
	case *int:
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseInt, value)
		}
		*t = val
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseInt, value)
		}
		*t = val
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseFloat, value)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseTime, value)
		}
		*t = val
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseDuration, value)
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
	}

	return nil
}
