package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | int64 | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *int64 | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T any](value string) (T, error) {
	var blank T
	var v any
	var err error
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case *bool:
		v, err = pointerOf(strconv.ParseBool(value))
	case int:
		v, err = strconv.Atoi(value)
	case *int:
		v, err = pointerOf(strconv.Atoi(value))
	case int64:
		v, err = strconv.ParseInt(value, 10, 64)
	case *int64:
		v, err = pointerOf(strconv.ParseInt(value, 10, 64))
	case uint:
		v, err = parseUint(value)
	case *uint:
		v, err = pointerOf(parseUint(value))
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case *float64:
		v, err = pointerOf(strconv.ParseFloat(value, 64))
	case string:
		v = value
	case *string:
		v = &value
	case time.Time:
		v, err = parseTime(value)
	case *time.Time:
		v, err = pointerOf(parseTime(value))
	case time.Duration:
		v, err = time.ParseDuration(value)
	case *time.Duration:
		v, err = pointerOf(time.ParseDuration(value))
	case uuid.UUID:
		v, err = uuid.Parse(value)
	case *uuid.UUID:
		v, err = pointerOf(uuid.Parse(value))
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return v.(T), nil
}

func parseUint(value string) (uint, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	return uint(v), err
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	unixTime, unixErr := strconv.ParseInt(value, 10, 64)
	if unixErr != nil || unixTime < 0 {
		return time.Time{}, err
	}

	return time.Unix(unixTime, 0), nil
}

func pointerOf[T any](v T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	return &v, nil
}
