package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/social-profile-service/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var result T
		return result, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return result, nil
}

// ParseOptional returns nil when the variable is unset or blank.
func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return result, nil
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return result, nil
}

func ParseWithDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	result, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return defaultValue, nil
	}

	return result, err
}
