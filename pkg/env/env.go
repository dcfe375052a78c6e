package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/profile-client/pkg/strings"
)

var (
	ErrNotFound     = errors.New("env not found")
	ErrInvalidValue = errors.New("env has invalid value")
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

// LoadDotEnv loads variables from the given files without overriding already set ones.
// Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func Parse[T any](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
	}

	return parseValue[T](key, str)
}

func ParseOptional[T any](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, nil
	}

	v, err := parseValue[T](key, str)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseDefault[T any](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}

	return *v, nil
}

func parseValue[T any](key, str string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](strings.TrimSpace(str))
	if err != nil {
		return v, fmt.Errorf("%w: %s with type %T", ErrInvalidValue, key, v)
	}

	return v, nil
}
