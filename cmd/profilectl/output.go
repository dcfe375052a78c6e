package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klwxsrx/profile-client/internal/profile/domain"
)

const stdinPath = "-"

func writeState(out io.Writer, state domain.ProfileState) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	return nil
}

// readForm decodes a JSON form from path, "-" reads stdin.
func readForm[T any](path string, stdin io.Reader) (T, error) {
	var form T

	in := stdin
	if path != stdinPath {
		file, err := os.Open(path)
		if err != nil {
			return form, fmt.Errorf("open form: %w", err)
		}
		defer file.Close()
		in = file
	}

	decoder := json.NewDecoder(in)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(&form)
	if err != nil {
		return form, fmt.Errorf("decode form %s: %w", path, err)
	}

	return form, nil
}
