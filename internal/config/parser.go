package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	shadeuierrors "github.com/jimmyps/shadeui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDefinition loads a chart definition file from disk, validates it,
// and returns the resulting model.
func ParseDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, shadeuierrors.NewParseError(path, 0, err)
	}
	return ParseDefinitionBytes(path, data)
}

// ParseDefinitionBytes parses and validates an in-memory definition. The
// decode is strict: unknown fields fail the parse rather than being
// silently dropped.
func ParseDefinitionBytes(path string, data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, shadeuierrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDefinition(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
