package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shadeuierrors "github.com/jimmyps/shadeui/pkg/errors"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validLineDefinition = `
kind: line
x_axis:
  data_key: month
series:
  - type: line
    name: desktop
    data_key: desktop
  - type: line
    name: mobile
    data_key: mobile
data:
  - {month: January, desktop: 186, mobile: 80}
  - {month: February, desktop: 305, mobile: 200}
`

func TestParseDefinition(t *testing.T) {
	t.Run("valid definition parses", func(t *testing.T) {
		path := writeDefinition(t, validLineDefinition)

		def, err := ParseDefinition(path)
		require.NoError(t, err)

		assert.Equal(t, "line", def.Kind)
		require.NotNil(t, def.XAxis)
		assert.Equal(t, "month", def.XAxis.DataKey)
		require.Len(t, def.Series, 2)
		assert.Equal(t, "desktop", def.Series[0].Name)
		assert.Len(t, def.Data, 2)
	})

	t.Run("missing file yields a parse error", func(t *testing.T) {
		_, err := ParseDefinition(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)

		var pErr *shadeuierrors.ParseError
		assert.True(t, errors.As(err, &pErr))
	})

	t.Run("malformed yaml carries the line number", func(t *testing.T) {
		path := writeDefinition(t, "kind: line\nseries:\n  - type: [broken\n")

		_, err := ParseDefinition(path)
		require.Error(t, err)

		var pErr *shadeuierrors.ParseError
		require.True(t, errors.As(err, &pErr))
		assert.Equal(t, path, pErr.Path)
		assert.Greater(t, pErr.Line, 0)
	})

	t.Run("unknown fields fail the strict decode", func(t *testing.T) {
		path := writeDefinition(t, `
kind: line
serie:
  - type: line
    data_key: desktop
`)

		_, err := ParseDefinition(path)
		require.Error(t, err)

		var pErr *shadeuierrors.ParseError
		assert.True(t, errors.As(err, &pErr))
	})
}

func TestParseDefinitionBytes(t *testing.T) {
	t.Run("validation runs after decode", func(t *testing.T) {
		_, err := ParseDefinitionBytes("inline.yaml", []byte("kind: nonsense\nseries:\n  - type: line\n    data_key: v\n"))
		require.Error(t, err)

		var vErr *shadeuierrors.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("empty series list is rejected", func(t *testing.T) {
		_, err := ParseDefinitionBytes("inline.yaml", []byte("kind: line\nseries: []\n"))
		require.Error(t, err)

		var vErr *shadeuierrors.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})
}
