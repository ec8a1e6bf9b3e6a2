// File: params/file_test.go
package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileFormats(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		path := writeTestFile(t, "test.toml", `
AA = 123

[server]
host = "localhost"
ports = [8080, 8081]
`)
		p := New("DESCR")
		require.NoError(t, Define[int64](p, "AA", "top-level value"))
		require.NoError(t, Define[string](p, "server.host", "nested value"))
		require.NoError(t, Define[[]int64](p, "server.ports", "nested vector"))

		_, err := p.Parse([]string{"test", path})
		require.NoError(t, err)

		a, err := Get[int64](p, "AA")
		require.NoError(t, err)
		assert.Equal(t, int64(123), a)

		host, err := Get[string](p, "server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		ports, err := Get[[]int64](p, "server.ports")
		require.NoError(t, err)
		assert.Equal(t, []int64{8080, 8081}, ports)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeTestFile(t, "test.json", `{
	"AA": 123,
	"server": {"host": "localhost", "timeout": 2.5}
}`)
		p := New("DESCR")
		require.NoError(t, Define[int64](p, "AA", "top-level value"))
		require.NoError(t, Define[string](p, "server.host", "nested value"))
		require.NoError(t, Define[float64](p, "server.timeout", "nested float"))

		_, err := p.Parse([]string{"test", path})
		require.NoError(t, err)

		a, err := Get[int64](p, "AA")
		require.NoError(t, err)
		assert.Equal(t, int64(123), a)

		timeout, err := Get[float64](p, "server.timeout")
		require.NoError(t, err)
		assert.Equal(t, 2.5, timeout)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeTestFile(t, "test.yaml", `
AA: 123
server:
  host: localhost
  ports:
    - 8080
    - 8081
`)
		p := New("DESCR")
		require.NoError(t, Define[int64](p, "AA", "top-level value"))
		require.NoError(t, Define[string](p, "server.host", "nested value"))
		require.NoError(t, Define[[]int64](p, "server.ports", "nested vector"))

		_, err := p.Parse([]string{"test", path})
		require.NoError(t, err)

		host, err := Get[string](p, "server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		ports, err := Get[[]int64](p, "server.ports")
		require.NoError(t, err)
		assert.Equal(t, []int64{8080, 8081}, ports)
	})

	t.Run("NoExtensionFallsBackToINI", func(t *testing.T) {
		path := writeTestFile(t, "paramfile", "X = ALPHA\n")
		p := New("DESCR")
		require.NoError(t, Define[string](p, "X", "value"))

		_, err := p.Parse([]string{"test", path})
		require.NoError(t, err)

		x, err := Get[string](p, "X")
		require.NoError(t, err)
		assert.Equal(t, "ALPHA", x)
	})

	t.Run("NoExtensionJSONContent", func(t *testing.T) {
		path := writeTestFile(t, "paramfile", `{"X": "ALPHA"}`)
		p := New("DESCR")
		require.NoError(t, Define[string](p, "X", "value"))

		_, err := p.Parse([]string{"test", path})
		require.NoError(t, err)

		x, err := Get[string](p, "X")
		require.NoError(t, err)
		assert.Equal(t, "ALPHA", x)
	})

	t.Run("MalformedStructuredFile", func(t *testing.T) {
		path := writeTestFile(t, "test.json", `{"X": `)
		p := New("DESCR")
		require.NoError(t, Define[string](p, "X", "value"))

		_, err := p.Parse([]string{"test", path})
		assert.ErrorIs(t, err, ErrIniFile)
	})
}

func TestMergeAliases(t *testing.T) {
	path := writeTestFile(t, "test.ini", "[STRING]\nY = ALPHA\n")

	// The file names the parameter by an alias; the value still lands
	// in the shared cell.
	p := New("DESCR")
	require.NoError(t, Define[string](p, "primary,STRING.Y", "aliased value"))

	_, err := p.Parse([]string{"test", path})
	require.NoError(t, err)

	v, err := Get[string](p, "primary")
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", v)
}

func TestNoFileIsNotAnError(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, Define[int64](p, "a", "value", 5))

	_, err := p.ParseString("test --a 1")
	require.NoError(t, err)

	a, err := Get[int64](p, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "saved.ini")

	p := New("DESCR")
	require.NoError(t, Define[int64](p, "AA", "top-level value"))
	require.NoError(t, Define[string](p, "STRING.X", "section value"))
	require.NoError(t, Define[int64](p, "unset", "no value, skipped"))
	require.NoError(t, Define[[]int64](p, "vec", "vector", []int64{1, 2, 3}))

	_, err := p.ParseString("test --AA 123 --STRING.X hello")
	require.NoError(t, err)
	require.NoError(t, p.Save(path))

	// Round trip: a fresh registry reads the saved file back.
	q := New("DESCR")
	require.NoError(t, Define[int64](q, "AA", "top-level value"))
	require.NoError(t, Define[string](q, "STRING.X", "section value"))
	require.NoError(t, Define[[]int64](q, "vec", "vector"))

	_, err = q.Parse([]string{"test", path})
	require.NoError(t, err)

	a, err := Get[int64](q, "AA")
	require.NoError(t, err)
	assert.Equal(t, int64(123), a)

	x, err := Get[string](q, "STRING.X")
	require.NoError(t, err)
	assert.Equal(t, "hello", x)

	vec, err := Get[[]int64](q, "vec")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, vec)

	_, err = q.Param("unset")
	assert.ErrorIs(t, err, ErrNotFound)
}
