package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `package mathx

func init() {}

// Add sums two numbers.
func Add(a, b int) int { return a + b }

func Split(s string, sep ...string) (head, tail string) { return }

func Ignore(_ int, x string) {}

type acc struct{}

func (acc) Push(v int) {}

var _ = func(x int) {}
`

func TestParseGoSource(t *testing.T) {
	sigs, err := ParseGoSource("mathx.go", []byte(sampleSource))
	require.NoError(t, err)
	require.Len(t, sigs, 3, "init and methods are skipped")

	assert.Equal(t, "Add", sigs[0].Name)
	assert.Equal(t, "mathx.Add", sigs[0].Qualified)
	assert.Equal(t, []string{"a", "b"}, sigs[0].Params)
	assert.Equal(t, 1, sigs[0].Results)
	assert.False(t, sigs[0].Variadic)

	assert.Equal(t, "Split", sigs[1].Name)
	assert.Equal(t, []string{"s", "sep"}, sigs[1].Params)
	assert.Equal(t, 2, sigs[1].Results)
	assert.True(t, sigs[1].Variadic)

	assert.Equal(t, "Ignore", sigs[2].Name)
	assert.Equal(t, []string{"arg0", "x"}, sigs[2].Params)
}

func TestParseGoSourceSyntaxError(t *testing.T) {
	_, err := ParseGoSource("broken.go", []byte("package x\nfunc {"))
	assert.Error(t, err)
}

func TestScanGoFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.go")
	bad := filepath.Join(dir, "bad.go")
	require.NoError(t, os.WriteFile(good, []byte(sampleSource), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("not go"), 0644))

	sigs, err := ScanGoFiles(good, bad, filepath.Join(dir, "missing.go"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.go")
	assert.Contains(t, err.Error(), "missing.go")
	assert.Len(t, sigs, 3, "files that parse still contribute")

	sigs, err = ScanGoFile(good)
	require.NoError(t, err)
	assert.Len(t, sigs, 3)
}

func TestParseGoSourceNilReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathx.go")
	require.NoError(t, os.WriteFile(path, []byte(sampleSource), 0644))

	sigs, err := ParseGoSource(path, nil)
	require.NoError(t, err)
	require.Len(t, sigs, 3)
	assert.Equal(t, "mathx.Add", sigs[0].Qualified)

	_, err = ParseGoSource(filepath.Join(t.TempDir(), "missing.go"), nil)
	assert.Error(t, err)
}
