package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, r.People)
	p := r.People[0]
	assert.Equal(t, "Raymond Muna", p.Name)
	assert.Equal(t, "Chairman", p.Role)
	assert.Contains(t, p.Variants, "Muña")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
people:
  - name: " Raymond Muna "
    role: Chairman
    variants: [Muña, Moona]
  - name: Victoria Bellas
    role: Commissioner
`), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Raymond Muna", "Victoria Bellas"}, r.Names())
	assert.Equal(t, []string{"Muña", "Moona"}, r.People[0].Variants)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("people:\n  - role: Chairman\n"))
	assert.ErrorContains(t, err, "no name")

	_, err = Parse([]byte("people:\n  - name: A\n  - name: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("people: [unclosed"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
