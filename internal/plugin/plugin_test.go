package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct{}

func (echo) Name() string              { return "echo" }
func (echo) Execute(data string) string { return data }

func TestBuiltin(t *testing.T) {
	r := Builtin()
	assert.Equal(t, []string{"replace_spaces", "reverse", "upper"}, r.Names())

	cases := map[string][2]string{
		"upper":          {"hello", "HELLO"},
		"reverse":        {"Program", "margorP"},
		"replace_spaces": {"Привет всем", "Привет_всем"},
	}
	for name, tc := range cases {
		p, err := r.New(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
		assert.Equal(t, tc[1], p.Execute(tc[0]), name)
	}
}

func TestReverse_Runes(t *testing.T) {
	p, err := Builtin().New("reverse")
	require.NoError(t, err)
	assert.Equal(t, "тевирп", p.Execute("привет"))
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.IsEmpty())
	require.NoError(t, r.Register("echo", func() Plugin { return echo{} }))
	assert.Error(t, r.Register("echo", func() Plugin { return echo{} }))
	assert.Error(t, r.Register("", func() Plugin { return echo{} }))
	assert.Error(t, r.Register("nil", nil))
	assert.Equal(t, []string{"echo"}, r.Names())
}

func TestNew_Unknown(t *testing.T) {
	_, err := Builtin().New("missing")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestRegistries_AreIndependent(t *testing.T) {
	a := Builtin()
	b := Builtin()
	require.NoError(t, a.Register("echo", func() Plugin { return echo{} }))
	assert.Len(t, a.Names(), 4)
	assert.Len(t, b.Names(), 3)
}
