package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotapt/pkg/errors"
)

type stubDirective struct {
	name    string
	accepts []string
}

func (s *stubDirective) Name() string { return s.name }

func (s *stubDirective) CanHandle(name string) bool {
	for _, a := range s.accepts {
		if a == name {
			return true
		}
	}
	return false
}

func (s *stubDirective) Handle(context.Context, string, interface{}) (bool, error) {
	return true, nil
}

func TestDirectivesLookup(t *testing.T) {
	d := NewDirectives()
	apt := &stubDirective{name: "apt-get", accepts: []string{"apt-get"}}
	alias := &stubDirective{name: "apt-alias", accepts: []string{"apt-get", "apt"}}

	require.NoError(t, d.Add(apt))
	require.NoError(t, d.Add(alias))

	t.Run("first registered wins", func(t *testing.T) {
		got, err := d.Lookup("apt-get")
		require.NoError(t, err)
		assert.Same(t, apt, got)
	})

	t.Run("falls through to later directives", func(t *testing.T) {
		got, err := d.Lookup("apt")
		require.NoError(t, err)
		assert.Same(t, alias, got)
	})

	t.Run("unknown directive", func(t *testing.T) {
		_, err := d.Lookup("brew")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirectiveUnknown), "got %v", err)
		assert.Equal(t, "brew", errors.GetErrorDetails(err)["directive"])
	})

	assert.Equal(t, []string{"apt-get", "apt-alias"}, d.Names())
}

func TestDirectivesAdd(t *testing.T) {
	d := NewDirectives()

	assert.True(t, errors.IsErrorCode(d.Add(nil), errors.ErrInvalidInput))

	require.NoError(t, d.Add(&stubDirective{name: "apt-get"}))
	err := d.Add(&stubDirective{name: "apt-get"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
}
