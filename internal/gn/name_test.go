package gn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuchsia-tools/gendefs/internal/gn"
)

func TestTargetName(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"fdio", "fdio"},
		{"images-x64", "images_x64"},
		{"a-b-c", "a_b_c"},
		{"already_fine", "already_fine"},
	}
	for _, tt := range tests {
		got, err := gn.TargetName(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTargetNameRejectsDots(t *testing.T) {
	t.Parallel()

	_, err := gn.TargetName("fuchsia.sys")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuchsia.sys")
}

func TestFidlTargetName(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"fuchsia.foo.bar", "foo_bar"},
		{"fuchsia.sys", "sys"},
		{"test.placeholders", "test_placeholders"},
		{"not.fuchsia.prefixed", "not_fuchsia_prefixed"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		got, err := gn.FidlTargetName(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFidlTargetNameRejectsHyphens(t *testing.T) {
	t.Parallel()

	_, err := gn.FidlTargetName("fuchsia.bad-name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuchsia.bad-name")
}
