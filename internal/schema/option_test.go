package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestNewOption(t *testing.T) {
	t.Parallel()

	t.Run("valid declaration", func(t *testing.T) {
		t.Parallel()
		opt, err := NewOption(Option{Names: []string{"verbose"}, ShortNames: []rune{'v'}})
		require.NoError(t, err)
		assert.True(t, opt.HasLongName("verbose"))
		assert.True(t, opt.HasShortName('v'))
		assert.False(t, opt.HasLongName("quiet"))
		assert.False(t, opt.HasShortName('q'))
	})

	t.Run("position alone is enough identity", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Position: intPtr(0)})
		assert.NoError(t, err)
	})

	t.Run("no identity at all is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Description: "anonymous"})
		assert.Error(t, err)
	})

	t.Run("long name with a dash prefix is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Names: []string{"--verbose"}})
		assert.Error(t, err)
	})

	t.Run("empty long name is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Names: []string{""}})
		assert.Error(t, err)
	})

	t.Run("negative position is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Names: []string{"x"}, Position: intPtr(-1)})
		assert.Error(t, err)
	})

	t.Run("negative arity bounds are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Names: []string{"x"}, ArityMin: intPtr(-1)})
		assert.Error(t, err)
		_, err = NewOption(Option{Names: []string{"x"}, ArityMax: intPtr(-2)})
		assert.Error(t, err)
	})

	t.Run("inverted arity bounds are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewOption(Option{Names: []string{"x"}, ArityMin: intPtr(3), ArityMax: intPtr(1)})
		assert.Error(t, err)
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opt  Option
		want string
	}{
		{"long name wins", Option{Names: []string{"verbose"}, ShortNames: []rune{'v'}}, "--verbose"},
		{"short name next", Option{ShortNames: []rune{'v'}}, "-v"},
		{"position last", Option{Position: intPtr(2)}, "positional 2"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opt, err := NewOption(tc.opt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, opt.DisplayName())
		})
	}
}

func TestTypeDescriptor(t *testing.T) {
	t.Parallel()

	t.Run("zero value is unspecified", func(t *testing.T) {
		t.Parallel()
		var d TypeDescriptor
		assert.True(t, d.IsUnspecified())
		assert.Equal(t, Unspecified(), d)
	})

	t.Run("only a scalar bool counts as a flag", func(t *testing.T) {
		t.Parallel()
		assert.True(t, Scalar(KindBool).IsBool())
		assert.False(t, ArrayOf(KindBool).IsBool())
		assert.False(t, Scalar(KindString).IsBool())
	})

	t.Run("rendering", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "unspecified", Unspecified().String())
		assert.Equal(t, "number", Scalar(KindNumber).String())
		assert.Equal(t, "array(string)", ArrayOf(KindString).String())
		assert.Equal(t, "list(any)", ListOf(KindUnspecified).String())
	})
}
