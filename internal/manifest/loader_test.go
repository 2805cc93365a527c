package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/optsift/internal/schema"
)

// writeManifest drops an HCL manifest into dir and returns its path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full command declaration", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "greet.hcl", `
command "greet" {
  summary = "Say hello."

  option "name" {
    short       = "n"
    type        = string
    required    = true
    position    = 0
    description = "Who to greet."
  }

  option "count" {
    type    = number
    default = 1
  }

  option "loud" {
    type = bool
  }

  option "tags" {
    type = list(string)

    arity {
      min = 1
      max = 4
    }
  }
}
`)

		commands, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, commands, 1)

		cmd := commands["greet"]
		require.NotNil(t, cmd)
		assert.Equal(t, "Say hello.", cmd.Summary)
		require.Len(t, cmd.Options, 4)

		name := cmd.Options[0]
		assert.Equal(t, []string{"name"}, name.Names)
		assert.Equal(t, []rune{'n'}, name.ShortNames)
		assert.Equal(t, schema.Scalar(schema.KindString), name.Type)
		assert.True(t, name.Required)
		require.NotNil(t, name.Position)
		assert.Equal(t, 0, *name.Position)

		count := cmd.Options[1]
		assert.Equal(t, schema.Scalar(schema.KindNumber), count.Type)
		require.NotNil(t, count.DefaultValue)
		assert.Equal(t, "1", *count.DefaultValue)

		assert.Equal(t, schema.Scalar(schema.KindBool), cmd.Options[2].Type)

		tags := cmd.Options[3]
		assert.Equal(t, schema.ListOf(schema.KindString), tags.Type)
		require.NotNil(t, tags.ArityMin)
		require.NotNil(t, tags.ArityMax)
		assert.Equal(t, 1, *tags.ArityMin)
		assert.Equal(t, 4, *tags.ArityMax)
	})

	t.Run("commands accumulate across files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "a.hcl", `command "alpha" {}`)
		writeManifest(t, dir, "b.hcl", `command "beta" {}`)

		commands, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Len(t, commands, 2)
		assert.Contains(t, commands, "alpha")
		assert.Contains(t, commands, "beta")
	})

	t.Run("duplicate command name fails the load", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "a.hcl", `command "dup" {}`)
		writeManifest(t, dir, "b.hcl", `command "dup" {}`)

		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate command")
	})

	t.Run("unparseable manifest fails the load", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "bad.hcl", `command "x" {`)

		_, err := NewLoader().Load(context.Background(), dir)
		assert.Error(t, err)
	})

	t.Run("missing directory yields no commands", func(t *testing.T) {
		t.Parallel()
		commands, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, commands)
	})
}

func TestTranslateOptionErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			"array of any is rejected",
			"command \"c\" {\n  option \"x\" {\n    type = array(any)\n  }\n}\n",
			"array element type",
		},
		{
			"multi-character short name",
			"command \"c\" {\n  option \"x\" {\n    short = \"xy\"\n  }\n}\n",
			"single character",
		},
		{
			"unknown primitive type",
			"command \"c\" {\n  option \"x\" {\n    type = banana\n  }\n}\n",
			"unknown primitive type",
		},
		{
			"constructor arity",
			"command \"c\" {\n  option \"x\" {\n    type = list(string, number)\n  }\n}\n",
			"exactly one argument",
		},
		{
			"inverted arity bounds",
			"command \"c\" {\n  option \"x\" {\n    arity {\n      min = 3\n      max = 1\n    }\n  }\n}\n",
			"exceeds max",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeManifest(t, dir, "m.hcl", tc.manifest)

			_, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestTranslateTypeKeywords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "types.hcl", `
command "types" {
  option "a" { type = any }
  option "b" { type = list(any) }
  option "c" { type = array(number) }
}
`)

	commands, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	cmd := commands["types"]
	require.NotNil(t, cmd)
	require.Len(t, cmd.Options, 3)

	assert.Equal(t, schema.Unspecified(), cmd.Options[0].Type, "any declares no coercion")
	assert.Equal(t, schema.ListOf(schema.KindUnspecified), cmd.Options[1].Type)
	assert.Equal(t, schema.ArrayOf(schema.KindNumber), cmd.Options[2].Type)
}
