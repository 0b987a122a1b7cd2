package typeparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshisuproject/mbgplug/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		fqn       string
		short     string
		imports   []string
		primitive bool
	}{
		{
			name:    "simple qualified",
			input:   "com.example.User",
			fqn:     "com.example.User",
			short:   "User",
			imports: []string{"com.example.User"},
		},
		{
			name:      "primitive",
			input:     "long",
			fqn:       "long",
			short:     "long",
			primitive: true,
		},
		{
			name:  "java.lang is not imported",
			input: "java.lang.String",
			fqn:   "java.lang.String",
			short: "String",
		},
		{
			name:    "generic",
			input:   "java.util.List<com.example.User>",
			fqn:     "java.util.List<com.example.User>",
			short:   "List<User>",
			imports: []string{"java.util.List", "com.example.User"},
		},
		{
			name:    "nested generic with spaces",
			input:   "java.util.Map< java.lang.String , java.util.List<com.example.User>>",
			fqn:     "java.util.Map<java.lang.String, java.util.List<com.example.User>>",
			short:   "Map<String, List<User>>",
			imports: []string{"java.util.Map", "java.util.List", "com.example.User"},
		},
		{
			name:    "bounded wildcard",
			input:   "java.util.List<? extends com.example.Base>",
			fqn:     "java.util.List<? extends com.example.Base>",
			short:   "List<? extends Base>",
			imports: []string{"java.util.List", "com.example.Base"},
		},
		{
			name:    "super wildcard",
			input:   "java.util.function.Consumer<? super com.example.User>",
			fqn:     "java.util.function.Consumer<? super com.example.User>",
			short:   "Consumer<? super User>",
			imports: []string{"java.util.function.Consumer", "com.example.User"},
		},
		{
			name:    "unbounded wildcard",
			input:   "java.util.Optional<?>",
			fqn:     "java.util.Optional<?>",
			short:   "Optional<?>",
			imports: []string{"java.util.Optional"},
		},
		{
			name:  "primitive array",
			input: "byte[]",
			fqn:   "byte[]",
			short: "byte[]",
		},
		{
			name:    "two dimensional array",
			input:   "com.example.Cell[][]",
			fqn:     "com.example.Cell[][]",
			short:   "Cell[][]",
			imports: []string{"com.example.Cell"},
		},
		{
			name:  "default package",
			input: "Optional<User>",
			fqn:   "Optional<User>",
			short: "Optional<User>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.fqn, ref.FullyQualifiedName())
			assert.Equal(t, tt.short, ref.ShortName())
			assert.Equal(t, tt.imports, ref.ImportList())
			assert.Equal(t, tt.primitive, ref.IsPrimitive())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"java.util.List<",
		"java.util.List<int>",
		"java.lang.long",
		"List<>",
		"com..User",
		"List<? extends ?>",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestParse_WildcardsAndArrays(t *testing.T) {
	ref := MustParse("java.util.List<? super java.lang.Integer>")
	args := ref.TypeArguments()
	require.Len(t, args, 1)
	assert.True(t, args[0].IsWildcard())
	assert.False(t, ref.IsWildcard())
	assert.Equal(t, "? super Integer", args[0].ShortName())

	assert.True(t, MustParse("?").IsWildcard())

	grid := MustParse("int[][]")
	assert.True(t, grid.Equal(models.IntType.ArrayOf(2)))
	assert.True(t, grid.IsArray())
	assert.False(t, grid.IsPrimitive())

	cells := MustParse("java.util.List<com.example.Cell>[]")
	assert.Equal(t, "List<Cell>[][]", cells.ArrayOf(1).ShortName())
	assert.Equal(t, "List<Cell>[]", cells.ShortName())
}

func TestParser_Cache(t *testing.T) {
	p, err := NewParser(2)
	require.NoError(t, err)

	first, err := p.Parse("java.util.List<com.example.User>")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CacheLen())

	second, err := p.Parse("  java.util.List<com.example.User>  ")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, p.CacheLen())

	_, err = p.Parse("com.example.A")
	require.NoError(t, err)
	_, err = p.Parse("com.example.B")
	require.NoError(t, err)
	assert.Equal(t, 2, p.CacheLen(), "cache must stay bounded")
}

func TestParse_GenericRoundTrip(t *testing.T) {
	user := MustParse("com.example.User")
	optional := MustParse("java.util.Optional")

	wrapped := optional.Generic(user)
	parsed := MustParse(wrapped.FullyQualifiedName())

	assert.True(t, wrapped.Equal(parsed))
	assert.Equal(t, "Optional<User>", parsed.ShortName())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("java.util.List<")
	})
}
