package mnemonic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStarlark(t *testing.T) {
	assert := assert.New(t)

	src := `
BASE = ["OpAlubAdd", "OpAluw"]
DISPATCH = BASE + ["OpUd"] * 2
`
	tab, err := ParseStarlark("ops.star", src)
	assert.NoError(err)
	assert.Equal("ops.star", tab.Name)
	assert.Equal([]string{"OpAlubAdd", "OpAluw", "OpUd", "OpUd"}, tab.Names)

	tab, err = ParseStarlark("tuple.star", `DISPATCH = ("OpA", "OpB")`)
	assert.NoError(err)
	assert.Equal([]string{"OpA", "OpB"}, tab.Names)
}

func TestParseStarlark_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseStarlark("none.star", `OTHER = []`)
	assert.ErrorIs(err, ErrDispatch)

	_, err = ParseStarlark("string.star", `DISPATCH = "OpA"`)
	assert.ErrorIs(err, ErrDispatch)

	_, err = ParseStarlark("empty.star", `DISPATCH = []`)
	assert.ErrorIs(err, ErrTableEmpty)

	_, err = ParseStarlark("type.star", `DISPATCH = ["OpA", 2]`)
	assert.ErrorIs(err, ErrEntryType)
	var ee ErrEntry
	assert.True(errors.As(err, &ee))
	assert.Equal(1, ee.Index)

	_, err = ParseStarlark("name.star", `DISPATCH = ["Op A"]`)
	assert.ErrorIs(err, ErrName("Op A"))

	_, err = ParseStarlark("syntax.star", `DISPATCH = [`)
	assert.Error(err)
}
