package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"tasklist/internal/config"
)

func TestBinding_DropsEmptyAndDuplicateKeys(t *testing.T) {
	b := binding("no", "n", "", "n", "esc")
	assert.Equal(t, []string{"n", "esc"}, b.Keys())
	assert.Equal(t, "n", b.Help().Key)
	assert.Equal(t, "no", b.Help().Desc)
}

func TestBinding_SpaceLabel(t *testing.T) {
	assert.Equal(t, "space", binding("done", " ").Help().Key)
}

func TestNewKeyMap_UsesConfiguredKeys(t *testing.T) {
	km := config.Default().Keys
	km.Add = "n"
	keys := newKeyMap(km)

	assert.True(t, key.Matches(runes("n"), keys.Add))
	assert.False(t, key.Matches(runes("a"), keys.Add))
	assert.True(t, key.Matches(down, keys.Down))
	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 4)
}
