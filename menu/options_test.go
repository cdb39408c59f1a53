package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionDefaults(t *testing.T) {
	o := newOptions()
	assert.Equal(t, DefaultTitle, o.Title)
	assert.Equal(t, DefaultPrompt, o.Prompt)
	assert.NotNil(t, o.Logger)
	assert.Empty(t, o.Entries)

	o = newOptions(Title("T"), Prompt("> "))
	assert.Equal(t, "T", o.Title)
	assert.Equal(t, "> ", o.Prompt)
}
