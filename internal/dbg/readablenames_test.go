package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a, b := &thing{1}, &thing{1}

	assert.Equal(t, Name(a), Name(a))
	assert.NotEmpty(t, Name(b))
	assert.Equal(t, "Ø", Name(nil))

	var missing *thing
	assert.Equal(t, "Ø", Name(missing))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Brave", title("brave"))
	assert.Equal(t, "", title(""))
}
