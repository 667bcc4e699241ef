package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCorsOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Equal(t, []string{"*"}, parseCorsOrigins())

	t.Setenv("CORS_ORIGINS", "https://grandvista.example, https://admin.grandvista.example")
	assert.Equal(t,
		[]string{"https://grandvista.example", "https://admin.grandvista.example"},
		parseCorsOrigins(),
	)

	t.Setenv("CORS_ORIGINS", " , ,")
	assert.Equal(t, []string{"*"}, parseCorsOrigins())
}
