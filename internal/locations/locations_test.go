package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierarchy(t *testing.T) {
	assert.NotEmpty(t, Cities())
	assert.Equal(t, "TP. Hồ Chí Minh", DefaultCity())

	assert.NotEmpty(t, Districts("TP. Hồ Chí Minh"))
	assert.Empty(t, Districts("Atlantis"))

	// Pas de quartiers tant que le district n'est pas fixé ou est inconnu.
	assert.Empty(t, Wards("TP. Hồ Chí Minh", ""))
	assert.Empty(t, Wards("TP. Hồ Chí Minh", "Quartier fantôme"))
	assert.Empty(t, Wards("", "Quận 1"))

	assert.NotEmpty(t, Wards("TP. Hồ Chí Minh", "Quận 1"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("TP. Hồ Chí Minh", "Quận 1", "Phường Bến Nghé"))
	assert.False(t, Valid("TP. Hồ Chí Minh", "Quận 1", "Phường Dịch Vọng"))
	assert.False(t, Valid("Hà Nội", "Quận 1", "Phường Bến Nghé"))
}
