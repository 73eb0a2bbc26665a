package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("wrong-password", digest))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	d1, err := h.Hash("secret123")
	assert.NoError(t, err)
	d2, err := h.Hash("secret123")
	assert.NoError(t, err)

	// Same password, different salt, different digest
	assert.NotEqual(t, d1, d2)
	assert.True(t, h.Verify("secret123", d1))
	assert.True(t, h.Verify("secret123", d2))
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(1000)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
