package id

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	a := FromName("pool", "bad_debt", "usdc")
	assert.Equal(t, a, FromName("pool", "bad_debt", "usdc"))
	assert.NotEqual(t, a, FromName("pool", "interest", "usdc"))

	u, err := uuid.FromString(a)
	assert.NoError(t, err)
	assert.Equal(t, byte(uuid.V5), u.Version())
}

func TestUUIDFromString(t *testing.T) {
	a := UUIDFromString("hello")
	assert.Equal(t, a, UUIDFromString("hello"))

	u, err := uuid.FromString(a)
	assert.NoError(t, err)
	assert.Equal(t, byte(uuid.V3), u.Version())
}

func TestGenUUIDString(t *testing.T) {
	assert.NotEqual(t, GenUUIDString(), GenUUIDString())
}
