package uuid_test

import (
	"testing"

	"github.com/buckwheat-app/backend/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUnmarshalParam(t *testing.T) {
	u := uuid.UUID{}

	// an invalid UUID does not parse
	assert.NotNil(t, u.UnmarshalParam("not a valid UUID"))

	// A valid UUID in a string parses
	id := uuid.New()
	assert.Nil(t, u.UnmarshalParam(id.String()))
	assert.Equal(t, id, u)

	// Empty string parses to Nil UUID
	assert.Nil(t, u.UnmarshalParam(""))
	assert.Equal(t, uuid.Nil, u)
}
