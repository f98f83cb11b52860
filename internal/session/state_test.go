package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	anon := NewState(Record{})
	assert.False(t, anon.IsAuthenticated())
	_, ok := anon.Principal()
	assert.False(t, ok)

	s := NewState(Record{PrincipalID: "108234"})
	assert.True(t, s.IsAuthenticated())
	p, ok := s.Principal()
	assert.True(t, ok)
	assert.Equal(t, "108234", p.ID)
	assert.Empty(t, p.Email)
	assert.Equal(t, Record{PrincipalID: "108234"}, s.Record())
}

func TestContext(t *testing.T) {
	assert.False(t, FromContext(context.Background()).IsAuthenticated())

	ctx := NewContext(context.Background(), NewState(Record{PrincipalID: "42"}))
	assert.True(t, FromContext(ctx).IsAuthenticated())
}
