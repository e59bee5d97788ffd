package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterIsZero(t *testing.T) {
	require.True(t, Filter{}.IsZero())
	require.False(t, Filter{SkillID: "5"}.IsZero())
	require.False(t, Filter{Location: "Berlin"}.IsZero())
	require.False(t, Filter{SkillID: "5", Location: "Berlin"}.IsZero())
}
