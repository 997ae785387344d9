package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name        string
		permissions []string
		want        Level
	}{
		{"nil list", nil, LevelNone},
		{"empty list", []string{}, LevelNone},
		{"unknown strings only", []string{"viewer", "editor"}, LevelNone},
		{"user", []string{"user"}, LevelUser},
		{"admin", []string{"admin"}, LevelAdmin},
		{"admin among others", []string{"user", "admin"}, LevelAdmin},
		{"duplicates", []string{"user", "user"}, LevelUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelOf(tt.permissions))
		})
	}
}

func TestLevelAllows(t *testing.T) {
	// admin implies user access; user never implies admin
	assert.True(t, LevelAdmin.Allows(LevelUser))
	assert.True(t, LevelAdmin.Allows(LevelAdmin))
	assert.True(t, LevelUser.Allows(LevelUser))
	assert.False(t, LevelUser.Allows(LevelAdmin))
	assert.False(t, LevelNone.Allows(LevelUser))
	assert.False(t, LevelNone.Allows(LevelAdmin))
}

func TestRequireAdminDeniesUserOnlyClaims(t *testing.T) {
	assert.False(t, LevelOf([]string{"user"}).Allows(LevelAdmin))
	assert.True(t, LevelOf([]string{"admin"}).Allows(LevelAdmin))
	assert.True(t, LevelOf([]string{"admin"}).Allows(LevelUser))
	assert.True(t, LevelOf([]string{"user"}).Allows(LevelUser))
}
