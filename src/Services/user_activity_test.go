package Services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserActivityStorage(t *testing.T) {
	storage := UserActivityStorage{users: map[int64]*UserActivity{}}

	storage.AddUser(5, "kenobi")
	storage.AddUser(6, "grievous")
	storage.UpdateUserLocation(5, "topic", "42")
	storage.UpdateUserLocation(6, "section", "1")

	assert.Len(t, storage.GetActiveUsers(), 2)

	onTopic := storage.GetUsersOnPage("topic", "42")
	require.Len(t, onTopic, 1)
	assert.Equal(t, "kenobi", onTopic[0].Username)

	// Location updates for unknown users are dropped, not registered.
	storage.UpdateUserLocation(99, "topic", "42")
	assert.Len(t, storage.GetUsersOnPage("topic", "42"), 1)

	storage.RemoveUser(5)
	assert.Empty(t, storage.GetUsersOnPage("topic", "42"))
	assert.Len(t, storage.GetActiveUsers(), 1)
}
