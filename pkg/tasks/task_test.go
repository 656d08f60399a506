package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("blocked")
	assert.Error(t, err)
	_, err = ParseStatus("all")
	assert.Error(t, err, "all is a filter, not a status")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Done", StatusDone.Label())
}

func TestParseStatusFilter(t *testing.T) {
	f, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseStatusFilter("in-progress")
	require.NoError(t, err)
	assert.True(t, f.Match(StatusInProgress))
	assert.False(t, f.Match(StatusDone))
	assert.True(t, FilterAll.Match(StatusDone))

	_, err = ParseStatusFilter("later")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("  abc ")
	require.NoError(t, err)
	assert.Equal(t, ID("abc"), id)

	_, err = ParseID("   ")
	assert.Error(t, err)

	assert.NotEqual(t, NewID(), NewID())
}

func TestParseSort(t *testing.T) {
	f, err := ParseSortField("createdAt")
	require.NoError(t, err)
	assert.Equal(t, SortByCreatedAt, f)
	_, err = ParseSortField("priority")
	assert.Error(t, err)

	o, err := ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, o)
	_, err = ParseSortOrder("up")
	assert.Error(t, err)
}
