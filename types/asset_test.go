package types

import (
	"testing"
	"time"

	"github.com/iamlouiesison/usefully-fin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectVotes(t *testing.T) {
	votes := []*models.UsefulVote{
		{UserID: 1, AssetID: 100},
		{UserID: 2, AssetID: 100},
	}

	// 投过票的浏览者
	got := ProjectVotes(votes, 1)
	assert.Equal(t, int64(2), got.Count)
	assert.True(t, got.ViewerHasRelation)

	// 没投过票的浏览者
	got = ProjectVotes(votes, 3)
	assert.Equal(t, int64(2), got.Count)
	assert.False(t, got.ViewerHasRelation)

	// 匿名访客
	got = ProjectVotes(votes, 0)
	assert.Equal(t, int64(2), got.Count)
	assert.False(t, got.ViewerHasRelation)

	// 空集合
	got = ProjectVotes(nil, 1)
	assert.Equal(t, int64(0), got.Count)
	assert.False(t, got.ViewerHasRelation)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	since, err := WindowStart(now, Period24h)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), *since)

	since, err = WindowStart(now, PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-7*24*time.Hour), *since)

	since, err = WindowStart(now, PeriodAll)
	require.NoError(t, err)
	assert.Nil(t, since)

	// 缺省等价于 all
	since, err = WindowStart(now, "")
	require.NoError(t, err)
	assert.Nil(t, since)

	_, err = WindowStart(now, "month")
	assert.Error(t, err)
}
