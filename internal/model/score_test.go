package model

import (
	"math"
	"testing"
	"time"

	"pickleball_trending/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC)

func hoursAgo(h float64) time.Time {
	return testNow.Add(-time.Duration(h * float64(time.Hour)))
}

func TestScoreVideo_Scenario(t *testing.T) {
	a := &types.VideoEngagementRecord{ID: "a", AuthorID: "u1", CreatedAt: testNow, LikeCount: 10}
	b := &types.VideoEngagementRecord{ID: "b", AuthorID: "u2", CreatedAt: hoursAgo(12), CommentCount: 10}

	sa := ScoreVideo(a, testNow)
	assert.Equal(t, 0.0, sa.AgeHours)
	assert.Equal(t, 10.0, sa.EngagementVelocity)
	assert.InDelta(t, 15.0, sa.TrendingScore, 1e-9)

	sb := ScoreVideo(b, testNow)
	assert.InDelta(t, 12.0, sb.AgeHours, 1e-9)
	assert.InDelta(t, 2.5, sb.EngagementVelocity, 1e-9)
	assert.InDelta(t, 0.70710678, TimeDecay(sb.AgeHours), 1e-8)
	assert.InDelta(t, 1.76776695, sb.TrendingScore, 1e-8)

	assert.Greater(t, sa.TrendingScore, sb.TrendingScore)
}

func TestScoreVideo_ZeroAgeUsesTotalEngagement(t *testing.T) {
	rec := &types.VideoEngagementRecord{CreatedAt: testNow, LikeCount: 2, CommentCount: 1, CompletionCount: 4}

	s := ScoreVideo(rec, testNow)
	require.False(t, math.IsNaN(s.EngagementVelocity))
	require.False(t, math.IsInf(s.EngagementVelocity, 0))
	assert.Equal(t, TotalEngagement(rec), s.EngagementVelocity)
	assert.Equal(t, 13.0, s.EngagementVelocity)
}

func TestScoreVideo_OlderDecaysMore(t *testing.T) {
	newer := &types.VideoEngagementRecord{CreatedAt: hoursAgo(3), LikeCount: 20, CommentCount: 4}
	older := &types.VideoEngagementRecord{CreatedAt: hoursAgo(30), LikeCount: 20, CommentCount: 4}

	sn := ScoreVideo(newer, testNow)
	so := ScoreVideo(older, testNow)

	assert.LessOrEqual(t, TimeDecay(so.AgeHours), TimeDecay(sn.AgeHours))
	assert.LessOrEqual(t, so.TrendingScore, sn.TrendingScore)
}

func TestTimeDecay_HalfLife(t *testing.T) {
	assert.Equal(t, 1.0, TimeDecay(0))
	assert.InDelta(t, 0.5, TimeDecay(24), 1e-12)
	assert.InDelta(t, 0.25, TimeDecay(48), 1e-12)
}

func TestTotalEngagement_Weights(t *testing.T) {
	base := &types.VideoEngagementRecord{LikeCount: 5, CommentCount: 2}
	moreComments := &types.VideoEngagementRecord{LikeCount: 5, CommentCount: 3}
	moreLikes := &types.VideoEngagementRecord{LikeCount: 6, CommentCount: 2}

	assert.Greater(t, TotalEngagement(moreComments), TotalEngagement(base))
	assert.Greater(t, TotalEngagement(moreComments)-TotalEngagement(base), TotalEngagement(moreLikes)-TotalEngagement(base))
	assert.Equal(t, 3.0, TotalEngagement(moreComments)-TotalEngagement(base))

	assert.Equal(t, 2.0, TotalEngagement(&types.VideoEngagementRecord{CompletionCount: 1}))
	assert.Equal(t, 5.0, TotalEngagement(&types.VideoEngagementRecord{ShareCount: 1}))
}

func TestRecencyBoost_Boundary(t *testing.T) {
	assert.Equal(t, 1.5, RecencyBoost(5.999))
	assert.Equal(t, 1.0, RecencyBoost(6))

	atBoundary := ScoreVideo(&types.VideoEngagementRecord{CreatedAt: hoursAgo(6), LikeCount: 12}, testNow)
	assert.InDelta(t, 2*TimeDecay(6), atBoundary.TrendingScore, 1e-12)

	justUnder := ScoreVideo(&types.VideoEngagementRecord{CreatedAt: hoursAgo(5.999), LikeCount: 12}, testNow)
	assert.Less(t, justUnder.AgeHours, 6.0)
	assert.InDelta(t, 12/justUnder.AgeHours*TimeDecay(justUnder.AgeHours)*1.5, justUnder.TrendingScore, 1e-9)
}

func TestScoreVideo_FutureCreatedAtClampsAge(t *testing.T) {
	rec := &types.VideoEngagementRecord{CreatedAt: testNow.Add(2 * time.Hour), LikeCount: 4}

	s := ScoreVideo(rec, testNow)
	assert.Equal(t, 0.0, s.AgeHours)
	assert.Equal(t, 6.0, s.TrendingScore)
}

func TestScoreVideo_NegativeCountersClampToZero(t *testing.T) {
	rec := &types.VideoEngagementRecord{CreatedAt: testNow, LikeCount: -7, CommentCount: 1, CompletionCount: -2, ShareCount: -1}

	assert.Equal(t, 3.0, TotalEngagement(rec))
	assert.Equal(t, 4.5, ScoreVideo(rec, testNow).TrendingScore)
}

func TestScoreVideo_ZeroTimeIsFinite(t *testing.T) {
	s := ScoreVideo(&types.VideoEngagementRecord{LikeCount: 100}, testNow)

	assert.False(t, math.IsNaN(s.TrendingScore))
	assert.False(t, math.IsInf(s.TrendingScore, 0))
	assert.GreaterOrEqual(t, s.TrendingScore, 0.0)
}

func TestScoreVideo_DoesNotMutateInput(t *testing.T) {
	rec := &types.VideoEngagementRecord{ID: "v", AuthorID: "u", CreatedAt: hoursAgo(1), LikeCount: -1, CommentCount: 3}
	before := *rec

	s := ScoreVideo(rec, testNow)
	assert.Equal(t, before, *rec)
	assert.Equal(t, before, s.VideoEngagementRecord)
}
