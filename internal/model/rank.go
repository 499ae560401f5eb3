package model

import (
	"sort"
	"time"

	"pickleball_trending/internal/types"
)

// TopK 统计作者上榜次数时只看前 10 名
const TopK = 10

// Rank 对全部记录逐一打分后按热度分降序排列
// 稳定排序，同分保持输入顺序（数据源按创建时间倒序给出）
func Rank(records []*types.VideoEngagementRecord, now time.Time) []types.ScoredVideo {
	scored := make([]types.ScoredVideo, 0, len(records))
	for _, rec := range records {
		scored = append(scored, ScoreVideo(rec, now))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TrendingScore > scored[j].TrendingScore
	})
	return scored
}

// CountTopAuthors 统计已排序结果前 TopK 名中每位作者出现的次数
func CountTopAuthors(ranked []types.ScoredVideo) map[string]int {
	counts := make(map[string]int)
	for i := 0; i < len(ranked) && i < TopK; i++ {
		counts[ranked[i].AuthorID]++
	}
	return counts
}

// Trending 排序并统计作者上榜次数
func Trending(records []*types.VideoEngagementRecord, now time.Time) ([]types.ScoredVideo, map[string]int) {
	ranked := Rank(records, now)
	return ranked, CountTopAuthors(ranked)
}
