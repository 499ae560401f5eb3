package model

import (
	"math"
	"time"

	"pickleball_trending/internal/types"
)

// 互动权重：评论 3 倍于点赞，完播 2 倍，分享 5 倍（分享暂未统计）
const (
	LikeWeight       = 1.0
	CommentWeight    = 3.0
	CompletionWeight = 2.0
	ShareWeight      = 5.0

	DecayHalfLifeHours = 24.0
	RecencyWindowHours = 6.0
	RecencyBoostFactor = 1.5
)

// AgeHours 返回 createdAt 到 now 的小时数，未来时间按 0 处理
func AgeHours(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt).Hours()
	if age < 0 {
		return 0
	}
	return age
}

// TotalEngagement 计算加权互动总量，负数计数按 0 处理
func TotalEngagement(rec *types.VideoEngagementRecord) float64 {
	return LikeWeight*nonNegative(rec.LikeCount) +
		CommentWeight*nonNegative(rec.CommentCount) +
		CompletionWeight*nonNegative(rec.CompletionCount) +
		ShareWeight*nonNegative(rec.ShareCount)
}

// TimeDecay 每 24 小时衰减一半
func TimeDecay(ageHours float64) float64 {
	return math.Pow(0.5, ageHours/DecayHalfLifeHours)
}

// RecencyBoost 不足 6 小时的内容乘 1.5，边界 6 小时本身不加成
func RecencyBoost(ageHours float64) float64 {
	if ageHours < RecencyWindowHours {
		return RecencyBoostFactor
	}
	return 1.0
}

// ScoreVideo 计算单条视频的热度分，now 由调用方传入
// score = velocity * decay * boost，age 为 0 时 velocity 取互动总量
func ScoreVideo(rec *types.VideoEngagementRecord, now time.Time) types.ScoredVideo {
	age := AgeHours(rec.CreatedAt, now)
	total := TotalEngagement(rec)

	velocity := total
	if age > 0 {
		velocity = total / age
	}

	return types.ScoredVideo{
		VideoEngagementRecord: *rec,
		AgeHours:              age,
		EngagementVelocity:    velocity,
		TrendingScore:         velocity * TimeDecay(age) * RecencyBoost(age),
	}
}

func nonNegative(n int64) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}
