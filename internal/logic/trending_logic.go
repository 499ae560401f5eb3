package logic

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"pickleball_trending/internal/model"
	"pickleball_trending/internal/types"

	"github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	VideosKey      = "trending:videos"
	AuthorsKey     = "trending:authors"
	GeneratedAtKey = "trending:generated_at"

	DefaultLimit         = 50
	MaxLimit             = 100
	DefaultMaxCandidates = 500
)

// ErrDataUnavailable 数据源或作者信息读取失败，此时不做排序
var ErrDataUnavailable = errors.New("trending data unavailable")

type VideoSource interface {
	FindRecent(ctx context.Context, limit int) ([]*types.VideoEngagementRecord, error)
}

type ProfileSource interface {
	FindByIDs(ctx context.Context, userIDs []string) (map[string]*types.AuthorProfile, error)
}

// TrendingLogic 负责热门榜的业务逻辑
// 每次请求都从原始计数重新打分，不缓存分数
type TrendingLogic struct {
	Videos        VideoSource
	Profiles      ProfileSource
	RedisClient   *redis.Client
	MaxCandidates int
	DefaultLimit  int
	Now           func() time.Time
	mu            sync.Mutex // 串行化快照发布，避免旧结果覆盖新结果
}

// GetTrending 拉取视频、排序并补充作者信息，返回前 limit 条
func (l *TrendingLogic) GetTrending(ctx context.Context, limit int) (*types.TrendingResp, error) {
	now := l.now()
	ranked, authorCounts, err := l.rank(ctx, now)
	if err != nil {
		return nil, err
	}

	top := ranked[:min(l.clampLimit(limit), len(ranked))]
	profiles, err := l.Profiles.FindByIDs(ctx, distinctAuthors(top))
	if err != nil {
		logx.WithContext(ctx).Errorw("load author profiles failed", logx.Field("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	resp := &types.TrendingResp{
		List:            make([]types.TrendingVideo, 0, len(top)),
		AuthorTopCounts: authorCounts,
		Total:           len(ranked),
		GeneratedAt:     now,
	}
	for i, v := range top {
		item := types.TrendingVideo{
			Rank:               i + 1,
			VideoID:            v.ID,
			AuthorID:           v.AuthorID,
			CreatedAt:          v.CreatedAt,
			LikeCount:          v.LikeCount,
			CommentCount:       v.CommentCount,
			CompletionCount:    v.CompletionCount,
			ShareCount:         v.ShareCount,
			AgeHours:           v.AgeHours,
			EngagementVelocity: v.EngagementVelocity,
			TrendingScore:      v.TrendingScore,
			AuthorTopCount:     authorCounts[v.AuthorID],
		}
		if p, ok := profiles[v.AuthorID]; ok {
			item.Username = p.Username
			item.AvatarURL = p.AvatarURL
		}
		resp.List = append(resp.List, item)
	}
	return resp, nil
}

// Refresh 在互动计数变化后触发，重算排行并整体替换 Redis 中的快照
func (l *TrendingLogic) Refresh(ctx context.Context) (*types.RefreshResp, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	ranked, authorCounts, err := l.rank(ctx, now)
	if err != nil {
		return nil, err
	}

	videoMembers := make([]*redis.Z, 0, len(ranked))
	for _, v := range ranked {
		videoMembers = append(videoMembers, &redis.Z{Score: v.TrendingScore, Member: v.ID})
	}
	authorMembers := make([]*redis.Z, 0, len(authorCounts))
	for authorID, count := range authorCounts {
		authorMembers = append(authorMembers, &redis.Z{Score: float64(count), Member: authorID})
	}

	pipe := l.RedisClient.TxPipeline()
	pipe.Del(ctx, VideosKey, AuthorsKey)
	if len(videoMembers) > 0 {
		pipe.ZAdd(ctx, VideosKey, videoMembers...)
	}
	if len(authorMembers) > 0 {
		pipe.ZAdd(ctx, AuthorsKey, authorMembers...)
	}
	pipe.Set(ctx, GeneratedAtKey, now.UTC().Format(time.RFC3339Nano), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("update redis zset failed: %w", err)
	}

	logx.WithContext(ctx).Infow("trending snapshot published",
		logx.Field("ranked", len(ranked)),
		logx.Field("authors", len(authorCounts)))
	return &types.RefreshResp{
		Ranked:      len(ranked),
		Authors:     len(authorCounts),
		GeneratedAt: now,
	}, nil
}

// TopCreators 读取最近一次发布的作者上榜次数排行
func (l *TrendingLogic) TopCreators(ctx context.Context, limit int) (*types.TopCreatorsResp, error) {
	items, err := l.RedisClient.ZRevRangeWithScores(ctx, AuthorsKey, 0, int64(l.clampLimit(limit)-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read author leaderboard failed: %w", err)
	}
	generatedAt, err := l.RedisClient.Get(ctx, GeneratedAtKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read snapshot time failed: %w", err)
	}

	resp := &types.TopCreatorsResp{
		List:        make([]types.TopCreator, 0, len(items)),
		GeneratedAt: generatedAt,
	}
	ids := make([]string, 0, len(items))
	for _, z := range items {
		authorID := memberString(z.Member)
		ids = append(ids, authorID)
		resp.List = append(resp.List, types.TopCreator{
			AuthorID:      authorID,
			TrendingCount: int(z.Score),
		})
	}

	profiles, err := l.Profiles.FindByIDs(ctx, ids)
	if err != nil {
		logx.WithContext(ctx).Errorw("load author profiles failed", logx.Field("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	for i := range resp.List {
		if p, ok := profiles[resp.List[i].AuthorID]; ok {
			resp.List[i].Username = p.Username
			resp.List[i].AvatarURL = p.AvatarURL
		}
	}
	return resp, nil
}

func (l *TrendingLogic) rank(ctx context.Context, now time.Time) ([]types.ScoredVideo, map[string]int, error) {
	records, err := l.Videos.FindRecent(ctx, l.maxCandidates())
	if err != nil {
		logx.WithContext(ctx).Errorw("load videos failed", logx.Field("error", err.Error()))
		return nil, nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	ranked, authorCounts := model.Trending(records, now)
	return ranked, authorCounts, nil
}

func (l *TrendingLogic) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *TrendingLogic) maxCandidates() int {
	if l.MaxCandidates > 0 {
		return l.MaxCandidates
	}
	return DefaultMaxCandidates
}

func (l *TrendingLogic) clampLimit(limit int) int {
	if limit <= 0 {
		limit = l.DefaultLimit
		if limit <= 0 {
			limit = DefaultLimit
		}
	}
	return min(limit, MaxLimit)
}

func distinctAuthors(videos []types.ScoredVideo) []string {
	seen := make(map[string]struct{}, len(videos))
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.AuthorID]; ok {
			continue
		}
		seen[v.AuthorID] = struct{}{}
		ids = append(ids, v.AuthorID)
	}
	return ids
}

func memberString(member interface{}) string {
	switch m := member.(type) {
	case string:
		return m
	case int64:
		return strconv.FormatInt(m, 10)
	default:
		return fmt.Sprint(m)
	}
}
