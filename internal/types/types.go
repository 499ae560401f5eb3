package types

import "time"

// VideoEngagementRecord 表示一条视频及其互动计数
// 计数由投票、评论、完播等事件在外部累加
type VideoEngagementRecord struct {
	ID              string    `db:"id"`
	AuthorID        string    `db:"author_id"`
	CreatedAt       time.Time `db:"created_at"`
	LikeCount       int64     `db:"like_count"`
	CommentCount    int64     `db:"comment_count"`
	CompletionCount int64     `db:"completion_count"` // 观看进度 >= 95% 的人数
	ShareCount      int64     `db:"share_count"`      // 预留，目前恒为 0
}

// ScoredVideo 是一次排序过程中的派生结果，不做持久化
type ScoredVideo struct {
	VideoEngagementRecord
	AgeHours           float64
	EngagementVelocity float64
	TrendingScore      float64
}

// AuthorProfile 作者展示信息，仅用于装饰排行结果
type AuthorProfile struct {
	UserID    string `db:"user_id"`
	Username  string `db:"username"`
	AvatarURL string `db:"avatar_url"`
}

type GetTrendingReq struct {
	Limit int `form:"limit,optional"`
}

type TrendingVideo struct {
	Rank               int       `json:"rank"`
	VideoID            string    `json:"videoId"`
	AuthorID           string    `json:"authorId"`
	Username           string    `json:"username"`
	AvatarURL          string    `json:"avatarUrl"`
	CreatedAt          time.Time `json:"createdAt"`
	LikeCount          int64     `json:"likeCount"`
	CommentCount       int64     `json:"commentCount"`
	CompletionCount    int64     `json:"completionCount"`
	ShareCount         int64     `json:"shareCount"`
	AgeHours           float64   `json:"ageHours"`
	EngagementVelocity float64   `json:"engagementVelocity"`
	TrendingScore      float64   `json:"trendingScore"`
	AuthorTopCount     int       `json:"authorTopCount"`
}

type TrendingResp struct {
	List            []TrendingVideo `json:"list"`
	AuthorTopCounts map[string]int  `json:"authorTopCounts"`
	Total           int             `json:"total"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

type RefreshResp struct {
	Ranked      int       `json:"ranked"`
	Authors     int       `json:"authors"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type GetTopCreatorsReq struct {
	Limit int `form:"limit,optional"`
}

type TopCreator struct {
	AuthorID      string `json:"authorId"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatarUrl"`
	TrendingCount int    `json:"trendingCount"`
}

type TopCreatorsResp struct {
	List        []TopCreator `json:"list"`
	GeneratedAt string       `json:"generatedAt,omitempty"`
}

type ErrorResp struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
