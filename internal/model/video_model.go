package model

import (
	"context"
	"fmt"

	"pickleball_trending/internal/types"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type VideoModel struct {
	Conn sqlx.SqlConn
}

func NewVideoModel(conn sqlx.SqlConn) *VideoModel {
	return &VideoModel{Conn: conn}
}

// FindRecent 按创建时间倒序取最近 limit 条视频及其互动计数
// 排序时同分视频保持这里给出的顺序
func (m *VideoModel) FindRecent(ctx context.Context, limit int) ([]*types.VideoEngagementRecord, error) {
	var records []*types.VideoEngagementRecord
	err := m.Conn.QueryRowsCtx(ctx, &records, `
		SELECT id, author_id, created_at, like_count, comment_count, completion_count, share_count
		FROM videos
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent videos failed: %w", err)
	}
	return records, nil
}
