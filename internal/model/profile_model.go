package model

import (
	"context"
	"fmt"
	"strings"

	"pickleball_trending/internal/types"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ProfileModel struct {
	Conn sqlx.SqlConn
}

func NewProfileModel(conn sqlx.SqlConn) *ProfileModel {
	return &ProfileModel{Conn: conn}
}

// FindByIDs 批量查询作者展示信息，结果以 user_id 为键
// 查不到的作者不会出现在结果中
func (m *ProfileModel) FindByIDs(ctx context.Context, userIDs []string) (map[string]*types.AuthorProfile, error) {
	result := make(map[string]*types.AuthorProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(userIDs)), ",")
	args := make([]any, 0, len(userIDs))
	for _, id := range userIDs {
		args = append(args, id)
	}

	var profiles []*types.AuthorProfile
	query := "SELECT user_id, username, COALESCE(avatar_url, '') AS avatar_url FROM profiles WHERE user_id IN (" + placeholders + ")"
	if err := m.Conn.QueryRowsCtx(ctx, &profiles, query, args...); err != nil {
		return nil, fmt.Errorf("query profiles failed: %w", err)
	}
	for _, p := range profiles {
		result[p.UserID] = p
	}
	return result, nil
}
