package svc

import (
	"pickleball_trending/internal/config"
	"pickleball_trending/internal/logic"
	"pickleball_trending/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config        config.Config
	RedisClient   *redis.Client
	VideoModel    *model.VideoModel
	ProfileModel  *model.ProfileModel
	TrendingLogic *logic.TrendingLogic
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.NewMysql(c.DataSource)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
	videoModel := model.NewVideoModel(conn)
	profileModel := model.NewProfileModel(conn)
	return &ServiceContext{
		Config:        c,
		RedisClient:   redisClient,
		VideoModel:    videoModel,
		ProfileModel:  profileModel,
		TrendingLogic: NewTrendingLogic(c, videoModel, profileModel, redisClient),
	}
}

func NewTrendingLogic(c config.Config, videos logic.VideoSource, profiles logic.ProfileSource, redisClient *redis.Client) *logic.TrendingLogic {
	return &logic.TrendingLogic{
		Videos:        videos,
		Profiles:      profiles,
		RedisClient:   redisClient,
		MaxCandidates: c.Trending.MaxCandidates,
		DefaultLimit:  c.Trending.DefaultLimit,
	}
}
