package config

import "github.com/zeromicro/go-zero/rest"

type RedisConf struct {
	Addr     string
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
}

type TrendingConf struct {
	MaxCandidates int `json:",default=500"` // 每次排序最多读取的最新视频数
	DefaultLimit  int `json:",default=50"`
}

type Config struct {
	rest.RestConf
	DataSource string // MySQL DSN，需要 parseTime=true
	Redis      RedisConf
	Trending   TrendingConf
}
