package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Service 基础服务，包含数据库和配置
type Service struct {
	DB  *gorm.DB
	RDB *redis.Client

	// FeedLimit 首页动态流最多返回的消息条数，<= 0 表示不限制
	FeedLimit int

	// SessionTTL 登录会话有效期，<= 0 时使用 defaultSessionTTL
	SessionTTL time.Duration
}

