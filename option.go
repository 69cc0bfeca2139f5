package studybud

import (
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	defaultCookieName = "sessionid"
	defaultFeedLimit  = 50
)

type ServiceConfig struct {
	// Debug 为 true 时 500 响应带上原始错误信息
	Debug bool
}

// SessionConfig 会话 cookie 配置
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type Config struct {
	DB      *gorm.DB
	RDB     *redis.Client
	Service ServiceConfig
	Session SessionConfig

	// UploadDir 头像上传目录，对外以 /uploads 提供。
	// 为空时使用可执行文件所在目录下的 uploads。
	UploadDir string

	// FeedLimit 首页动态流条数上限，<= 0 不限制
	FeedLimit int
}

type Option func(*Config)

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(RDB *redis.Client) Option {
	return func(c *Config) {
		c.RDB = RDB
	}
}

func WithServiceDebug(debug bool) Option {
	return func(c *Config) {
		c.Service.Debug = debug
	}
}

// WithSessionTTL 会话有效期，同时作为 cookie MaxAge
func WithSessionTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.Session.TTL = ttl
	}
}

func WithCookieName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Session.CookieName = name
		}
	}
}

// WithSecureCookie 仅 HTTPS 下发送会话 cookie
func WithSecureCookie(secure bool) Option {
	return func(c *Config) {
		c.Session.Secure = secure
	}
}

func WithUploadDir(dir string) Option {
	return func(c *Config) {
		c.UploadDir = dir
	}
}

func WithFeedLimit(limit int) Option {
	return func(c *Config) {
		c.FeedLimit = limit
	}
}
