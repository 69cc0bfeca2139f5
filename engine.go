package studybud

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/cydxin/studybud/middleware"
	"github.com/cydxin/studybud/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type StudyEngine struct {
	config *Config

	UserService *service.UserService
	RoomService *service.RoomService
	MsgService  *service.MessageService
	AuthService *service.AuthService // 会话服务
}

var tagNameOnce sync.Once

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) (*StudyEngine, error) {
	c := &Config{
		Session:   SessionConfig{CookieName: defaultCookieName},
		FeedLimit: defaultFeedLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.DB == nil {
		return nil, errors.New("studybud: DB is required")
	}
	if c.RDB == nil {
		return nil, errors.New("studybud: RDB is required")
	}
	c.UploadDir = defaultUploadDir(c.UploadDir)

	e := &StudyEngine{config: c}

	baseService := &service.Service{
		DB:         c.DB,
		RDB:        c.RDB,
		FeedLimit:  c.FeedLimit,
		SessionTTL: c.Session.TTL,
	}

	e.UserService = service.NewUserService(baseService)
	e.RoomService = service.NewRoomService(baseService)
	e.MsgService = service.NewMessageService(baseService)
	e.AuthService = service.NewAuthService(c.RDB, c.Session.TTL)

	// 迁移表
	if err := e.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	useFormTagNames()
	return e, nil
}

// useFormTagNames 让绑定校验错误使用表单字段名（room_name）而不是结构体字段名（Name）
func useFormTagNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("binding validator is not go-playground, field names stay as struct names")
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// Config 只读配置
func (c *StudyEngine) Config() Config {
	return *c.config
}

// GinSessionMiddleware 返回配置好的会话中间件
// 使用 StudyEngine 内部的 AuthService 和 cookie 配置
//
// 使用示例:
//
//	engine, _ := studybud.NewEngine(...)
//	r := gin.New()
//	r.Use(engine.GinSessionMiddleware())
//	engine.RegisterRoutes(r) // RegisterRoutes 已内置该中间件，自己写路由时再单独使用
func (c *StudyEngine) GinSessionMiddleware() gin.HandlerFunc {
	return middleware.GinSessionMiddleware(c.AuthService, c.sessionOptions())
}

func (c *StudyEngine) sessionOptions() *middleware.SessionOptions {
	return &middleware.SessionOptions{
		CookieName: c.config.Session.CookieName,
		LoginURL:   "/login",
	}
}
