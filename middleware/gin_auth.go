package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/cydxin/studybud/cons"
	"github.com/cydxin/studybud/service"
	"github.com/gin-gonic/gin"
)

// SessionOptions 可选配置。
type SessionOptions struct {
	// CookieName 默认 sessionid
	CookieName string
	// LoginURL 未登录跳转地址，默认 /login
	LoginURL string
}

func (o *SessionOptions) withDefaults() SessionOptions {
	if o == nil {
		return SessionOptions{CookieName: "sessionid", LoginURL: "/login"}
	}
	out := *o
	if out.CookieName == "" {
		out.CookieName = "sessionid"
	}
	if out.LoginURL == "" {
		out.LoginURL = "/login"
	}
	return out
}

/*
	GinSessionMiddleware Gin 会话中间件：

- 依次从 cookie、Authorization: Bearer <token>、query 参数 token 读取
- 校验 token -> userID（Redis）成功后，写入 gin.Context
- 失败不拦截，按匿名用户继续处理；需要登录的路由再挂 LoginRequired

使用：router.Use(middleware.GinSessionMiddleware(authService, nil))
*/
func GinSessionMiddleware(auth *service.AuthService, opt *SessionOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		if auth == nil {
			c.Next()
			return
		}

		token := auth.ExtractToken(c.Request, cfg.CookieName)
		if token == "" {
			c.Next()
			return
		}

		uid, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrSessionNotFound) {
				log.Printf("session lookup failed: %v", err)
			}
			c.Next()
			return
		}

		c.Set(cons.ContextUserIDKey, uid)
		c.Set(cons.ContextTokenKey, token)
		c.Next()
	}
}

// LoginRequired 未登录时 302 跳转登录页
func LoginRequired(opt *SessionOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.Redirect(http.StatusFound, cfg.LoginURL)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 当前登录用户；匿名时返回 false
func CurrentUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(cons.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := v.(uint64)
	return uid, ok && uid != 0
}

// CurrentToken 当前会话 token；匿名时为空
func CurrentToken(c *gin.Context) string {
	return c.GetString(cons.ContextTokenKey)
}
