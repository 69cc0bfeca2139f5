package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthService 提供“会话核心能力”，供中间件和登录/登出接口使用。
// - 解析 token（cookie 优先，其次 Bearer，最后 query）
// - 建立会话 / 校验 token -> userID（Redis）/ 注销会话
//
// Gin 中间件作为单独适配层放在 middleware 包，内部调用该 service。
type AuthService struct {
	token *TokenService
	ttl   time.Duration
}

func NewAuthService(rdb *redis.Client, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{token: NewTokenService(rdb), ttl: ttl}
}

// TTL 会话有效期，写 cookie 的 MaxAge 时使用
func (a *AuthService) TTL() time.Duration {
	return a.ttl
}

// ExtractToken 从 HTTP 请求中提取 token：cookie -> Authorization: Bearer -> query: token。
func (a *AuthService) ExtractToken(r *http.Request, cookieName string) string {
	if r == nil {
		return ""
	}

	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && strings.TrimSpace(c.Value) != "" {
			return strings.TrimSpace(c.Value)
		}
	}

	// Authorization: Bearer <token>
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah != "" {
		parts := strings.SplitN(ah, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	// query: ?token=xxx
	if r.URL != nil {
		return strings.TrimSpace(r.URL.Query().Get("token"))
	}
	return ""
}

// StartSession 为用户创建新会话并返回 token。
func (a *AuthService) StartSession(ctx context.Context, userID uint64) (string, error) {
	t, err := a.token.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := a.token.StoreToken(ctx, t, userID, a.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return t, nil
}

// Authenticate 根据 token 获取 userID。
func (a *AuthService) Authenticate(ctx context.Context, token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrSessionNotFound
	}
	return a.token.GetUserIDByToken(ctx, token)
}

// EndSession 注销单个 token；空 token 直接返回。
func (a *AuthService) EndSession(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return a.token.RevokeToken(ctx, token)
}
