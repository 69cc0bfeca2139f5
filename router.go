package studybud

import (
	"net/http"

	"github.com/cydxin/studybud/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部页面路由、头像静态目录与 Swagger。
// 会先挂会话中间件，调用前注册的路由不受影响。
//
// 使用示例：
//
//	engine, err := studybud.NewEngine(studybud.WithDB(db), studybud.WithRDB(rdb))
//	r := gin.New()
//	engine.RegisterRoutes(r)
//	r.Run(":8000")
func (c *StudyEngine) RegisterRoutes(r *gin.Engine) {
	opt := c.sessionOptions()
	r.Use(middleware.GinSessionMiddleware(c.AuthService, opt))
	loginRequired := middleware.LoginRequired(opt)

	getPost := []string{http.MethodGet, http.MethodPost}

	// 账号
	r.Match(getPost, "/login", c.GinHandleLogin)
	r.Match(getPost, "/logout", c.GinHandleLogout)
	r.Match(getPost, "/register", c.GinHandleRegister)

	// 公开页面；房间 POST（发言）在 handler 内判断登录
	r.GET("/", c.GinHandleHome)
	r.Match(getPost, "/room/:id", c.GinHandleRoom)
	r.GET("/profile/:id", c.GinHandleProfile)

	// 需要登录
	r.Match(getPost, "/create-room", loginRequired, c.GinHandleCreateRoom)
	r.Match(getPost, "/update-room/:id", loginRequired, c.GinHandleUpdateRoom)
	r.Match(getPost, "/delete-room/:id", loginRequired, c.GinHandleDeleteRoom)
	r.Match(getPost, "/update-message/:id", loginRequired, c.GinHandleUpdateMessage)
	r.Match(getPost, "/delete-message/:id", loginRequired, c.GinHandleDeleteMessage)
	r.Match(getPost, "/edit-profile", loginRequired, c.GinHandleUpdateUser)
	r.GET("/settings", loginRequired, c.GinHandleSettings)

	r.Static(uploadURLPrefix, c.config.UploadDir)
	RegisterSwagger(r, "")
}
