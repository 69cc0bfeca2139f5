package studybud

import (
	"errors"
	"log"
	"net/http"

	"github.com/cydxin/studybud/cons"
	"github.com/cydxin/studybud/middleware"
	"github.com/cydxin/studybud/response"
	"github.com/cydxin/studybud/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 用户（User）相关接口 --------------------

// startSession 建立会话并写 cookie
func (c *StudyEngine) startSession(ctx *gin.Context, userID uint64) bool {
	token, err := c.AuthService.StartSession(ctx.Request.Context(), userID)
	if err != nil {
		log.Printf("start session failed: user=%d err=%v", userID, err)
		ctx.JSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, cons.MsgSessionStoreDown))
		return false
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.config.Session.CookieName, token, int(c.AuthService.TTL().Seconds()), "/", "", c.config.Session.Secure, true)
	return true
}

// GinHandleLogin 登录
// @Summary 登录
// @Description GET 返回登录页；POST 校验用户名（不区分大小写）与密码，成功后写会话 cookie 并跳转首页。
// @Description 已登录访问直接跳转首页。
// @Tags 用户
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param req body service.LoginReq false "登录信息（POST）"
// @Success 200 {object} response.Response "登录页 / 登录失败（code=10002 用户不存在，10003 密码错误）"
// @Success 302 "登录成功，跳转 /"
// @Router /login [get]
// @Router /login [post]
func (c *StudyEngine) GinHandleLogin(ctx *gin.Context) {
	if _, ok := middleware.CurrentUserID(ctx); ok {
		redirect(ctx, "/")
		return
	}
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageLogin, nil))
		return
	}

	var req service.LoginReq
	if err := bindForm(ctx, &req); err != nil {
		renderInvalid(ctx, cons.PageLogin, nil, err)
		return
	}

	user, err := c.UserService.Authenticate(req)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		ctx.JSON(http.StatusOK, response.Page(cons.PageLogin, nil).
			WithError(response.CodeUserNotFound, cons.MsgUserNotExist).
			WithMessages(cons.MsgUserNotExist))
		return
	case errors.Is(err, service.ErrInvalidCredential):
		ctx.JSON(http.StatusOK, response.Page(cons.PageLogin, nil).
			WithError(response.CodePasswordError, cons.MsgBadCredential).
			WithMessages(cons.MsgBadCredential))
		return
	case err != nil:
		c.fail(ctx, err)
		return
	}

	if !c.startSession(ctx, user.ID) {
		return
	}
	redirect(ctx, "/")
}

// GinHandleLogout 登出
// @Summary 登出
// @Description 注销当前会话并清除 cookie，跳转首页。未登录时同样跳转。
// @Tags 用户
// @Success 302 "跳转 /"
// @Router /logout [get]
// @Router /logout [post]
func (c *StudyEngine) GinHandleLogout(ctx *gin.Context) {
	token := middleware.CurrentToken(ctx)
	if err := c.AuthService.EndSession(ctx.Request.Context(), token); err != nil {
		log.Printf("end session failed: %v", err)
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.config.Session.CookieName, "", -1, "/", "", c.config.Session.Secure, true)
	redirect(ctx, "/")
}

// GinHandleRegister 注册
// @Summary 注册
// @Description GET 返回注册页；POST 创建用户（用户名转小写）并直接登录，跳转首页。
// @Tags 用户
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param req body service.RegisterReq false "注册信息（POST）"
// @Success 200 {object} response.Response "注册页 / 校验失败（code=10001，errors 为字段错误）"
// @Success 302 "注册成功，跳转 /"
// @Router /register [get]
// @Router /register [post]
func (c *StudyEngine) GinHandleRegister(ctx *gin.Context) {
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageRegister, nil))
		return
	}

	var req service.RegisterReq
	if err := bindForm(ctx, &req); err != nil {
		renderInvalid(ctx, cons.PageRegister, nil, err, cons.MsgRegisterFailed)
		return
	}

	user, err := c.UserService.Register(req)
	if err != nil {
		if renderInvalid(ctx, cons.PageRegister, nil, err, cons.MsgRegisterFailed) {
			return
		}
		c.fail(ctx, err)
		return
	}

	if !c.startSession(ctx, user.ID) {
		return
	}
	redirect(ctx, "/")
}

// GinHandleProfile 个人主页
// @Summary 个人主页
// @Description 用户信息、其创建的房间、其发送的消息与全部话题。无需登录。
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=service.ProfileDTO} "个人主页"
// @Failure 500 {object} response.Response "用户不存在"
// @Router /profile/{id} [get]
func (c *StudyEngine) GinHandleProfile(ctx *gin.Context) {
	userID, err := pathID(ctx, "id")
	if err != nil {
		c.fail(ctx, err)
		return
	}
	profile, err := c.UserService.GetProfile(userID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Page(cons.PageProfile, profile))
}

// GinHandleUpdateUser 编辑个人资料
// @Summary 编辑个人资料
// @Description GET 返回当前资料；POST 覆盖用户名/姓名/邮箱/简介，可选 multipart 上传头像 avatar。成功跳转个人主页。
// @Tags 用户
// @Accept multipart/form-data,x-www-form-urlencoded,json
// @Produce json
// @Param req body service.UpdateProfileReq false "资料（POST）"
// @Param avatar formData file false "头像（png/jpg/jpeg/gif/webp，最大 5MB）"
// @Success 200 {object} response.Response{data=service.UserDTO} "编辑页 / 校验失败"
// @Success 302 "保存成功，跳转 /profile/{id}"
// @Security BearerAuth
// @Router /edit-profile [get]
// @Router /edit-profile [post]
func (c *StudyEngine) GinHandleUpdateUser(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	user, err := c.UserService.GetUser(userID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageEditUser, user))
		return
	}

	var req service.UpdateProfileReq
	if err := bindForm(ctx, &req); err != nil {
		renderInvalid(ctx, cons.PageEditUser, user, err)
		return
	}
	// 没有上传文件时 FormFile 返回 http.ErrMissingFile / http.ErrNotMultipart，保持原头像
	if fh, err := ctx.FormFile("avatar"); err == nil {
		avatar, err := c.saveAvatar(ctx, fh)
		if err != nil {
			if renderInvalid(ctx, cons.PageEditUser, user, err) {
				return
			}
			c.fail(ctx, err)
			return
		}
		req.Avatar = avatar
	}

	if _, err := c.UserService.UpdateProfile(userID, req); err != nil {
		// 资料没保存，刚写入的头像也不保留
		c.removeAvatar(req.Avatar)
		if renderInvalid(ctx, cons.PageEditUser, user, err) {
			return
		}
		c.fail(ctx, err)
		return
	}
	redirect(ctx, profileURL(userID))
}

// GinHandleSettings 设置页（占位）
// @Summary 设置页
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response "设置页"
// @Security BearerAuth
// @Router /settings [get]
func (c *StudyEngine) GinHandleSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Page(cons.PageSettings, nil))
}
