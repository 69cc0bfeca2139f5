package studybud

import (
	"errors"
	"net/http"

	"github.com/cydxin/studybud/cons"
	"github.com/cydxin/studybud/middleware"
	"github.com/cydxin/studybud/response"
	"github.com/cydxin/studybud/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 房间（Room）相关接口 --------------------

// GinHandleHome 首页
// @Summary 首页
// @Description 按 q 搜索房间（话题名/房间名/描述，不区分大小写的子串匹配），返回房间列表、总数、话题列表与话题匹配的消息动态。
// @Tags 房间
// @Produce json
// @Param q query string false "搜索关键词，空表示全部"
// @Success 200 {object} response.Response{data=service.HomeDTO} "首页"
// @Router / [get]
func (c *StudyEngine) GinHandleHome(ctx *gin.Context) {
	home, err := c.RoomService.Home(ctx.Query("q"))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Page(cons.PageHome, home))
}

// GinHandleRoom 房间详情 / 发言
// @Summary 房间详情 / 发言
// @Description GET 重算参与者后返回房间、消息（按时间正序）与参与者；无需登录。
// @Description POST 发言（需登录，未登录跳转 /login），成功跳转回房间。
// @Tags 房间
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path int true "房间ID"
// @Param req body service.MessageReq false "消息内容（POST）"
// @Success 200 {object} response.Response{data=service.RoomPageDTO} "房间详情"
// @Success 302 "发言成功，跳转 /room/{id}"
// @Failure 500 {object} response.Response "房间不存在"
// @Router /room/{id} [get]
// @Router /room/{id} [post]
func (c *StudyEngine) GinHandleRoom(ctx *gin.Context) {
	roomID, err := pathID(ctx, "id")
	if err != nil {
		c.fail(ctx, err)
		return
	}

	if isPost(ctx) {
		userID, ok := middleware.CurrentUserID(ctx)
		if !ok {
			redirect(ctx, "/login")
			return
		}
		// 发言前先按现有消息整理参与者，再写入新消息
		if err := c.RoomService.SyncParticipants(roomID); err != nil {
			c.fail(ctx, err)
			return
		}
		var req service.MessageReq
		err := bindForm(ctx, &req)
		if err == nil {
			_, err = c.MsgService.PostMessage(roomID, userID, req.Body)
		}
		if err != nil {
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				page, perr := c.RoomService.ViewRoom(roomID)
				if perr != nil {
					c.fail(ctx, perr)
					return
				}
				renderInvalid(ctx, cons.PageRoom, page, err)
				return
			}
			c.fail(ctx, err)
			return
		}
		redirect(ctx, roomURL(roomID))
		return
	}

	page, err := c.RoomService.ViewRoom(roomID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Page(cons.PageRoom, page))
}

// GinHandleCreateRoom 创建房间
// @Summary 创建房间
// @Description GET 返回表单（含全部话题）；POST 按名称查找或创建话题后创建房间，当前用户为房主。成功跳转首页。
// @Tags 房间
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param req body service.RoomReq false "房间信息（POST）"
// @Success 200 {object} response.Response{data=service.RoomFormDTO} "表单 / 校验失败"
// @Success 302 "创建成功，跳转 /"
// @Security BearerAuth
// @Router /create-room [get]
// @Router /create-room [post]
func (c *StudyEngine) GinHandleCreateRoom(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	form, err := c.RoomService.RoomForm(userID, 0)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageRoomForm, form))
		return
	}

	var req service.RoomReq
	err = bindForm(ctx, &req)
	if err == nil {
		_, err = c.RoomService.CreateRoom(userID, req)
	}
	if err != nil {
		if renderInvalid(ctx, cons.PageRoomForm, form, err) {
			return
		}
		c.fail(ctx, err)
		return
	}
	redirect(ctx, "/")
}

// GinHandleUpdateRoom 编辑房间
// @Summary 编辑房间
// @Description 仅房主可操作，其他用户返回 403 纯文本。POST 覆盖话题/名称/描述，成功跳转首页。
// @Tags 房间
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path int true "房间ID"
// @Param req body service.RoomReq false "房间信息（POST）"
// @Success 200 {object} response.Response{data=service.RoomFormDTO} "表单 / 校验失败"
// @Success 302 "保存成功，跳转 /"
// @Failure 403 {string} string "you are not allowed here!!"
// @Security BearerAuth
// @Router /update-room/{id} [get]
// @Router /update-room/{id} [post]
func (c *StudyEngine) GinHandleUpdateRoom(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	roomID, err := pathID(ctx, "id")
	if err != nil {
		c.fail(ctx, err)
		return
	}

	// 先确认房主身份，非房主不看表单内容直接 403
	form, err := c.RoomService.RoomForm(userID, roomID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageRoomForm, form))
		return
	}

	var req service.RoomReq
	err = bindForm(ctx, &req)
	if err == nil {
		err = c.RoomService.UpdateRoom(userID, roomID, req)
	}
	if err != nil {
		if renderInvalid(ctx, cons.PageRoomForm, form, err) {
			return
		}
		c.fail(ctx, err)
		return
	}
	redirect(ctx, "/")
}

// GinHandleDeleteRoom 删除房间
// @Summary 删除房间
// @Description 仅房主可操作。GET 返回确认页；POST 删除房间及其消息、参与关系，跳转首页。
// @Tags 房间
// @Produce json
// @Param id path int true "房间ID"
// @Success 200 {object} response.Response{data=service.RoomDTO} "确认页"
// @Success 302 "删除成功，跳转 /"
// @Failure 403 {string} string "you are not allowed here!!"
// @Security BearerAuth
// @Router /delete-room/{id} [get]
// @Router /delete-room/{id} [post]
func (c *StudyEngine) GinHandleDeleteRoom(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	roomID, err := pathID(ctx, "id")
	if err != nil {
		c.fail(ctx, err)
		return
	}

	room, err := c.RoomService.CheckHost(userID, roomID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageDelete, service.ToRoomDTO(room)))
		return
	}

	if err := c.RoomService.DeleteRoom(userID, roomID); err != nil {
		c.fail(ctx, err)
		return
	}
	redirect(ctx, "/")
}
