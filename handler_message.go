package studybud

import (
	"net/http"

	"github.com/cydxin/studybud/cons"
	"github.com/cydxin/studybud/middleware"
	"github.com/cydxin/studybud/response"
	"github.com/cydxin/studybud/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 消息（Message）相关接口 --------------------

// GinHandleUpdateMessage 编辑消息
// @Summary 编辑消息
// @Description 仅作者可操作，其他用户返回 403 纯文本。POST 覆盖消息内容，成功跳转所在房间。
// @Tags 消息
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path int true "消息ID"
// @Param req body service.MessageReq false "消息内容（POST）"
// @Success 200 {object} response.Response{data=service.MessageDTO} "表单 / 校验失败"
// @Success 302 "保存成功，跳转 /room/{room_id}"
// @Failure 403 {string} string "you are not allowed here!!"
// @Security BearerAuth
// @Router /update-message/{id} [get]
// @Router /update-message/{id} [post]
func (c *StudyEngine) GinHandleUpdateMessage(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	msgID, err := pathID(ctx, "id")
	if err != nil {
		c.fail(ctx, err)
		return
	}

	msg, err := c.MsgService.CheckAuthor(userID, msgID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	dto := service.ToMessageDTO(msg)
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageMessageForm, dto))
		return
	}

	var req service.MessageReq
	err = bindForm(ctx, &req)
	if err == nil {
		_, err = c.MsgService.UpdateMessage(userID, msgID, req.Body)
	}
	if err != nil {
		if renderInvalid(ctx, cons.PageMessageForm, dto, err) {
			return
		}
		c.fail(ctx, err)
		return
	}
	redirect(ctx, roomURL(msg.RoomID))
}

// GinHandleDeleteMessage 删除消息
// @Summary 删除消息
// @Description 仅作者可操作。GET 返回确认页；POST 删除后跳转所在房间（下次查看时重算参与者）。
// @Tags 消息
// @Produce json
// @Param id path int true "消息ID"
// @Success 200 {object} response.Response{data=service.MessageDTO} "确认页"
// @Success 302 "删除成功，跳转 /room/{room_id}"
// @Failure 403 {string} string "you are not allowed here!!"
// @Security BearerAuth
// @Router /delete-message/{id} [get]
// @Router /delete-message/{id} [post]
func (c *StudyEngine) GinHandleDeleteMessage(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	msgID, err := pathID(ctx, "id")
	if err != nil {
		c.fail(ctx, err)
		return
	}

	msg, err := c.MsgService.CheckAuthor(userID, msgID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if !isPost(ctx) {
		ctx.JSON(http.StatusOK, response.Page(cons.PageDelete, service.ToMessageDTO(msg)))
		return
	}

	roomID, err := c.MsgService.DeleteMessage(userID, msgID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	redirect(ctx, roomURL(roomID))
}
