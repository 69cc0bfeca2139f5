package studybud

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/cydxin/studybud/cons"
	"github.com/cydxin/studybud/response"
	"github.com/cydxin/studybud/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

/* 页面接口拆分在：
- handler_user.go    登录 / 注册 / 个人主页 / 资料编辑
- handler_room.go    首页 / 房间 / 房间增删改
- handler_message.go 消息编辑 / 删除
路由表见 router.go
*/

func isPost(ctx *gin.Context) bool {
	return ctx.Request.Method == http.MethodPost
}

func redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusFound, location)
}

func roomURL(roomID uint64) string {
	return "/room/" + strconv.FormatUint(roomID, 10)
}

func profileURL(userID uint64) string {
	return "/profile/" + strconv.FormatUint(userID, 10)
}

// pathID 解析路径参数里的数字 ID
func pathID(ctx *gin.Context, name string) (uint64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// bindForm 绑定表单 / JSON；格式类错误转换成 ValidationError，按字段展示
func bindForm(ctx *gin.Context, obj any) error {
	err := ctx.ShouldBind(obj)
	if err == nil {
		return nil
	}
	out := &service.ValidationError{Fields: map[string]string{}}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out.Fields["__all__"] = err.Error()
		return out
	}
	for _, fe := range ves {
		if _, ok := out.Fields[fe.Field()]; ok {
			continue
		}
		out.Fields[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return "Enter a valid value."
	}
}

// renderInvalid 校验失败时带字段错误重新渲染页面（HTTP 200）；不是校验错误返回 false
func renderInvalid(ctx *gin.Context, page string, data any, err error, msgs ...string) bool {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	ctx.JSON(http.StatusOK, response.Page(page, data).
		WithError(response.CodeParamError, cons.MsgFormInvalid).
		WithMessages(msgs...).
		WithFieldErrors(ve.Fields))
	return true
}

// fail 统一错误出口：非房主/非作者 403 纯文本，其余（含记录不存在）500
func (c *StudyEngine) fail(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrForbidden) {
		ctx.String(http.StatusForbidden, cons.MsgForbidden)
		return
	}
	log.Printf("%s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	msg := cons.MsgInternalError
	if c.config.Service.Debug {
		msg = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, msg))
}
