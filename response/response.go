package response

// Response 统一响应结构。
// 页面类接口（原本渲染模板的地方）返回 Page + Data，Messages 为一次性提示（flash）。
type Response struct {
	Code     int         `json:"code" example:"0"`                      // 业务状态码
	Msg      string      `json:"msg" example:"success"`                 // 提示消息
	Page     string      `json:"page,omitempty" example:"home"`         // 页面名
	Data     interface{} `json:"data,omitempty" swaggertype:"object"`   // 响应数据
	Messages []string    `json:"messages,omitempty"`                    // 提示信息
	Errors   interface{} `json:"errors,omitempty" swaggertype:"object"` // 字段错误
}

// 业务状态码定义
// 使用说明：
// - 中间件层 / 权限：使用 HTTP 状态码（302/403/500）
// - 页面层：HTTP 200 + 业务状态码
const (
	CodeSuccess       = 0     // 成功
	CodeParamError    = 10001 // 参数错误（表单校验失败）
	CodeUserNotFound  = 10002 // 用户不存在
	CodePasswordError = 10003 // 密码错误（登录失败）
	CodeInternalError = 99999 // 内部错误
)

// Success 成功响应
func Success(data interface{}, args ...string) *Response {
	msg := "success"
	for _, arg := range args {
		msg = arg
	}
	return &Response{
		Code: CodeSuccess,
		Msg:  msg,
		Data: data,
	}
}

// Error 错误响应
func Error(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

// Page 页面响应
func Page(page string, data interface{}) *Response {
	r := Success(data)
	r.Page = page
	return r
}

// WithError 设置业务码与提示，用于页面重新渲染（校验失败 / 登录失败）
func (r *Response) WithError(code int, msg string) *Response {
	r.Code = code
	r.Msg = msg
	return r
}

// WithMessages 追加提示信息
func (r *Response) WithMessages(msgs ...string) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

// WithFieldErrors 附带字段错误
func (r *Response) WithFieldErrors(fields map[string]string) *Response {
	if len(fields) > 0 {
		r.Errors = fields
	}
	return r
}
