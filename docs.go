// Package studybud 学习小组（StudyBud）服务端：房间、话题、消息、参与者与账号
// @title StudyBud API
// @version 1.0
// @description StudyBud 页面接口文档。原本渲染模板的页面统一返回 JSON 页面上下文（page + data）。
// @description
// @description ## 业务状态码说明
// @description | Code | 说明 |
// @description |------|------|
// @description | 0 | 成功 |
// @description | 10001 | 表单校验失败（errors 为字段错误） |
// @description | 10002 | 用户不存在 |
// @description | 10003 | 密码错误（登录失败） |
// @description | 99999 | 内部错误 |
// @description
// @description ## HTTP 状态码说明
// @description - **200**: 页面数据，或校验失败后重新渲染的页面
// @description - **302**: 表单提交成功后的跳转；未登录访问需登录页面时跳转 /login
// @description - **403**: 非房主 / 非作者，纯文本 you are not allowed here!!
// @description - **500**: 记录不存在或服务器内部错误
//
// @contact.name API Support
// @contact.url https://github.com/cydxin/studybud/issues
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式：Bearer <token>；浏览器直接使用登录后写入的 sessionid cookie
package studybud
