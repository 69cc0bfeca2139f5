package cons

// 页面提示文案（原样展示给用户）
const (
	MsgForbidden        = "you are not allowed here!!"
	MsgUserNotExist     = "User does not exist"
	MsgBadCredential    = "Username or Password does not exist"
	MsgRegisterFailed   = "An error occurred during registration"
	MsgFormInvalid      = "Please correct the errors below."
	MsgInternalError    = "internal server error"
	MsgSessionStoreDown = "session store unavailable"
)

// 页面名（Response.Page）
const (
	PageLogin       = "login"
	PageRegister    = "register"
	PageHome        = "home"
	PageRoom        = "room"
	PageProfile     = "user_profile"
	PageRoomForm    = "room_form"
	PageMessageForm = "room_message_form"
	PageDelete      = "delete"
	PageEditUser    = "edit-user"
	PageSettings    = "settings"
)

// gin.Context 中保存当前用户的 key
const (
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "token"
)
