package service

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrForbidden 操作者不是房主 / 消息作者
	ErrForbidden = errors.New("forbidden: actor does not own the resource")
	// ErrUserNotFound 登录时用户名不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredential 登录时密码校验失败
	ErrInvalidCredential = errors.New("invalid credential")
)

// ValidationError 表单校验失败；Fields 为 字段名 -> 提示信息。
// 返回该错误时不会有任何数据落库。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add 记录字段错误，同一字段只保留第一条
func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// orNil 没有字段错误时返回 nil，方便 `return v.orNil()`
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

const (
	msgRequired        = "This field is required."
	maxUsernameLen     = 150
	minPasswordLen     = 8
	maxPasswordBytes   = 72 // bcrypt 上限
	maxRoomNameLen     = 200
	defaultTopicName   = "General"
	msgUsernameInvalid = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// validateUsername 校验已转小写的用户名格式
func validateUsername(v *ValidationError, username string) {
	switch {
	case username == "":
		v.add("username", msgRequired)
	case len([]rune(username)) > maxUsernameLen:
		v.add("username", "Ensure this value has at most 150 characters.")
	case !usernamePattern.MatchString(username):
		v.add("username", msgUsernameInvalid)
	}
}

// validatePassword 密码规则：长度、非纯数字、不能与用户名相同
func validatePassword(v *ValidationError, username, password, confirmation string) {
	if password == "" {
		v.add("password1", msgRequired)
		return
	}
	if len(password) > maxPasswordBytes {
		v.add("password1", "Ensure this value has at most 72 bytes.")
		return
	}
	if password != confirmation {
		v.add("password2", "The two password fields didn't match.")
		return
	}
	if len([]rune(password)) < minPasswordLen {
		v.add("password2", "This password is too short. It must contain at least 8 characters.")
		return
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		v.add("password2", "This password is entirely numeric.")
		return
	}
	if username != "" && strings.EqualFold(password, username) {
		v.add("password2", "The password is too similar to the username.")
	}
}
