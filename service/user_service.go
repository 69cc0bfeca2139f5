package service

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/cydxin/studybud/models"
	"github.com/cydxin/studybud/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	*Service
	userDao  *models.UserDAO
	msgDao   *models.MessageDAO
	roomDao  *repository.RoomDAO
	topicDao *repository.TopicDAO
}

func NewUserService(s *Service) *UserService {
	log.Println("NewUserService")
	return &UserService{
		Service:  s,
		userDao:  models.NewUserDAO(s.DB),
		msgDao:   models.NewMessageDAO(s.DB),
		roomDao:  repository.NewRoomDAO(s.DB),
		topicDao: repository.NewTopicDAO(s.DB),
	}
}

// --- types ---

type RegisterReq struct {
	Username  string `form:"username" json:"username"`
	Name      string `form:"name" json:"name" binding:"max=200"`
	Email     string `form:"email" json:"email" binding:"omitempty,email"`
	Password1 string `form:"password1" json:"password1"`
	Password2 string `form:"password2" json:"password2"` // 确认密码
}

type LoginReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// UpdateProfileReq 个人资料编辑；Avatar 为空表示保持原头像
type UpdateProfileReq struct {
	Username string `form:"username" json:"username"`
	Name     string `form:"name" json:"name" binding:"max=200"`
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
	Bio      string `form:"bio" json:"bio"`
	Avatar   string `form:"-" json:"avatar"`
}

// ProfileDTO 个人主页
type ProfileDTO struct {
	User         *UserDTO     `json:"user"`
	Rooms        []RoomDTO    `json:"rooms"`
	RoomMessages []MessageDTO `json:"room_messages"`
	Topics       []TopicDTO   `json:"topics"`
}

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateEmail(v *ValidationError, email string) {
	if email == "" {
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		v.add("email", "Enter a valid email address.")
	}
}

// Register 注册：校验 -> 用户名转小写 -> 写库
func (s *UserService) Register(req RegisterReq) (*models.User, error) {
	username := normalizeUsername(req.Username)
	email := normalizeEmail(req.Email)

	v := &ValidationError{}
	validateUsername(v, username)
	validateEmail(v, email)
	validatePassword(v, username, req.Password1, req.Password2)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	exists, err := s.userDao.ExistsByUsername(username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		v.add("username", "A user with that username already exists.")
	}
	exists, err = s.userDao.ExistsByEmail(email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		v.add("email", "User with this Email already exists.")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UID:      uuid.New().String(),
		Username: username,
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Avatar:   models.DefaultAvatar,
	}
	if err := s.userDao.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate 校验用户名/密码；用户名不区分大小写。
// 返回 ErrUserNotFound / ErrInvalidCredential 供调用方展示提示。
func (s *UserService) Authenticate(req LoginReq) (*models.User, error) {
	username := normalizeUsername(req.Username)

	u, err := s.userDao.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	now := time.Now()
	if err := s.userDao.TouchLastLogin(u.ID, now); err != nil {
		log.Printf("touch last login failed: user=%d err=%v", u.ID, err)
	} else {
		u.LastLoginAt = &now
	}
	return u, nil
}

// GetUser 获取用户信息（脱敏）
func (s *UserService) GetUser(userID uint64) (*UserDTO, error) {
	u, err := s.userDao.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

// GetProfile 个人主页：用户、其创建的房间、其发送的消息、全部话题。任何人可查看。
func (s *UserService) GetProfile(userID uint64) (*ProfileDTO, error) {
	u, err := s.userDao.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	rooms, err := s.roomDao.FindByHostID(userID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.msgDao.FindBySenderID(userID)
	if err != nil {
		return nil, err
	}
	topics, err := s.topicDao.ListWithRoomCount()
	if err != nil {
		return nil, err
	}
	return &ProfileDTO{
		User:         toUserDTO(u),
		Rooms:        toRoomDTOs(rooms),
		RoomMessages: toMessageDTOs(msgs),
		Topics:       toTopicDTOs(topics),
	}, nil
}

// UpdateProfile 编辑自己的资料；所有表单字段整体覆盖（头像为空时保留）
func (s *UserService) UpdateProfile(userID uint64, req UpdateProfileReq) (*UserDTO, error) {
	username := normalizeUsername(req.Username)
	email := normalizeEmail(req.Email)

	v := &ValidationError{}
	validateUsername(v, username)
	validateEmail(v, email)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	exists, err := s.userDao.ExistsByUsername(username, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		v.add("username", "A user with that username already exists.")
	}
	exists, err = s.userDao.ExistsByEmail(email, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		v.add("email", "User with this Email already exists.")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"username": username,
		"name":     strings.TrimSpace(req.Name),
		"email":    email,
		"bio":      strings.TrimSpace(req.Bio),
	}
	if avatar := strings.TrimSpace(req.Avatar); avatar != "" {
		updates["avatar"] = avatar
	}
	if err := s.userDao.UpdateFields(userID, updates); err != nil {
		return nil, err
	}
	return s.GetUser(userID)
}
