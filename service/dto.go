package service

import (
	"time"

	"github.com/cydxin/studybud/models"
	"github.com/cydxin/studybud/repository"
)

// UserBriefDTO 列表里展示的用户信息
type UserBriefDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// UserDTO 用户详情（不含密码）
type UserDTO struct {
	ID          uint64     `json:"id"`
	UID         string     `json:"uid"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Bio         string     `json:"bio"`
	Avatar      string     `json:"avatar"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TopicDTO 话题；RoomCount 仅在话题列表中填充
type TopicDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	RoomCount int64  `json:"room_count,omitempty"`
}

// RoomDTO 房间
type RoomDTO struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Host        *UserBriefDTO `json:"host"`
	Topic       TopicDTO      `json:"topic"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MessageDTO 消息；RoomName 仅在预加载了 Room 时填充
type MessageDTO struct {
	ID        uint64        `json:"id"`
	RoomID    uint64        `json:"room_id"`
	RoomName  string        `json:"room_name,omitempty"`
	Sender    *UserBriefDTO `json:"sender"`
	Body      string        `json:"body"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toUserBriefDTO(u *models.User) *UserBriefDTO {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &UserBriefDTO{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

func toUserDTO(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID,
		UID:         u.UID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		Bio:         u.Bio,
		Avatar:      u.Avatar,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func toUserBriefDTOs(users []models.User) []UserBriefDTO {
	out := make([]UserBriefDTO, 0, len(users))
	for i := range users {
		if dto := toUserBriefDTO(&users[i]); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

// ToRoomDTO 将 Room 转换为 RoomDTO（需预加载 Host/Topic）
func ToRoomDTO(r *models.Room) *RoomDTO {
	if r == nil {
		return nil
	}
	return &RoomDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Host:        toUserBriefDTO(&r.Host),
		Topic:       TopicDTO{ID: r.Topic.ID, Name: r.Topic.Name},
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toRoomDTOs(rooms []models.Room) []RoomDTO {
	out := make([]RoomDTO, 0, len(rooms))
	for i := range rooms {
		out = append(out, *ToRoomDTO(&rooms[i]))
	}
	return out
}

// ToMessageDTO 将 Message 转换为 MessageDTO
func ToMessageDTO(m *models.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:        m.ID,
		RoomID:    m.RoomID,
		RoomName:  m.Room.Name,
		Sender:    toUserBriefDTO(&m.Sender),
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMessageDTOs(msgs []models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, *ToMessageDTO(&msgs[i]))
	}
	return out
}

func toTopicDTOs(topics []repository.TopicCount) []TopicDTO {
	out := make([]TopicDTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicDTO{ID: t.ID, Name: t.Name, RoomCount: t.RoomCount})
	}
	return out
}
