package models

import (
	"time"
)

const (
	prefix = "sb_"

	// DefaultAvatar 未上传头像时使用的默认头像
	DefaultAvatar = "avatar.svg"
)

// User 用户表
type User struct {
	ID          uint64     `gorm:"primarykey"`
	UID         string     `gorm:"size:36;uniqueIndex;not null"`  // 对外用户 ID
	Username    string     `gorm:"size:150;uniqueIndex;not null"` // 用户名（统一小写）
	Password    string     `gorm:"size:255;not null"`             // bcrypt 哈希
	Name        string     `gorm:"size:200"`                      // 显示名
	Email       string     `gorm:"size:254;index"`                // 邮箱，非空时唯一（service 层校验）
	Bio         string     `gorm:"type:text"`                     // 简介
	Avatar      string     `gorm:"size:500;default:avatar.svg"`   // 头像
	LastLoginAt *time.Time // 最后登录时间
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return prefix + "user"
}

// Topic 话题表，按名称懒创建，不会被删除
type Topic struct {
	ID        uint64 `gorm:"primarykey"`
	Name      string `gorm:"size:200;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Topic) TableName() string {
	return prefix + "topic"
}

// Room 学习房间表
type Room struct {
	ID          uint64 `gorm:"primarykey"`
	HostID      uint64 `gorm:"index;not null"`        // 房主 ID
	TopicID     uint64 `gorm:"index;not null"`        // 话题 ID
	Name        string `gorm:"size:200;not null"`     // 房间名称
	Description string `gorm:"type:text"`             // 描述
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 关联关系
	Host  User  `gorm:"foreignKey:HostID"`
	Topic Topic `gorm:"foreignKey:TopicID"`
}

func (Room) TableName() string {
	return prefix + "room"
}

// RoomParticipant 房间参与者（由消息记录推导，见 RoomService.SyncParticipants）
type RoomParticipant struct {
	ID       uint64    `gorm:"primarykey"`
	RoomID   uint64    `gorm:"index:idx_room_participant,unique;not null"`
	UserID   uint64    `gorm:"index:idx_room_participant,unique;not null"`
	JoinTime time.Time `gorm:"not null"`

	Room Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID"`
}

func (RoomParticipant) TableName() string {
	return prefix + "room_participant"
}

// Message 消息表
type Message struct {
	ID        uint64 `gorm:"primarykey"`
	RoomID    uint64 `gorm:"index;not null"`     // 房间 ID
	SenderID  uint64 `gorm:"index;not null"`     // 作者 ID
	Body      string `gorm:"type:text;not null"` // 消息内容
	CreatedAt time.Time
	UpdatedAt time.Time

	// 关联关系
	Room   Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Sender User `gorm:"foreignKey:SenderID"`
}

func (Message) TableName() string {
	return prefix + "message"
}

// All 返回需要迁移的全部表，顺序即建表顺序
func All() []any {
	return []any{
		&User{},
		&Topic{},
		&Room{},
		&RoomParticipant{},
		&Message{},
	}
}
