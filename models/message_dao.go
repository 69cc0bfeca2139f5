package models

import (
	"gorm.io/gorm"
)

// MessageDAO 封装 Message 相关的数据库操作
type MessageDAO struct {
	db *gorm.DB
}

// NewMessageDAO 创建 MessageDAO 实例
func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *MessageDAO) WithDB(db *gorm.DB) *MessageDAO {
	if db == nil {
		return dao
	}
	return &MessageDAO{db: db}
}

// Create 创建消息
func (dao *MessageDAO) Create(msg *Message) error {
	return dao.db.Create(msg).Error
}

// FindByID 根据ID查找消息（带作者）
func (dao *MessageDAO) FindByID(id uint64) (*Message, error) {
	var msg Message
	err := dao.db.Preload("Sender").Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindByRoomID 房间内全部消息，按时间正序（聊天记录顺序）
func (dao *MessageDAO) FindByRoomID(roomID uint64) ([]Message, error) {
	var messages []Message
	err := dao.db.Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}

// FindBySenderID 用户发过的全部消息，最新在前
func (dao *MessageDAO) FindBySenderID(senderID uint64) ([]Message, error) {
	var messages []Message
	err := dao.db.Preload("Sender").Preload("Room").Preload("Room.Topic").
		Where("sender_id = ?", senderID).
		Order("updated_at DESC").
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

// FindByTopicKeyword 动态流：所在房间的话题名包含 keyword（不区分大小写）的消息。
// keyword 为空时匹配全部；limit <= 0 时不限制条数。
func (dao *MessageDAO) FindByTopicKeyword(keyword string, limit int) ([]Message, error) {
	q := dao.db.Model(&Message{}).
		Preload("Sender").Preload("Room").Preload("Room.Topic").
		Joins("JOIN sb_room ON sb_room.id = sb_message.room_id").
		Joins("JOIN sb_topic ON sb_topic.id = sb_room.topic_id")
	if keyword != "" {
		q = q.Where("LOWER(sb_topic.name) LIKE ? ESCAPE '!'", LikePattern(keyword))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var messages []Message
	err := q.Order("sb_message.updated_at DESC").
		Order("sb_message.created_at DESC").
		Find(&messages).Error
	return messages, err
}

// UpdateBody 更新消息内容
func (dao *MessageDAO) UpdateBody(id uint64, body string) error {
	return dao.db.Model(&Message{}).Where("id = ?", id).Update("body", body).Error
}

func (dao *MessageDAO) Delete(id uint64) error {
	return dao.db.Where("id = ?", id).Delete(&Message{}).Error
}

// DeleteByRoomID 删除房间下的全部消息（删房间时级联）
func (dao *MessageDAO) DeleteByRoomID(roomID uint64) error {
	return dao.db.Where("room_id = ?", roomID).Delete(&Message{}).Error
}

// DistinctSenderIDs 房间内发过言的用户 ID（去重）
func (dao *MessageDAO) DistinctSenderIDs(roomID uint64) ([]uint64, error) {
	var ids []uint64
	err := dao.db.Model(&Message{}).
		Where("room_id = ?", roomID).
		Distinct().
		Pluck("sender_id", &ids).Error
	return ids, err
}
