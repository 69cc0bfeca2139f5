package repository

import (
	"github.com/cydxin/studybud/models"
	"gorm.io/gorm"
)

// TopicDAO 封装 Topic 相关的数据库操作
type TopicDAO struct {
	db *gorm.DB
}

func NewTopicDAO(db *gorm.DB) *TopicDAO {
	return &TopicDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *TopicDAO) WithDB(db *gorm.DB) *TopicDAO {
	if db == nil {
		return dao
	}
	return &TopicDAO{db: db}
}

// GetOrCreate 按名称精确匹配，不存在则创建
func (dao *TopicDAO) GetOrCreate(name string) (*models.Topic, error) {
	topic := &models.Topic{}
	if err := dao.db.FirstOrCreate(topic, map[string]any{"name": name}).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

// TopicCount 话题及其下房间数
type TopicCount struct {
	ID        uint64
	Name      string
	RoomCount int64
}

// ListWithRoomCount 全部话题（含没有房间的孤儿话题），按名称排序
func (dao *TopicDAO) ListWithRoomCount() ([]TopicCount, error) {
	var out []TopicCount
	err := dao.db.Model(&models.Topic{}).
		Select("sb_topic.id AS id, sb_topic.name AS name, COUNT(sb_room.id) AS room_count").
		Joins("LEFT JOIN sb_room ON sb_room.topic_id = sb_topic.id").
		Group("sb_topic.id, sb_topic.name").
		Order("sb_topic.name ASC").
		Scan(&out).Error
	return out, err
}
