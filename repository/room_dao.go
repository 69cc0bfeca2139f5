package repository

import (
	"time"

	"github.com/cydxin/studybud/models"
	"gorm.io/gorm"
)

// RoomDAO 封装 Room / RoomParticipant 相关的数据库操作
//
// 约定：
// - 只做“数据访问”（CRUD/查询封装），不做业务编排（权限校验等）。
// - 事务边界应由 service 控制；如需在事务中执行，请使用 WithDB(tx)。
type RoomDAO struct {
	db *gorm.DB
}

func NewRoomDAO(db *gorm.DB) *RoomDAO {
	return &RoomDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *RoomDAO) WithDB(db *gorm.DB) *RoomDAO {
	if db == nil {
		return dao
	}
	return &RoomDAO{db: db}
}

func (dao *RoomDAO) Create(room *models.Room) error {
	return dao.db.Create(room).Error
}

// FindByID 带房主与话题
func (dao *RoomDAO) FindByID(id uint64) (*models.Room, error) {
	var room models.Room
	err := dao.db.Preload("Host").Preload("Topic").Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// searchScope 话题名 / 房间名 / 描述 任一包含 keyword（不区分大小写）。
// SQLite 内置 LOWER 只处理 ASCII，非 ASCII 的大小写不敏感匹配只在 MySQL 上成立。
func searchScope(keyword string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN sb_topic ON sb_topic.id = sb_room.topic_id")
		if keyword == "" {
			return db
		}
		p := models.LikePattern(keyword)
		return db.Where(
			"LOWER(sb_topic.name) LIKE ? ESCAPE '!' OR LOWER(sb_room.name) LIKE ? ESCAPE '!' OR LOWER(sb_room.description) LIKE ? ESCAPE '!'",
			p, p, p,
		)
	}
}

// Search 按关键字搜索房间，最近更新的在前
func (dao *RoomDAO) Search(keyword string) ([]models.Room, error) {
	var rooms []models.Room
	err := dao.db.Model(&models.Room{}).
		Scopes(searchScope(keyword)).
		Preload("Host").Preload("Topic").
		Order("sb_room.updated_at DESC").
		Order("sb_room.created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

// CountSearch 与 Search 条件一致的计数
func (dao *RoomDAO) CountSearch(keyword string) (int64, error) {
	var n int64
	err := dao.db.Model(&models.Room{}).Scopes(searchScope(keyword)).Count(&n).Error
	return n, err
}

func (dao *RoomDAO) FindByHostID(hostID uint64) ([]models.Room, error) {
	var rooms []models.Room
	err := dao.db.Preload("Host").Preload("Topic").
		Where("host_id = ?", hostID).
		Order("updated_at DESC").
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (dao *RoomDAO) UpdateFields(id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return dao.db.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error
}

// Touch 只刷新 updated_at
func (dao *RoomDAO) Touch(id uint64) error {
	return dao.db.Model(&models.Room{}).Where("id = ?", id).Update("updated_at", time.Now()).Error
}

func (dao *RoomDAO) Delete(id uint64) error {
	return dao.db.Where("id = ?", id).Delete(&models.Room{}).Error
}

// -------------------- 参与者 --------------------

// ListParticipants 房间参与者，按加入时间排序
func (dao *RoomDAO) ListParticipants(roomID uint64) ([]models.User, error) {
	var users []models.User
	err := dao.db.Model(&models.User{}).
		Joins("JOIN sb_room_participant ON sb_room_participant.user_id = sb_user.id").
		Where("sb_room_participant.room_id = ?", roomID).
		Order("sb_room_participant.join_time ASC").
		Order("sb_user.id ASC").
		Find(&users).Error
	return users, err
}

func (dao *RoomDAO) ParticipantIDs(roomID uint64) ([]uint64, error) {
	var ids []uint64
	err := dao.db.Model(&models.RoomParticipant{}).
		Where("room_id = ?", roomID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// AddParticipant 幂等：已存在时不做任何事
func (dao *RoomDAO) AddParticipant(roomID, userID uint64) error {
	p := &models.RoomParticipant{}
	return dao.db.
		Where(models.RoomParticipant{RoomID: roomID, UserID: userID}).
		Attrs(models.RoomParticipant{JoinTime: time.Now()}).
		FirstOrCreate(p).Error
}

// RetainParticipants 删除不在 keep 中的参与者；keep 为空时清空房间参与者
func (dao *RoomDAO) RetainParticipants(roomID uint64, keep []uint64) error {
	q := dao.db.Where("room_id = ?", roomID)
	if len(keep) > 0 {
		q = q.Where("user_id NOT IN ?", keep)
	}
	return q.Delete(&models.RoomParticipant{}).Error
}
