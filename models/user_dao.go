package models

import (
	"time"

	"gorm.io/gorm"
)

// UserDAO 封装 User 相关的数据库操作
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *UserDAO) WithDB(db *gorm.DB) *UserDAO {
	if db == nil {
		return dao
	}
	return &UserDAO{db: db}
}

func (dao *UserDAO) Create(user *User) error {
	return dao.db.Create(user).Error
}

func (dao *UserDAO) FindByID(id uint64) (*User, error) {
	var u User
	if err := dao.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername 精确匹配，调用方负责先转小写
func (dao *UserDAO) FindByUsername(username string) (*User, error) {
	var u User
	if err := dao.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByUsername excludeID 为 0 时不排除任何用户
func (dao *UserDAO) ExistsByUsername(username string, excludeID uint64) (bool, error) {
	var count int64
	q := dao.db.Model(&User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (dao *UserDAO) ExistsByEmail(email string, excludeID uint64) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	q := dao.db.Model(&User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (dao *UserDAO) UpdateFields(id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return dao.db.Model(&User{}).Where("id = ?", id).Updates(updates).Error
}

func (dao *UserDAO) TouchLastLogin(id uint64, at time.Time) error {
	return dao.db.Model(&User{}).Where("id = ?", id).Update("last_login_at", at).Error
}
