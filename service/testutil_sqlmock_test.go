package service

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/cydxin/studybud/models"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB 用 go-sqlmock 创建一个可被 GORM 使用的 *gorm.DB。
// 说明：我们用 mysql dialector 只是为了让 GORM 生成的 SQL/占位符风格稳定（? 占位符），
// 实际不会连接真实 MySQL。
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	// SkipDefaultTransaction: 避免 GORM 默认在每次写操作开启事务，简化 sqlmock 断言
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqldb, SkipInitializeWithVersion: true}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		_ = sqldb.Close()
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock, sqldb
}

// newTestService 内存 sqlite + miniredis，跑真实的 SQL 与事务。
// sqlite 内存库每个连接独立，所以固定单连接；事务内不能再用 s.DB 查询，否则会死锁。
func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	})

	return &Service{DB: db, RDB: rdb, FeedLimit: 50}
}

const testPassword = "s3cure-pass!"

func mustRegister(t *testing.T, us *UserService, username string) *models.User {
	t.Helper()
	u, err := us.Register(RegisterReq{
		Username:  username,
		Password1: testPassword,
		Password2: testPassword,
	})
	if err != nil {
		t.Fatalf("Register(%s): %v", username, err)
	}
	return u
}

func mustCreateRoom(t *testing.T, rs *RoomService, hostID uint64, topic, name, desc string) *models.Room {
	t.Helper()
	room, err := rs.CreateRoom(hostID, RoomReq{Topic: topic, Name: name, Description: desc})
	if err != nil {
		t.Fatalf("CreateRoom(%s): %v", name, err)
	}
	return room
}

func mustPost(t *testing.T, ms *MessageService, roomID, senderID uint64, body string) *models.Message {
	t.Helper()
	msg, err := ms.PostMessage(roomID, senderID, body)
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	return msg
}

// fieldError 断言 err 是 ValidationError 且包含 field
func fieldError(t *testing.T, err error, field string) {
	t.Helper()
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if _, ok := ve.Fields[field]; !ok {
		t.Fatalf("expected error on %q, got %v", field, ve.Fields)
	}
}
