package models

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}
	return db, mock
}

func TestLikePattern(t *testing.T) {
	tests := map[string]string{
		"":       "%%",
		"Phys":   "%phys%",
		"50%":    "%50!%%",
		"a_b":    "%a!_b%",
		"wow!":   "%wow!!%",
		"MiXeD ": "%mixed %",
	}
	for in, want := range tests {
		if got := LikePattern(in); got != want {
			t.Errorf("LikePattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTableNames(t *testing.T) {
	want := []string{"sb_user", "sb_topic", "sb_room", "sb_room_participant", "sb_message"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("expected %d tables, got %d", len(want), len(all))
	}
	for i, m := range all {
		tn, ok := m.(interface{ TableName() string })
		if !ok {
			t.Fatalf("%T has no TableName", m)
		}
		if tn.TableName() != want[i] {
			t.Errorf("table %d = %q, want %q", i, tn.TableName(), want[i])
		}
	}
}

func TestMessageDAO_DistinctSenderIDs(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT `sender_id` FROM `sb_message` WHERE room_id = ?")).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"sender_id"}).AddRow(uint64(1)).AddRow(uint64(2)))

	ids, err := NewMessageDAO(db).DistinctSenderIDs(3)
	if err != nil {
		t.Fatalf("DistinctSenderIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestMessageDAO_FindByTopicKeyword(t *testing.T) {
	db, mock := newMockDB(t)

	// 用更宽松的正则，只校验 JOIN / LIKE / LIMIT 的形状
	mock.ExpectQuery("SELECT .* FROM `sb_message` JOIN sb_room ON .* JOIN sb_topic ON .* LIKE \\? ESCAPE '!' ORDER BY .* LIMIT \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "sender_id", "body"}))

	msgs, err := NewMessageDAO(db).FindByTopicKeyword("Phys", 5)
	if err != nil {
		t.Fatalf("FindByTopicKeyword: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUserDAO_ExistsByEmail_EmptySkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)

	exists, err := NewUserDAO(db).ExistsByEmail("", 0)
	if err != nil || exists {
		t.Fatalf("expected false, nil; got %v, %v", exists, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected sql: %v", err)
	}
}

func TestUserDAO_ExistsByUsername_ExcludesSelf(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sb_user` WHERE username = ? AND id <> ?")).
		WithArgs("alice", uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err := NewUserDAO(db).ExistsByUsername("alice", 9)
	if err != nil {
		t.Fatalf("ExistsByUsername: %v", err)
	}
	if exists {
		t.Fatalf("expected not exists")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
