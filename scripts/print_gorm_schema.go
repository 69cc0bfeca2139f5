package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cydxin/studybud/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Usage:
//
//	go run ./scripts/print_gorm_schema.go
//	STUDYBUD_DSN=user:pass@tcp(127.0.0.1:3306)/studybud?parseTime=true go run ./scripts/print_gorm_schema.go
//
// 不设置 STUDYBUD_DSN 时只打印 GORM 解析出的 MySQL 列类型（不连库）；
// 设置后额外打印库里实际的 SHOW COLUMNS，方便对比迁移结果。
func main() {
	dsn := os.Getenv("STUDYBUD_DSN")
	online := dsn != ""
	if !online {
		dsn = "offline:offline@tcp(127.0.0.1:3306)/studybud"
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: !online,
	}), &gorm.Config{DisableAutomaticPing: !online})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	for _, m := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			log.Fatalf("parse %T: %v", m, err)
		}
		table := stmt.Schema.Table

		fmt.Printf("=== %s (GORM) ===\n", table)
		for _, f := range stmt.Schema.Fields {
			if f.DBName == "" {
				continue
			}
			fmt.Printf("%s\t%s\t%s\n", f.DBName, db.Dialector.DataTypeOf(f), f.Tag.Get("gorm"))
		}

		if online {
			printColumns(db, table)
		}
		fmt.Println()
	}
}

func printColumns(db *gorm.DB, table string) {
	type col struct {
		Field string
		Type  string
		Null  string
		Key   string
	}
	var cols []col
	// Works on MySQL
	if err := db.Raw("SHOW COLUMNS FROM " + table).Scan(&cols).Error; err != nil {
		fmt.Printf("SHOW COLUMNS FROM %s failed: %v\n", table, err)
		return
	}
	fmt.Printf("=== %s (SHOW COLUMNS) ===\n", table)
	for _, c := range cols {
		fmt.Printf("%s\t%s\t%s\t%s\n", c.Field, c.Type, c.Null, c.Key)
	}
}
