package studybud

import (
	"log"

	"github.com/cydxin/studybud/models"
)

// AutoMigrate 建表 / 补列；重复执行无副作用
func (c *StudyEngine) AutoMigrate() error {
	db := c.config.DB
	log.Println("AutoMigrate...")
	return db.AutoMigrate(models.All()...)
}
