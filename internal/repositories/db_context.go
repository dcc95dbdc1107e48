package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Job{})
	if err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Resume{})
	if err != nil {
		return fmt.Errorf("failed to migrate Resume entity: %w", err)
	}

	// a job's applicants set holds each user at most once
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_applicant " +
		"ON job_applicants (job_id, user_id);").Error; err != nil {
		return fmt.Errorf("failed to create applicants index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
