package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/eventbook/internal/entities"
)

// The package-level helpers take a *gorm.DB so callers can run them inside
// a transaction; the Database methods are the common non-transactional path.

func (d *Database) GetSetting(key string) (*entities.Setting, error) {
	return GetSetting(d.DB, key)
}

func (d *Database) SetSetting(key, value string) error {
	return SetSetting(d.DB, key, value)
}

func (d *Database) DeleteSetting(key string) error {
	return DeleteSetting(d.DB, key)
}

// GetSetting returns the setting row for key, or gorm.ErrRecordNotFound.
func GetSetting(db *gorm.DB, key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting creates or updates the setting row for key.
func SetSetting(db *gorm.DB, key, value string) error {
	var setting entities.Setting
	result := db.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return db.Save(&setting).Error
}

// DeleteSetting removes the setting row for key if it exists.
func DeleteSetting(db *gorm.DB, key string) error {
	return db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}
