package importer

import (
	"github.com/andes-mining/capex-backend/internal/models"
	"gorm.io/gorm"
)

// Create replaces the database contents with a parsed dataset.
//
// The whole replacement happens in a single transaction so that a
// failing dataset leaves the previous data untouched and a fresh
// database empty.
func Create(db *gorm.DB, parsed ParsedDataset) error {
	tx := db.Begin()

	// The dataset is fixed per session, starting a session with a new
	// document replaces everything.
	if err := tx.Where("1 = 1").Delete(&models.Registro{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("1 = 1").Delete(&models.Proyecto{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, proyecto := range parsed.Proyectos {
		if err := tx.Create(&proyecto).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, registro := range parsed.Registros {
		if err := tx.Create(&registro).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
