package postgres

import (
	"photodeck/internal/domain/repository"

	"gorm.io/gorm"
)

// filterScopes translates a sparse search specification into GORM scopes, one
// per present field. Scopes compose with AND; an empty specification yields no
// scopes and therefore matches everything. Predicates on nullable columns
// carry an explicit IS NOT NULL guard so a present filter never matches rows
// where the value was simply not recorded.
func filterScopes(search *repository.PictureSearch) []func(*gorm.DB) *gorm.DB {
	if search == nil {
		return nil
	}

	var scopes []func(*gorm.DB) *gorm.DB

	if search.Title != nil {
		title := *search.Title
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("title LIKE ?", "%"+title+"%")
		})
	}
	if search.Description != nil {
		description := *search.Description
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("description IS NOT NULL AND description LIKE ?", "%"+description+"%")
		})
	}
	if search.Width != nil {
		width := *search.Width
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("width = ?", width)
		})
	}
	if search.Height != nil {
		height := *search.Height
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("height = ?", height)
		})
	}
	if search.ISO != nil {
		iso := *search.ISO
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("iso IS NOT NULL AND iso LIKE ?", "%"+iso+"%")
		})
	}
	if search.CameraModel != nil {
		cameraModel := *search.CameraModel
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("camera_model IS NOT NULL AND camera_model LIKE ?", "%"+cameraModel+"%")
		})
	}
	if search.Flash != nil {
		flash := *search.Flash
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("flash = ?", flash)
		})
	}
	if search.DelayTimeMilliseconds != nil {
		delay := *search.DelayTimeMilliseconds
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("delay_time_milliseconds = ?", delay)
		})
	}
	if search.FocusDistance != nil {
		focusDistance := *search.FocusDistance
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("focus_distance IS NOT NULL AND focus_distance LIKE ?", "%"+focusDistance+"%")
		})
	}
	if search.ShootingDateFrom != nil {
		from := *search.ShootingDateFrom
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("shooting_date IS NOT NULL AND shooting_date >= ?", from)
		})
	}
	if search.ShootingDateTo != nil {
		to := *search.ShootingDateTo
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("shooting_date IS NOT NULL AND shooting_date <= ?", to)
		})
	}

	return scopes
}

// applyFilters folds all filter scopes into the query.
func applyFilters(db *gorm.DB, search *repository.PictureSearch) *gorm.DB {
	scopes := filterScopes(search)
	if len(scopes) == 0 {
		return db
	}

	return db.Scopes(scopes...)
}

// applySort orders the query by exactly one sort key. Unknown sort names fall
// back to the catalog insertion time; the direction defaults to descending so
// the newest pictures come first. No secondary tie-break key is applied.
func applySort(db *gorm.DB, search *repository.PictureSearch) *gorm.DB {
	column := "created"
	order := "DESC"

	if search != nil {
		switch search.SortBy {
		case repository.SortByTitle:
			column = "title"
		case repository.SortByShootingDate:
			column = "shooting_date"
		case repository.SortByCreated:
			column = "created"
		}
		if search.SortOrder == repository.SortAscending {
			order = "ASC"
		}
	}

	return db.Order(column + " " + order)
}
