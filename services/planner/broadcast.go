package planner

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
)

// BroadcastTask appends one ad-hoc task to the given month's checklist of
// every property. Broadcast tasks are one-off: they carry the as_needed
// frequency and fall due at the end of the month. Failures on one property
// never stop the rest.
func BroadcastTask(db *gorm.DB, tpl catalog.Template, month time.Time) Result {
	var res Result

	catIDs, riskIDs, err := loadCategoryMaps(db)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("category lookup failed: %v", err))
		return res
	}
	catID, ok := catIDs[tpl.Category]
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("unknown category %q", tpl.Category))
		return res
	}
	riskID, ok := riskIDs[tpl.RiskCategory]
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("unknown risk category %q", tpl.RiskCategory))
		return res
	}

	month = monthStart(month)
	due := endOfMonth(month)

	var pending []models.Task
	var properties []models.Property
	err = db.FindInBatches(&properties, insertBatchSize, func(tx *gorm.DB, _ int) error {
		for _, property := range properties {
			cl, created, err := resolveChecklist(db, property.ID, month, nil)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("property %d: %v", property.ID, err))
				continue
			}
			if created {
				res.ChecklistsCreated++
			}
			pending = append(pending, models.Task{
				ChecklistID:      cl.ID,
				Name:             tpl.Name,
				Description:      tpl.Description,
				CategoryID:       catID,
				RiskCategoryID:   riskID,
				BasePointsValue:  tpl.PointsValue,
				Frequency:        catalog.FrequencyAsNeeded,
				VerificationType: tpl.VerificationType,
				Status:           models.TaskPending,
				DueDate:          due,
			})
		}
		return nil
	}).Error
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("property scan failed: %v", err))
	}

	for start := 0; start < len(pending); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]
		if err := db.Create(&batch).Error; err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("batch insert failed: %v", err))
			continue
		}
		res.TasksCreated += len(batch)
	}

	return res
}
