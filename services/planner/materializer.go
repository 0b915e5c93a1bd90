package planner

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
)

// insertBatchSize is a soft cap on rows per insert; purely an efficiency
// measure, failures stay scoped to one batch.
const insertBatchSize = 100

// Result reports what a materialization run managed to create. Errors holds
// per-item failures; the run favors partial success over atomicity because
// property registration must not be blocked by plan-creation failures.
type Result struct {
	ChecklistsCreated int      `json:"checklists_created"`
	TasksCreated      int      `json:"tasks_created"`
	Errors            []string `json:"errors,omitempty"`
}

// MaterializeYear expands the given templates into dated checklist and task
// rows across a one-year horizon starting at firstTaskDate.
func MaterializeYear(db *gorm.DB, property *models.Property, firstTaskDate time.Time, templates []catalog.Template, meta datatypes.JSON) Result {
	var res Result

	catIDs, riskIDs, err := loadCategoryMaps(db)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("category lookup failed: %v", err))
		return res
	}

	boundary := firstTaskDate.AddDate(1, 0, 0)

	// Checklists are resolved once per month and reused across templates.
	checklists := map[time.Time]*models.TaskChecklist{}
	var pending []models.Task

	for _, tpl := range templates {
		catID, ok := catIDs[tpl.Category]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("task %q: unknown category %q", tpl.Name, tpl.Category))
			continue
		}
		riskID, ok := riskIDs[tpl.RiskCategory]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("task %q: unknown risk category %q", tpl.Name, tpl.RiskCategory))
			continue
		}

		for _, occurrence := range expandOccurrences(tpl.Frequency, firstTaskDate, boundary) {
			month := monthStart(occurrence)
			cl, ok := checklists[month]
			if !ok {
				var created bool
				cl, created, err = resolveChecklist(db, property.ID, month, meta)
				if err != nil {
					res.Errors = append(res.Errors, fmt.Sprintf("checklist %s: %v", month.Format("2006-01"), err))
					continue
				}
				checklists[month] = cl
				if created {
					res.ChecklistsCreated++
				}
			}

			pending = append(pending, models.Task{
				ChecklistID:      cl.ID,
				TemplateCode:     tpl.Code,
				Name:             tpl.Name,
				Description:      tpl.Description,
				CategoryID:       catID,
				RiskCategoryID:   riskID,
				BasePointsValue:  tpl.PointsValue,
				Frequency:        tpl.Frequency,
				VerificationType: tpl.VerificationType,
				Status:           models.TaskPending,
				DueDate:          taskDueDate(tpl.Frequency, occurrence),
			})
		}
	}

	for start := 0; start < len(pending); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]
		if err := db.Create(&batch).Error; err != nil {
			log.Printf("[materializer] batch insert failed for property %d: %v", property.ID, err)
			res.Errors = append(res.Errors, fmt.Sprintf("batch insert failed: %v", err))
			continue
		}
		res.TasksCreated += len(batch)
	}

	return res
}

// expandOccurrences returns the dated occurrences of one template between
// firstTaskDate and the horizon boundary (inclusive).
func expandOccurrences(freq catalog.Frequency, firstTaskDate, boundary time.Time) []time.Time {
	var out []time.Time
	switch freq {
	case catalog.FrequencyMonthly:
		for n := 0; n < 12; n++ {
			d := addMonths(firstTaskDate, n)
			if d.After(boundary) {
				break
			}
			out = append(out, d)
		}
	case catalog.FrequencyQuarterly:
		for n := 0; n < 12; n += 3 {
			d := addMonths(firstTaskDate, n)
			if d.After(boundary) {
				break
			}
			out = append(out, d)
		}
	case catalog.FrequencyAnnually:
		d := firstTaskDate.AddDate(1, 0, 0)
		if !d.After(boundary) {
			out = append(out, d)
		}
	case catalog.FrequencyAsNeeded:
		out = append(out, firstTaskDate)
	}
	return out
}

// taskDueDate applies the per-frequency due-date rule to one occurrence.
func taskDueDate(freq catalog.Frequency, occurrence time.Time) time.Time {
	switch freq {
	case catalog.FrequencyMonthly:
		return time.Date(occurrence.Year(), occurrence.Month(), 15, 0, 0, 0, 0, occurrence.Location())
	case catalog.FrequencyQuarterly:
		// last day of the second month in the quarter window
		return endOfMonth(addMonths(monthStart(occurrence), 1))
	case catalog.FrequencyAnnually:
		return time.Date(occurrence.Year(), 12, 31, 0, 0, 0, 0, occurrence.Location())
	default:
		return endOfMonth(occurrence)
	}
}

// resolveChecklist finds or creates the checklist for (property, month).
// The composite unique index turns the check-then-insert race into a benign
// refetch: if the insert loses, the winner's row is reused.
func resolveChecklist(db *gorm.DB, propertyID uint, month time.Time, meta datatypes.JSON) (*models.TaskChecklist, bool, error) {
	var existing models.TaskChecklist
	err := db.Where("property_id = ? AND checklist_month = ?", propertyID, month).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	cl := models.TaskChecklist{
		PropertyID:     propertyID,
		ChecklistMonth: month,
		Status:         models.ChecklistPending,
		DueDate:        endOfMonth(month),
		GenerationMeta: meta,
	}
	if err := db.Create(&cl).Error; err != nil {
		// duplicate key from a concurrent writer: reuse theirs
		var winner models.TaskChecklist
		if err2 := db.Where("property_id = ? AND checklist_month = ?", propertyID, month).First(&winner).Error; err2 == nil {
			return &winner, false, nil
		}
		return nil, false, err
	}
	return &cl, true, nil
}

func loadCategoryMaps(db *gorm.DB) (map[string]uint, map[string]uint, error) {
	var cats []models.TaskCategory
	if err := db.Find(&cats).Error; err != nil {
		return nil, nil, err
	}
	var risks []models.RiskCategory
	if err := db.Find(&risks).Error; err != nil {
		return nil, nil, err
	}
	catIDs := make(map[string]uint, len(cats))
	for _, c := range cats {
		catIDs[c.Code] = c.ID
	}
	riskIDs := make(map[string]uint, len(risks))
	for _, r := range risks {
		riskIDs[r.Code] = r.ID
	}
	return catIDs, riskIDs, nil
}
