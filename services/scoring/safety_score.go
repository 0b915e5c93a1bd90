package scoring

import (
	"math"

	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/models"
)

// RecomputeSafetyScore recalculates a property's safety score from scratch
// and persists it. Full recomputation is O(tasks) per verification event but
// stays correct even if an intermediate task mutation was missed.
func RecomputeSafetyScore(db *gorm.DB, propertyID uint) (int, error) {
	var total, done int64

	if err := db.Model(&models.Task{}).
		Joins("JOIN task_checklists ON task_checklists.id = tasks.checklist_id").
		Where("task_checklists.property_id = ?", propertyID).
		Count(&total).Error; err != nil {
		return 0, err
	}

	score := 0
	if total > 0 {
		if err := db.Model(&models.Task{}).
			Joins("JOIN task_checklists ON task_checklists.id = tasks.checklist_id").
			Where("task_checklists.property_id = ?", propertyID).
			Where("tasks.status IN ?", []string{models.TaskVerified, models.TaskCompleted}).
			Count(&done).Error; err != nil {
			return 0, err
		}
		score = int(math.Round(100 * float64(done) / float64(total)))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
	}
	// zero checklists or zero tasks means 0% safe, never 100%

	if err := db.Model(&models.Property{}).Where("id = ?", propertyID).
		Update("safety_score", score).Error; err != nil {
		return 0, err
	}
	return score, nil
}
