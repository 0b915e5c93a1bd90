package awards

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/services/scoring"
	"github.com/shashank-padala/insurus-sub000/services/verify"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// Processor applies a verification result to a task: the DB-affecting award
// sequence runs in one transaction, and the blockchain shim is called
// strictly after commit, best-effort. Chain is injectable for tests.
type Processor struct {
	Chain func(payload interface{}) (string, error)
}

func NewProcessor() *Processor {
	return &Processor{Chain: utils.ChainTxHash}
}

// Outcome summarizes what one verification attempt changed.
type Outcome struct {
	Verified        bool         `json:"verified"`
	PointsAwarded   int          `json:"points_awarded"`
	TotalPoints     int          `json:"total_points"`
	Tier            scoring.Tier `json:"tier"`
	SafetyScore     int          `json:"safety_score"`
	Confidence      float64      `json:"confidence"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
}

// Apply records the verification attempt and, on success, awards points,
// updates the user's tier, and recomputes the property's safety score.
// Rejected tasks may be resubmitted; each attempt appends a Verification row
// and overwrites the task status.
func (p *Processor) Apply(db *gorm.DB, task *models.Task, propertyID uint, userID uint, evidenceURLs []string, result verify.Result) (*Outcome, error) {
	evidenceJSON, err := json.Marshal(evidenceURLs)
	if err != nil {
		return nil, fmt.Errorf("encode evidence urls: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode verification result: %w", err)
	}

	out := &Outcome{
		Verified:        result.IsVerified,
		Confidence:      result.Confidence,
		RejectionReason: result.RejectionReason,
	}

	if !result.IsVerified {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.Verification{
				TaskID:          task.ID,
				EvidenceURLs:    datatypes.JSON(evidenceJSON),
				AIAnalysis:      result.Analysis,
				IsVerified:      false,
				Confidence:      result.Confidence,
				RejectionReason: result.RejectionReason,
			}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
				"status":              models.TaskRejected,
				"evidence_urls":       datatypes.JSON(evidenceJSON),
				"verification_result": datatypes.JSON(resultJSON),
			}).Error
		})
		if err != nil {
			return nil, err
		}
		task.Status = models.TaskRejected
		return out, nil
	}

	points := scoring.AwardPoints(task.BasePointsValue)
	now := time.Now()

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Verification{
			TaskID:       task.ID,
			EvidenceURLs: datatypes.JSON(evidenceJSON),
			AIAnalysis:   result.Analysis,
			IsVerified:   true,
			Confidence:   result.Confidence,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
			"status":              models.TaskVerified,
			"points_earned":       points,
			"verified_at":         now,
			"evidence_urls":       datatypes.JSON(evidenceJSON),
			"verification_result": datatypes.JSON(resultJSON),
		}).Error; err != nil {
			return err
		}

		// one reward per verified task, ever
		if err := tx.Create(&models.Reward{
			UserID:       userID,
			TaskID:       task.ID,
			PointsEarned: points,
			BasePoints:   task.BasePointsValue,
		}).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		user.TotalPointsEarned += points
		tier := scoring.ResolveTier(user.TotalPointsEarned)
		user.CurrentTier = tier.Name
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"total_points_earned": user.TotalPointsEarned,
			"current_tier":        user.CurrentTier,
		}).Error; err != nil {
			return err
		}

		score, err := scoring.RecomputeSafetyScore(tx, propertyID)
		if err != nil {
			return err
		}

		out.PointsAwarded = points
		out.TotalPoints = user.TotalPointsEarned
		out.Tier = tier
		out.SafetyScore = score
		return nil
	})
	if err != nil {
		return nil, err
	}

	task.Status = models.TaskVerified
	task.PointsEarned = points

	p.recordOnChain(db, task, propertyID, userID, points, now)
	return out, nil
}

// recordOnChain writes the decorative blockchain transaction. Failures are
// logged and stored as a failed-status row; they never revert the award.
func (p *Processor) recordOnChain(db *gorm.DB, task *models.Task, propertyID, userID uint, points int, verifiedAt time.Time) {
	payload := map[string]interface{}{
		"task_id":     task.ID,
		"property_id": propertyID,
		"user_id":     userID,
		"points":      points,
		"verified_at": verifiedAt.UTC().Format(time.RFC3339),
	}
	payloadJSON, _ := json.Marshal(payload)

	rec := models.BlockchainRecord{
		TaskID:     task.ID,
		UserID:     userID,
		PropertyID: propertyID,
		Payload:    datatypes.JSON(payloadJSON),
	}

	hash, err := p.Chain(payload)
	if err != nil {
		log.Printf("[awards] blockchain record failed for task %d: %v", task.ID, err)
		rec.Status = models.BlockchainFailed
	} else {
		rec.TxHash = hash
		rec.Status = models.BlockchainConfirmed
	}
	if err := db.Create(&rec).Error; err != nil {
		log.Printf("[awards] could not persist blockchain record for task %d: %v", task.ID, err)
	}
}
