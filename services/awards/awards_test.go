package awards

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/services/verify"
	"github.com/shashank-padala/insurus-sub000/utils"
)

type fixture struct {
	db       *gorm.DB
	user     models.User
	property models.Property
	task     models.Task
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db}
	f.user = models.User{Email: "award@example.com", FullName: "Award", Password: "x", CurrentTier: "Starter", Status: "Active"}
	if err := db.Create(&f.user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	f.property = models.Property{UserID: f.user.ID, Address: "1 Main St", City: "Springfield", PropertyType: "house"}
	if err := db.Create(&f.property).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}
	month := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cl := models.TaskChecklist{PropertyID: f.property.ID, ChecklistMonth: month, Status: models.ChecklistPending, DueDate: month.AddDate(0, 1, -1)}
	if err := db.Create(&cl).Error; err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	f.task = models.Task{
		ChecklistID: cl.ID, Name: "Test smoke detectors", Description: "d",
		CategoryID: 1, RiskCategoryID: 1, BasePointsValue: 8,
		Frequency: "monthly", VerificationType: "photo",
		Status: models.TaskInProgress, DueDate: month.AddDate(0, 0, 14),
	}
	if err := db.Create(&f.task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}
	return f
}

var evidence = []string{"https://example.com/photo.jpg"}

func TestApplyVerifiedAwards(t *testing.T) {
	f := newFixture(t)
	p := &Processor{Chain: utils.ChainTxHash}

	out, err := p.Apply(f.db, &f.task, f.property.ID, f.user.ID, evidence, verify.Result{IsVerified: true, Confidence: 0.9, Analysis: "ok"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !out.Verified {
		t.Fatal("outcome not verified")
	}
	if out.PointsAwarded != 80 {
		t.Errorf("PointsAwarded = %d, want 80", out.PointsAwarded)
	}
	if out.TotalPoints != 80 {
		t.Errorf("TotalPoints = %d, want 80", out.TotalPoints)
	}
	if out.Tier.Name != "Starter" {
		t.Errorf("tier = %s, want Starter", out.Tier.Name)
	}
	if out.SafetyScore != 100 {
		t.Errorf("SafetyScore = %d, want 100 (only task verified)", out.SafetyScore)
	}

	var task models.Task
	f.db.First(&task, f.task.ID)
	if task.Status != models.TaskVerified || task.PointsEarned != 80 || task.VerifiedAt == nil {
		t.Errorf("task row = status %q, points %d, verified_at %v", task.Status, task.PointsEarned, task.VerifiedAt)
	}

	var reward models.Reward
	if err := f.db.Where("task_id = ?", f.task.ID).First(&reward).Error; err != nil {
		t.Fatalf("reward row missing: %v", err)
	}
	if reward.PointsEarned != 80 || reward.BasePoints != 8 {
		t.Errorf("reward = %d points, %d base", reward.PointsEarned, reward.BasePoints)
	}

	var user models.User
	f.db.First(&user, f.user.ID)
	if user.TotalPointsEarned != 80 {
		t.Errorf("user points = %d, want 80", user.TotalPointsEarned)
	}

	var rec models.BlockchainRecord
	if err := f.db.Where("task_id = ?", f.task.ID).First(&rec).Error; err != nil {
		t.Fatalf("blockchain record missing: %v", err)
	}
	if rec.Status != models.BlockchainConfirmed || rec.TxHash == "" {
		t.Errorf("blockchain record = %q status, hash %q", rec.Status, rec.TxHash)
	}
}

func TestApplyRejectedLeavesAwardsUntouched(t *testing.T) {
	f := newFixture(t)
	p := &Processor{Chain: utils.ChainTxHash}

	out, err := p.Apply(f.db, &f.task, f.property.ID, f.user.ID, evidence, verify.Result{IsVerified: false, Confidence: 0.2, RejectionReason: "photo too dark"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Verified || out.PointsAwarded != 0 {
		t.Fatalf("outcome = %+v, want rejection with zero points", out)
	}

	var task models.Task
	f.db.First(&task, f.task.ID)
	if task.Status != models.TaskRejected {
		t.Errorf("task status = %q, want rejected", task.Status)
	}

	var rewards, records int64
	f.db.Model(&models.Reward{}).Count(&rewards)
	f.db.Model(&models.BlockchainRecord{}).Count(&records)
	if rewards != 0 || records != 0 {
		t.Errorf("rejection wrote %d rewards, %d blockchain records", rewards, records)
	}

	var user models.User
	f.db.First(&user, f.user.ID)
	if user.TotalPointsEarned != 0 {
		t.Errorf("user points = %d, want 0", user.TotalPointsEarned)
	}

	// the attempt itself is still recorded
	var verifications int64
	f.db.Model(&models.Verification{}).Where("task_id = ?", f.task.ID).Count(&verifications)
	if verifications != 1 {
		t.Errorf("verification rows = %d, want 1", verifications)
	}
}

func TestApplyChainFailureDoesNotRevertAward(t *testing.T) {
	f := newFixture(t)
	p := &Processor{Chain: func(interface{}) (string, error) { return "", errors.New("chain offline") }}

	out, err := p.Apply(f.db, &f.task, f.property.ID, f.user.ID, evidence, verify.Result{IsVerified: true, Confidence: 0.8})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !out.Verified || out.PointsAwarded != 80 {
		t.Fatalf("outcome = %+v, want award despite chain failure", out)
	}

	var rec models.BlockchainRecord
	if err := f.db.Where("task_id = ?", f.task.ID).First(&rec).Error; err != nil {
		t.Fatalf("blockchain record missing: %v", err)
	}
	if rec.Status != models.BlockchainFailed || rec.TxHash != "" {
		t.Errorf("blockchain record = %q status, hash %q, want failed with empty hash", rec.Status, rec.TxHash)
	}

	var user models.User
	f.db.First(&user, f.user.ID)
	if user.TotalPointsEarned != 80 {
		t.Errorf("user points = %d, want 80", user.TotalPointsEarned)
	}
}

func TestApplyResubmissionAfterRejection(t *testing.T) {
	f := newFixture(t)
	p := &Processor{Chain: utils.ChainTxHash}

	if _, err := p.Apply(f.db, &f.task, f.property.ID, f.user.ID, evidence, verify.Result{IsVerified: false, RejectionReason: "blurry"}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	out, err := p.Apply(f.db, &f.task, f.property.ID, f.user.ID, evidence, verify.Result{IsVerified: true, Confidence: 0.95})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if !out.Verified || out.PointsAwarded != 80 {
		t.Fatalf("outcome = %+v, want verified on resubmission", out)
	}

	// both attempts are kept
	var verifications int64
	f.db.Model(&models.Verification{}).Where("task_id = ?", f.task.ID).Count(&verifications)
	if verifications != 2 {
		t.Errorf("verification rows = %d, want 2", verifications)
	}

	var rewards int64
	f.db.Model(&models.Reward{}).Where("task_id = ?", f.task.ID).Count(&rewards)
	if rewards != 1 {
		t.Errorf("reward rows = %d, want 1", rewards)
	}
}

func TestTierPromotionOnAccumulatedPoints(t *testing.T) {
	f := newFixture(t)
	// user already sits just under Bronze
	f.db.Model(&models.User{}).Where("id = ?", f.user.ID).Update("total_points_earned", 90)

	p := &Processor{Chain: utils.ChainTxHash}
	out, err := p.Apply(f.db, &f.task, f.property.ID, f.user.ID, evidence, verify.Result{IsVerified: true, Confidence: 0.9})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.TotalPoints != 170 {
		t.Errorf("TotalPoints = %d, want 170", out.TotalPoints)
	}
	if out.Tier.Name != "Bronze" || out.Tier.DiscountPercent != 5 {
		t.Errorf("tier = %s (%d%%), want Bronze (5%%)", out.Tier.Name, out.Tier.DiscountPercent)
	}

	var user models.User
	f.db.First(&user, f.user.ID)
	if user.CurrentTier != "Bronze" {
		t.Errorf("persisted tier = %s, want Bronze", user.CurrentTier)
	}
}
