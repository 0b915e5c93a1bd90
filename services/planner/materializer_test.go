package planner

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/database"
	"github.com/shashank-padala/insurus-sub000/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	return db
}

func testProperty(t *testing.T, db *gorm.DB) *models.Property {
	t.Helper()
	user := models.User{Email: "owner@example.com", FullName: "Owner", Password: "x", CurrentTier: "Starter", Status: "Active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	property := models.Property{UserID: user.ID, Address: "1 Main St", City: "Springfield", PropertyType: "house"}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}
	return &property
}

func monthlyTemplate() catalog.Template {
	return catalog.Template{
		Code:             "smoke_detector_test",
		Name:             "Test smoke detectors",
		Description:      "Press the test button on every detector",
		Category:         catalog.CategoryFireSafety,
		RiskCategory:     catalog.RiskFire,
		PointsValue:      8,
		Frequency:        catalog.FrequencyMonthly,
		VerificationType: catalog.VerificationPhoto,
	}
}

func TestMaterializeYearMonthlyCoversTwelveMonths(t *testing.T) {
	db := testDB(t)
	property := testProperty(t, db)

	// registration Jan 1 puts the first occurrence on Jan 31
	first := day(2024, time.January, 31)
	res := MaterializeYear(db, property, first, []catalog.Template{monthlyTemplate()}, nil)

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.ChecklistsCreated != 12 {
		t.Errorf("ChecklistsCreated = %d, want 12", res.ChecklistsCreated)
	}
	if res.TasksCreated != 12 {
		t.Errorf("TasksCreated = %d, want 12", res.TasksCreated)
	}

	var checklists []models.TaskChecklist
	db.Where("property_id = ?", property.ID).Order("checklist_month ASC").Find(&checklists)
	if len(checklists) != 12 {
		t.Fatalf("checklist rows = %d, want 12", len(checklists))
	}
	if checklists[0].ChecklistMonth.Month() != time.January || checklists[11].ChecklistMonth.Month() != time.December {
		t.Errorf("checklist months run %s..%s, want January..December",
			checklists[0].ChecklistMonth.Month(), checklists[11].ChecklistMonth.Month())
	}

	// monthly due date rule: the 15th of the occurrence month
	var tasks []models.Task
	db.Where("checklist_id = ?", checklists[2].ID).Find(&tasks)
	if len(tasks) != 1 {
		t.Fatalf("tasks in third checklist = %d, want 1", len(tasks))
	}
	if tasks[0].DueDate.Day() != 15 {
		t.Errorf("monthly due day = %d, want 15", tasks[0].DueDate.Day())
	}
	if tasks[0].Status != models.TaskPending {
		t.Errorf("task status = %q, want pending", tasks[0].Status)
	}
}

func TestMaterializeYearReusesChecklists(t *testing.T) {
	db := testDB(t)
	property := testProperty(t, db)
	first := day(2024, time.March, 10)

	res1 := MaterializeYear(db, property, first, []catalog.Template{monthlyTemplate()}, nil)
	if res1.ChecklistsCreated != 12 {
		t.Fatalf("first run created %d checklists, want 12", res1.ChecklistsCreated)
	}

	// a second run (e.g. regeneration) must reuse the existing months
	res2 := MaterializeYear(db, property, first, []catalog.Template{monthlyTemplate()}, nil)
	if res2.ChecklistsCreated != 0 {
		t.Errorf("second run created %d checklists, want 0", res2.ChecklistsCreated)
	}

	var count int64
	db.Model(&models.TaskChecklist{}).Where("property_id = ?", property.ID).Count(&count)
	if count != 12 {
		t.Errorf("checklist rows = %d, want 12", count)
	}
}

func TestMaterializeYearMixedFrequencies(t *testing.T) {
	db := testDB(t)
	property := testProperty(t, db)
	first := day(2024, time.June, 20)

	quarterly := monthlyTemplate()
	quarterly.Code = "plumbing_leak_inspection"
	quarterly.Name = "Inspect plumbing for leaks"
	quarterly.Category = catalog.CategoryWaterDamage
	quarterly.RiskCategory = catalog.RiskWater
	quarterly.Frequency = catalog.FrequencyQuarterly

	annual := monthlyTemplate()
	annual.Code = "roof_inspection"
	annual.Name = "Annual roof inspection"
	annual.Category = catalog.CategoryStructural
	annual.RiskCategory = catalog.RiskStructural
	annual.Frequency = catalog.FrequencyAnnually

	res := MaterializeYear(db, property, first, []catalog.Template{monthlyTemplate(), quarterly, annual}, nil)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	// 12 monthly + 4 quarterly + 1 annual
	if res.TasksCreated != 17 {
		t.Errorf("TasksCreated = %d, want 17", res.TasksCreated)
	}
}

func TestMaterializeYearSkipsUnknownCategory(t *testing.T) {
	db := testDB(t)
	property := testProperty(t, db)

	bad := monthlyTemplate()
	bad.Category = "not_a_category"

	res := MaterializeYear(db, property, day(2024, time.May, 1), []catalog.Template{bad, monthlyTemplate()}, nil)
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", res.Errors)
	}
	// the bad template is skipped, the good one still materializes in full
	if res.TasksCreated != 12 {
		t.Errorf("TasksCreated = %d, want 12", res.TasksCreated)
	}
}

func TestBroadcastTaskReachesEveryProperty(t *testing.T) {
	db := testDB(t)
	p1 := testProperty(t, db)
	user2 := models.User{Email: "second@example.com", FullName: "Second", Password: "x", CurrentTier: "Starter", Status: "Active"}
	if err := db.Create(&user2).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	p2 := models.Property{UserID: user2.ID, Address: "2 Oak Ave", City: "Springfield", PropertyType: "condo"}
	if err := db.Create(&p2).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}

	tpl := monthlyTemplate()
	tpl.Frequency = catalog.FrequencyAsNeeded
	month := day(2024, time.August, 5)

	res := BroadcastTask(db, tpl, month)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.TasksCreated != 2 {
		t.Errorf("TasksCreated = %d, want 2", res.TasksCreated)
	}
	if res.ChecklistsCreated != 2 {
		t.Errorf("ChecklistsCreated = %d, want 2", res.ChecklistsCreated)
	}

	for _, pid := range []uint{p1.ID, p2.ID} {
		var cl models.TaskChecklist
		if err := db.Where("property_id = ? AND checklist_month = ?", pid, monthStart(month)).First(&cl).Error; err != nil {
			t.Fatalf("checklist missing for property %d: %v", pid, err)
		}
		var task models.Task
		if err := db.Where("checklist_id = ?", cl.ID).First(&task).Error; err != nil {
			t.Fatalf("task missing for property %d: %v", pid, err)
		}
		if task.Frequency != catalog.FrequencyAsNeeded {
			t.Errorf("broadcast task frequency = %q, want as_needed", task.Frequency)
		}
		if task.DueDate.Day() != 31 {
			t.Errorf("broadcast due day = %d, want 31", task.DueDate.Day())
		}
	}
}

func TestResolveChecklistReusesExisting(t *testing.T) {
	db := testDB(t)
	property := testProperty(t, db)
	month := day(2024, time.April, 1)

	first, created, err := resolveChecklist(db, property.ID, month, nil)
	if err != nil || !created {
		t.Fatalf("first resolve: created=%v err=%v", created, err)
	}
	second, created, err := resolveChecklist(db, property.ID, month, nil)
	if err != nil || created {
		t.Fatalf("second resolve: created=%v err=%v", created, err)
	}
	if first.ID != second.ID {
		t.Errorf("resolve returned different checklists: %d vs %d", first.ID, second.ID)
	}
}
