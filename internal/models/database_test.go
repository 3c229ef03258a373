package models_test

import (
	"path/filepath"
	"testing"

	"github.com/mentorhub/mentorhub/internal/config"
	"github.com/mentorhub/mentorhub/internal/models"
	"github.com/mentorhub/mentorhub/internal/testdb"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := models.Open(&config.DatabaseConfig{Driver: "oracle", DSN: "x"}, false)
	if err == nil {
		t.Fatal("Open() should reject unknown drivers")
	}
}

func TestInitDB_SetsGlobal(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "global.db")}
	if err := models.InitDB(cfg, false); err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}
	if models.GetDB() == nil {
		t.Fatal("GetDB() should return the initialized handle")
	}
	if err := models.AutoMigrate(models.GetDB()); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
}

func TestSeedDefaultData_Idempotent(t *testing.T) {
	db := testdb.Setup(t)
	seed := &config.SeedConfig{
		Skills:    []string{"Python", " Go ", "", "Python"},
		Interests: []string{"Design Concepts"},
	}

	for i := 0; i < 2; i++ {
		if err := models.SeedDefaultData(db, seed); err != nil {
			t.Fatalf("SeedDefaultData() run %d error = %v", i, err)
		}
	}

	if n := testdb.CountRows(t, db, "skills", ""); n != 2 {
		t.Errorf("skills = %d, expected 2", n)
	}
	if n := testdb.CountRows(t, db, "skills", "name = ?", "Go"); n != 1 {
		t.Errorf("trimmed skill Go count = %d, expected 1", n)
	}
	if n := testdb.CountRows(t, db, "interests", ""); n != 1 {
		t.Errorf("interests = %d, expected 1", n)
	}
}

func TestMentorshipPairUnique(t *testing.T) {
	db := testdb.Setup(t)

	mentor := models.Member{Email: "m1@x.com", FirstName: "Ada", LastName: "L", Role: models.RoleMentor}
	mentee := models.Member{Email: "m2@x.com", FirstName: "Bo", LastName: "K", Role: models.RoleMentee}
	if err := db.Create(&mentor).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&mentee).Error; err != nil {
		t.Fatal(err)
	}

	first := models.Mentorship{MentorID: mentor.ID, MenteeID: mentee.ID}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert error = %v", err)
	}

	dup := models.Mentorship{MentorID: mentor.ID, MenteeID: mentee.ID}
	if err := db.Create(&dup).Error; err == nil {
		t.Error("second insert for the same pair should violate the unique index")
	}

	reverse := models.Mentorship{MentorID: mentee.ID, MenteeID: mentor.ID}
	if err := db.Create(&reverse).Error; err != nil {
		t.Errorf("reverse pair should be allowed, got %v", err)
	}
}

func TestDeleteMemberCascadesMentorships(t *testing.T) {
	db := testdb.Setup(t)

	mentor := models.Member{Email: "m1@x.com", FirstName: "Ada", LastName: "L", Role: models.RoleMentor}
	mentee := models.Member{Email: "m2@x.com", FirstName: "Bo", LastName: "K", Role: models.RoleMentee}
	db.Create(&mentor)
	db.Create(&mentee)
	if err := db.Create(&models.Mentorship{MentorID: mentor.ID, MenteeID: mentee.ID}).Error; err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(&models.Member{}, mentor.ID).Error; err != nil {
		t.Fatalf("delete member error = %v", err)
	}

	if n := testdb.CountRows(t, db, "mentorships", ""); n != 0 {
		t.Errorf("mentorships after member delete = %d, expected 0", n)
	}
}
