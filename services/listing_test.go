package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/utils"
)

func TestPublicResearchQueryFiltersApprovedOnly(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `research` WHERE status = \\?.*ORDER BY create_at DESC"),
			args:    []driver.Value{utils.StatusApproved},
			columns: []string{"research_id", "title", "status"},
			rows: [][]driver.Value{
				{int64(1), "Approved study", utils.StatusApproved},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	var research []models.Research
	if err := PublicResearchQuery(db.Model(&models.Research{}), "", "").Find(&research).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if len(research) != 1 || research[0].Status != utils.StatusApproved {
		t.Errorf("unexpected result set: %+v", research)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestPublicResearchQueryAppliesOptionalFilters(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `research` WHERE status = \\? AND type = \\? AND community = \\?"),
			args:    []driver.Value{utils.StatusApproved, "thesis", "Mro"},
			columns: []string{"research_id", "title", "status"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	var research []models.Research
	if err := PublicResearchQuery(db.Model(&models.Research{}), "thesis", "Mro").Find(&research).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(research) != 0 {
		t.Errorf("expected empty result, got %d rows", len(research))
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestApprovedOnlyScopeOnDocumentaries(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `documentaries` WHERE status = \\?"),
			args:    []driver.Value{utils.StatusApproved},
			columns: []string{"documentary_id", "title", "status"},
			rows: [][]driver.Value{
				{int64(3), "River Lives", utils.StatusApproved},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	var documentaries []models.Documentary
	if err := ApprovedOnly(db.Model(&models.Documentary{})).Find(&documentaries).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(documentaries) != 1 || documentaries[0].Title != "River Lives" {
		t.Errorf("unexpected result set: %+v", documentaries)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestResearchCountsAreCachedBetweenReads(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT community, COUNT\\(\\*\\) AS total FROM `research` WHERE status = \\?"),
			args:    []driver.Value{utils.StatusApproved},
			columns: []string{"community", "total"},
			rows: [][]driver.Value{
				{"Mro", int64(4)},
				{"Khumi", int64(1)},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	previous := config.DB
	config.DB = db
	defer func() { config.DB = previous }()

	ClearCommunityCountCache()
	defer ClearCommunityCountCache()

	count, err := ResearchCountForCommunity("Mro")
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}

	// Second read within the TTL must come from the cache; the script has no
	// second SELECT to serve.
	counts, err := ResearchCountsByCommunity()
	if err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if counts["Khumi"] != 1 {
		t.Errorf("cached count = %d, want 1", counts["Khumi"])
	}
	if counts["Unknown"] != 0 {
		t.Errorf("unknown community should count zero")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
