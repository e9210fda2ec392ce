package importer

import (
	"testing"
)

var instructorTable = Table{
	Name: "instructors",
	Columns: []Column{
		{Name: "name", Kind: KindText},
		{Name: "specialty", Kind: KindText},
	},
	Key: []string{"name", "specialty"},
}

func TestDedupeKeepsFirstOccurrenceInOrder(t *testing.T) {
	keyIdx, err := instructorTable.keyIndexes()
	if err != nil {
		t.Fatalf("keyIndexes: %v", err)
	}

	batch := []Row{
		{"Carla", "crossfit"},
		{"Bruno", "musculacao"},
		{"Carla", "crossfit"},
		{"Carla", "pilates"},
		{"Bruno", "musculacao"},
	}

	got := dedupe(batch, keyIdx)
	if len(got) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(got))
	}
	if got[0][0] != "Carla" || got[0][1] != "crossfit" {
		t.Errorf("expected first survivor Carla/crossfit, got %v", got[0])
	}
	if got[1][0] != "Bruno" {
		t.Errorf("expected Bruno second, got %v", got[1])
	}
	if got[2][1] != "pilates" {
		t.Errorf("expected Carla/pilates third, got %v", got[2])
	}
}

func TestDedupeDistinguishesNonIdenticalKeys(t *testing.T) {
	table := Table{
		Name: "workout_exercises",
		Columns: []Column{
			{Name: "workout_id", Kind: KindInt},
			{Name: "exercise_id", Kind: KindInt},
			{Name: "sets", Kind: KindInt},
			{Name: "reps", Kind: KindInt},
		},
		Key: []string{"workout_id", "exercise_id", "sets", "reps"},
	}
	keyIdx, err := table.keyIndexes()
	if err != nil {
		t.Fatalf("keyIndexes: %v", err)
	}

	// Same exercise with different sets/reps is a distinct row.
	batch := []Row{
		{int64(1), int64(2), int64(3), int64(10)},
		{int64(1), int64(2), int64(4), int64(10)},
		{int64(1), int64(2), int64(3), int64(10)},
	}
	got := dedupe(batch, keyIdx)
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(got))
	}
}

func TestKeyIndexesRejectsUnknownColumn(t *testing.T) {
	table := Table{
		Name:    "plans",
		Columns: []Column{{Name: "name", Kind: KindText}},
		Key:     []string{"price"},
	}
	if _, err := table.keyIndexes(); err == nil {
		t.Fatal("expected error for key column absent from column list")
	}
}

func TestInsertQueryTargetsNaturalKeyConflict(t *testing.T) {
	got := instructorTable.insertQuery()
	want := "INSERT INTO instructors (name, specialty) VALUES ($1, $2) " +
		"ON CONFLICT (name, specialty) DO NOTHING RETURNING id"
	if got != want {
		t.Errorf("unexpected insert query:\n got %s\nwant %s", got, want)
	}
}

func TestTableDefinitionsAreInternallyConsistent(t *testing.T) {
	for _, table := range Tables {
		if _, err := table.keyIndexes(); err != nil {
			t.Errorf("table %s: %v", table.Name, err)
		}
		if table.File == "" {
			t.Errorf("table %s: missing file name", table.Name)
		}
	}
}
