package storage

import (
	"path/filepath"
	"testing"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/style"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "styles.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testStyle(id string) style.Style {
	return style.Style{
		ID:          id,
		Name:        id,
		DisplayName: "Test " + id,
		Sort:        style.SortConfig{Mode: style.SortCitationOrder},
		AuthorRules: author.Rules{EtAlAfter: 3, Delimiter: ", ", FinalDelimiter: " & "},
		Template:    "{authors} {journal} {year}",
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	db := openTestDB(t)

	want := testStyle("lab")
	if err := db.Put(want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := db.Get("lab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for stored style")
	}
	if got.ID != want.ID || got.AuthorRules.EtAlAfter != 3 || got.Template != want.Template {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)

	got, err := db.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get(nope) = %+v, want nil", got)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	db := openTestDB(t)

	s := testStyle("lab")
	if err := db.Put(s); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.DisplayName = "Renamed"
	if err := db.Put(s); err != nil {
		t.Fatalf("Put update: %v", err)
	}

	got, err := db.Get("lab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DisplayName != "Renamed" {
		t.Errorf("DisplayName = %q, want Renamed", got.DisplayName)
	}

	styles, err := db.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(styles) != 1 {
		t.Errorf("List returned %d styles, want 1", len(styles))
	}
}

func TestListOrdered(t *testing.T) {
	db := openTestDB(t)

	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := db.Put(testStyle(id)); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}

	styles, err := db.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(styles) != len(want) {
		t.Fatalf("List returned %d styles, want %d", len(styles), len(want))
	}
	for i, id := range want {
		if styles[i].ID != id {
			t.Errorf("List[%d] = %q, want %q", i, styles[i].ID, id)
		}
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)

	if err := db.Put(testStyle("lab")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := db.Delete("lab"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := db.Get("lab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("style still present after Delete")
	}

	// deleting a missing id is fine
	if err := db.Delete("ghost"); err != nil {
		t.Errorf("Delete(ghost): %v", err)
	}
}

func TestDBSatisfiesUserStore(t *testing.T) {
	var _ style.UserStore = openTestDB(t)
}

func TestRegistryWithSQLiteStore(t *testing.T) {
	db := openTestDB(t)

	custom := testStyle("nature") // overrides the catalog entry
	custom.DisplayName = "Nature (house rules)"
	if err := db.Put(custom); err != nil {
		t.Fatalf("Put: %v", err)
	}

	r := style.NewRegistry(db)
	if got := r.Resolve("nature"); got.DisplayName != "Nature (house rules)" {
		t.Errorf("Resolve(nature) = %q, want user override", got.DisplayName)
	}
	if got := r.Resolve("apa"); got.DisplayName != "APA 7th" {
		t.Errorf("Resolve(apa) = %q, want catalog entry", got.DisplayName)
	}
}
