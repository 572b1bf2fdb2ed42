package transfer

import (
	"testing"

	"clocktransfer/clockify"
)

func TestFindProjectByName(t *testing.T) {
	t.Parallel()

	projects := []clockify.Project{
		{ID: "p-1", Name: "Alpha"},
		{ID: "p-2", Name: "alpha"},
		{ID: "p-3", Name: "Alpha"},
	}

	cases := []struct {
		name   string
		lookup string
		wantID string
		found  bool
	}{
		{name: "exact match returns first hit", lookup: "Alpha", wantID: "p-1", found: true},
		{name: "case sensitive", lookup: "alpha", wantID: "p-2", found: true},
		{name: "no partial match", lookup: "Alp", found: false},
		{name: "no trimming", lookup: "Alpha ", found: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			project, found := FindProjectByName(projects, tc.lookup)
			if found != tc.found {
				t.Fatalf("found=%v, want %v", found, tc.found)
			}
			if found && project.ID != tc.wantID {
				t.Fatalf("id=%s, want %s", project.ID, tc.wantID)
			}
		})
	}
}
