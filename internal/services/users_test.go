package services

import (
	"fmt"
	"testing"
)

func TestUserListPagination(t *testing.T) {
	gdb := newTestDB(t)
	s := NewUserService(gdb)

	for i := 0; i < 12; i++ {
		createTestUser(t, gdb, fmt.Sprintf("user%02d", i))
	}

	all, total, err := s.List(nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 12 || total != 12 {
		t.Errorf("List(nil) = %d rows, total %d; want 12, 12", len(all), total)
	}

	page, total, err := s.List(&Page{Number: 2, Size: 5})
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("page 2 rows = %d, want 2", len(page))
	}
	if total != 12 {
		t.Errorf("totalData = %d, want 12", total)
	}

	for _, u := range all {
		if u.ID == 0 || u.Name == "" {
			t.Errorf("incomplete row: %+v", u)
		}
	}
}
