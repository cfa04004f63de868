package services

import (
	"mysteriogame/model"
	"testing"
)

func TestRankUsers_SortsDescending(t *testing.T) {
	users := []model.User{
		{Email: "a@example.com", Username: "alpha", CompletedTasks: 2},
		{Email: "b@example.com", Username: "bravo", CompletedTasks: 7},
		{Email: "c@example.com", Username: "charlie", CompletedTasks: 4},
	}

	ranked := RankUsers(users, []string{"admin@mysterio.com"})
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	want := []string{"bravo", "charlie", "alpha"}
	for i, name := range want {
		if ranked[i].Username != name {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Username, name)
		}
	}
}

func TestRankUsers_ExcludesAdminsAndUnnamed(t *testing.T) {
	users := []model.User{
		{Email: "admin@mysterio.com", Username: "mysterio", CompletedTasks: 99},
		{Email: "x@example.com", Username: "", CompletedTasks: 3},
		{Email: "y@example.com", Username: "player", CompletedTasks: 1},
		{Email: "z@example.com", Username: "GameMaster", CompletedTasks: 5},
	}

	ranked := RankUsers(users, []string{"Admin@Mysterio.com", "gamemaster"})
	if len(ranked) != 1 {
		t.Fatalf("len = %d, want 1 (%+v)", len(ranked), ranked)
	}
	if ranked[0].Username != "player" {
		t.Errorf("ranked[0] = %q, want player", ranked[0].Username)
	}
}

func TestRankUsers_TiesKeepInputOrder(t *testing.T) {
	users := []model.User{
		{Email: "a@example.com", Username: "first", CompletedTasks: 3},
		{Email: "b@example.com", Username: "second", CompletedTasks: 3},
		{Email: "c@example.com", Username: "third", CompletedTasks: 3},
	}

	ranked := RankUsers(users, nil)
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if ranked[i].Username != name {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Username, name)
		}
	}
}

func TestRankUsers_EmptyInput(t *testing.T) {
	ranked := RankUsers(nil, []string{"admin@mysterio.com"})
	if len(ranked) != 0 {
		t.Errorf("len = %d, want 0", len(ranked))
	}
}
