package services

import (
	"mysteriogame/model"
	"sort"
	"strings"
)

// RankUsers builds the leaderboard ordering: admins (matched by email or
// username, case-insensitive) and profiles that never claimed a username are
// excluded, the rest are sorted by completedTasks descending. Ties keep the
// order of the input snapshot.
func RankUsers(users []model.User, admins []string) []model.User {
	excluded := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		excluded[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}

	ranked := make([]model.User, 0, len(users))
	for _, u := range users {
		if _, ok := excluded[strings.ToLower(u.Email)]; ok {
			continue
		}
		if _, ok := excluded[strings.ToLower(u.Username)]; ok {
			continue
		}
		if u.Username == "" {
			continue
		}
		ranked = append(ranked, u)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompletedTasks > ranked[j].CompletedTasks
	})
	return ranked
}
