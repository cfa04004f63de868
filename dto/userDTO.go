package dto

type SetUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type UserResponse struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	CompletedTasks int64  `json:"completedTasks"`
	HasUsername    bool   `json:"hasUsername"`
	HasPassword    bool   `json:"hasPassword"`
	IsAdmin        bool   `json:"isAdmin"`
	CreatedAt      string `json:"created_at"`
}

type LeaderboardEntry struct {
	Username       string `json:"username"`
	CompletedTasks int64  `json:"completedTasks"`
}

type SupportRequest struct {
	Category string `json:"category" binding:"required"`
	Heading  string `json:"heading" binding:"required"`
	Problem  string `json:"problem" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
}
