package dto

type CreateTaskRequest struct {
	Heading          string `json:"heading" binding:"required"`
	Text             string `json:"text" binding:"required"`
	Season           string `json:"season" binding:"required"`
	VerificationCode string `json:"verificationCode"`
	PictureRequired  bool   `json:"pictureRequired"`
}

type VerifyTaskRequest struct {
	Code string `json:"code" binding:"required"`
}

type RequestApprovalRequest struct {
	// The client must acknowledge that the photo was sent out of band
	// before the task can move to waiting_for_approval.
	Confirmed bool `json:"confirmed"`
}

type TaskResponse struct {
	TaskID              string `json:"id"`
	Heading             string `json:"heading"`
	Text                string `json:"text"`
	Season              string `json:"season"`
	VerificationCode    string `json:"verificationCode,omitempty"` // admin reads only
	PictureRequired     bool   `json:"pictureRequired"`
	Status              string `json:"status"`
	ApprovalSentBy      string `json:"approvalSentBy,omitempty"`
	CompletedBy         string `json:"completedBy,omitempty"`
	CompletedByUsername string `json:"completedByUsername,omitempty"`
	CompletedAt         string `json:"completedAt,omitempty"`
}
