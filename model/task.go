package model

import (
	"time"
)

const (
	TaskStatusActive             = "active"
	TaskStatusWaitingForApproval = "waiting_for_approval"
	TaskStatusCompleted          = "completed"
)

type Task struct {
	TaskID              string    `firestore:"taskid,omitempty"`
	Heading             string    `firestore:"heading,omitempty"`
	Text                string    `firestore:"text,omitempty"`
	Season              string    `firestore:"season,omitempty"` // "Season 1", "Season 2"
	VerificationCode    string    `firestore:"verificationCode,omitempty"`
	PictureRequired     bool      `firestore:"pictureRequired"`
	Status              string    `firestore:"status,omitempty"`
	ApprovalSentBy      string    `firestore:"approvalSentBy"` // username, set only while waiting_for_approval
	CompletedBy         string    `firestore:"completedBy,omitempty"`
	CompletedByUsername string    `firestore:"completedByUsername,omitempty"`
	CompletedAt         time.Time `firestore:"completedAt,omitempty"`
	CreatedAt           time.Time `firestore:"createdat,omitempty"`
}
