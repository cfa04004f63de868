package model

import (
	"time"
)

const (
	HasPasswordEmail   = "Email/Password" // account created with an email/password credential
	HasPasswordPending = "0"              // federated account, password not set yet
	HasPasswordSet     = "1"              // password established via set-password
)

type User struct {
	UserID         string    `firestore:"userid,omitempty"`
	Email          string    `firestore:"email,omitempty"`
	Password       string    `firestore:"password,omitempty"`
	Username       string    `firestore:"username"`
	UsernameLower  string    `firestore:"usernameLower"` // normalized projection for uniqueness checks
	CompletedTasks int64     `firestore:"completedTasks"`
	HasPassword    string    `firestore:"hasPassword,omitempty"`
	CreatedAt      time.Time `firestore:"createdat,omitempty"`
}
