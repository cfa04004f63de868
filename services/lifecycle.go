package services

import (
	"mysteriogame/model"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Actor is the authenticated principal a transition runs on behalf of.
type Actor struct {
	UID      string
	Email    string
	Username string
	IsAdmin  bool
}

// CodeMatches compares a submitted verification code against the task's code,
// ignoring case and surrounding whitespace.
func CodeMatches(want, got string) bool {
	return strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(got))
}

// SubmitCode completes a code-verified task in place. The caller persists the
// task and the submitter's counter in the same transaction; a task that is no
// longer active is rejected so a retry can never increment twice.
func SubmitCode(task *model.Task, actor Actor, code string, now time.Time) error {
	if actor.IsAdmin {
		return errors.Wrap(ErrAuthorization, "admins do not complete tasks")
	}
	if actor.Username == "" {
		return errors.Wrap(ErrValidation, "set a username before submitting tasks")
	}
	if task.PictureRequired {
		return errors.Wrap(ErrValidation, "task requires a photo submission, not a code")
	}
	if task.Status != model.TaskStatusActive {
		return errors.Wrap(ErrConflict, "task is not active")
	}
	if !CodeMatches(task.VerificationCode, code) {
		return errors.Wrap(ErrValidation, "incorrect verification code")
	}

	task.Status = model.TaskStatusCompleted
	task.CompletedBy = actor.UID
	task.CompletedByUsername = actor.Username
	task.CompletedAt = now
	return nil
}

// RequestApproval moves a picture task to waiting_for_approval. The confirmed
// flag is the submitter's acknowledgement that the photo was sent out of band.
func RequestApproval(task *model.Task, actor Actor, confirmed bool) error {
	if actor.IsAdmin {
		return errors.Wrap(ErrAuthorization, "admins do not complete tasks")
	}
	if actor.Username == "" {
		return errors.Wrap(ErrValidation, "set a username before submitting tasks")
	}
	if !task.PictureRequired {
		return errors.Wrap(ErrValidation, "task is verified by code, not by photo")
	}
	if !confirmed {
		return errors.Wrap(ErrValidation, "photo submission must be confirmed")
	}
	if task.Status != model.TaskStatusActive {
		return errors.Wrap(ErrConflict, "task is not active")
	}

	task.Status = model.TaskStatusWaitingForApproval
	task.ApprovalSentBy = actor.Username
	return nil
}

// Approve completes a waiting task on behalf of the resolved submitter.
// submitter is the profile looked up from task.ApprovalSentBy; passing nil
// reports the failed lookup as NotFound without touching the task.
func Approve(task *model.Task, actor Actor, submitter *model.User, now time.Time) error {
	if !actor.IsAdmin {
		return errors.Wrap(ErrAuthorization, "only the admin can approve submissions")
	}
	if task.Status != model.TaskStatusWaitingForApproval {
		return errors.Wrap(ErrConflict, "task is not waiting for approval")
	}
	if submitter == nil {
		return errors.Wrap(ErrNotFound, "no profile matches the submitter username")
	}

	task.Status = model.TaskStatusCompleted
	task.ApprovalSentBy = ""
	task.CompletedBy = submitter.UserID
	task.CompletedByUsername = submitter.Username
	task.CompletedAt = now
	return nil
}

// Reject returns a waiting task to the active state.
func Reject(task *model.Task, actor Actor) error {
	if !actor.IsAdmin {
		return errors.Wrap(ErrAuthorization, "only the admin can reject submissions")
	}
	if task.Status != model.TaskStatusWaitingForApproval {
		return errors.Wrap(ErrConflict, "task is not waiting for approval")
	}

	task.Status = model.TaskStatusActive
	task.ApprovalSentBy = ""
	return nil
}
