package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier posts fire-and-forget messages to a Discord webhook. A missing URL
// disables it; delivery failures are logged and never reach the caller.
type Notifier struct {
	webhookURL string
	client     *http.Client
	log        *zap.Logger
}

func NewNotifier(webhookURL string, log *zap.Logger) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

func (n *Notifier) Send(message string) {
	if n.webhookURL == "" {
		return
	}
	payload, err := json.Marshal(map[string]string{"content": message})
	if err != nil {
		n.log.Error("notifier payload marshal failed", zap.Error(err))
		return
	}
	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		n.log.Error("notifier webhook post failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.log.Error("notifier webhook rejected", zap.Int("status", resp.StatusCode))
	}
}

func (n *Notifier) SendAsync(message string) {
	go n.Send(message)
}

const messageDivider = "━━━━━━━━━━━━━━━━━━━━━━━"

func formatClock(t time.Time) string { return t.Format("3:04 PM") }
func formatDate(t time.Time) string  { return t.Format("1/2/2006") }

func AccountCreatedMessage(email, method string, now time.Time) string {
	return fmt.Sprintf(`🎉 **New Account Created**
%s
📧 **Email**: %s
🔑 **Signup Method**: %s

📅 **Date Created**: %s
🕒 **Time Created**: %s
%s`, messageDivider, email, method, formatDate(now), formatClock(now), messageDivider)
}

func UserLoginMessage(email string, now time.Time) string {
	return fmt.Sprintf(`🔓 **User Login**
%s
📧 **Email**: %s
📅 **Date**: %s
🕒 **Time**: %s
%s`, messageDivider, email, formatDate(now), formatClock(now), messageDivider)
}

func TaskCompletedMessage(heading, username string, now time.Time) string {
	return fmt.Sprintf(`✅ **Task Completed**
%s
📝 **Task**: %s
👤 **Completed By**: %s
📅 **Date**: %s
🕒 **Time**: %s
%s`, messageDivider, heading, username, formatDate(now), formatClock(now), messageDivider)
}

func ApprovalSubmittedMessage(heading, username string, now time.Time) string {
	return fmt.Sprintf(`📸 **Approval Submitted**
%s
📝 **Task**: %s
👤 **Submitted By**: %s
📅 **Date**: %s
🕒 **Time**: %s
%s`, messageDivider, heading, username, formatDate(now), formatClock(now), messageDivider)
}

func SupportRequestMessage(category, heading, problem, contact string, now time.Time) string {
	return fmt.Sprintf("📌 **Support Request Received**\n%s\n🗂 **Category**\n%s\n\n📝 **Heading**\n%s\n\n💬 **Problem Description**\n```\n%s\n```\n\n📞 **Contact Information**\n%s\n\n🕒 **Time Submitted**\n%s\n\n📅 **Date Submitted**\n%s\n%s",
		messageDivider, category, heading, problem, contact, formatClock(now), formatDate(now), messageDivider)
}
