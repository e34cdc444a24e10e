package notify

import (
	"fmt"
	"strings"
)

const previewLen = 120

func preview(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen-1]) + "…"
}

func senderOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Someone"
	}
	return name
}

func renderInvitationSMS(inv Invitation, link string) string {
	sender := senderOrDefault(inv.SenderName)
	if inv.Kind == InvitationReminder {
		return fmt.Sprintf("Reminder: %s would love to hear your answer to %q. Record it here: %s",
			sender, preview(inv.QuestionText), link)
	}
	return fmt.Sprintf("%s asked you a question for their memoir: %q. Record your answer here: %s",
		sender, preview(inv.QuestionText), link)
}

func renderInvitationEmail(inv Invitation, personName, link string) (subject, text string) {
	sender := senderOrDefault(inv.SenderName)
	greeting := "Hi,"
	if personName != "" {
		greeting = "Hi " + personName + ","
	}

	if inv.Kind == InvitationReminder {
		subject = fmt.Sprintf("Reminder: %s is waiting for your story", sender)
	} else {
		subject = fmt.Sprintf("%s has a question for you", sender)
	}

	text = fmt.Sprintf("%s\n\n%s would like you to answer this question in your own voice:\n\n  %s\n\nOpen the link below to record your answer. No account is needed.\n\n%s\n",
		greeting, sender, inv.QuestionText, link)
	return subject, text
}

func renderAnswered(ev AnsweredEvent) (title, body string) {
	name := ev.PersonName
	if name == "" {
		name = "Someone"
	}
	return fmt.Sprintf("%s answered your question", name), preview(ev.QuestionText)
}

func renderAnsweredEmail(ev AnsweredEvent) (subject, text string) {
	title, _ := renderAnswered(ev)
	text = fmt.Sprintf("%s:\n\n  %s\n\nOpen the app to listen to the recording.\n", title, ev.QuestionText)
	return title, text
}

func renderViewed(ev ViewedEvent) (title, body string) {
	name := ev.PersonName
	if name == "" {
		name = "Someone"
	}
	return fmt.Sprintf("%s opened your question", name), preview(ev.QuestionText)
}
