package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

type personResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	LinkedUserID *uuid.UUID `json:"linked_user_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toPersonResponse(p *domain.Person) personResponse {
	return personResponse{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		LinkedUserID: p.LinkedUserID,
		CreatedAt:    p.CreatedAt,
	}
}

type journalResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func toJournalResponse(j *domain.Journal) journalResponse {
	return journalResponse{ID: j.ID, Title: j.Title, CreatedAt: j.CreatedAt}
}

type questionResponse struct {
	ID           uuid.UUID `json:"id"`
	JournalID    uuid.UUID `json:"journal_id"`
	Text         string    `json:"text"`
	Source       string    `json:"source"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func toQuestionResponse(q *domain.Question) questionResponse {
	return questionResponse{
		ID:           q.ID,
		JournalID:    q.JournalID,
		Text:         q.Text,
		Source:       q.Source.String(),
		DisplayOrder: q.DisplayOrder,
		CreatedAt:    q.CreatedAt,
	}
}

type statusCountsResponse struct {
	Pending  int `json:"pending"`
	Sent     int `json:"sent"`
	Viewed   int `json:"viewed"`
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

func toStatusCounts(c domain.StatusCounts) statusCountsResponse {
	return statusCountsResponse{
		Pending:  c.Pending,
		Sent:     c.Sent,
		Viewed:   c.Viewed,
		Answered: c.Answered,
		Total:    c.Total(),
	}
}

type questionProgressResponse struct {
	questionResponse
	Counts statusCountsResponse `json:"counts"`
}

type overviewResponse struct {
	Journal   journalResponse            `json:"journal"`
	Questions []questionProgressResponse `json:"questions"`
	Totals    statusCountsResponse       `json:"totals"`
	Progress  float64                    `json:"progress"`
}

func toOverviewResponse(o *domain.JournalOverview) overviewResponse {
	resp := overviewResponse{
		Journal:   toJournalResponse(&o.Journal),
		Questions: make([]questionProgressResponse, 0, len(o.Questions)),
		Totals:    toStatusCounts(o.Totals),
		Progress:  o.Progress(),
	}
	for i := range o.Questions {
		resp.Questions = append(resp.Questions, questionProgressResponse{
			questionResponse: toQuestionResponse(&o.Questions[i].Question),
			Counts:           toStatusCounts(o.Questions[i].Counts),
		})
	}
	return resp
}

type assignmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	QuestionID     uuid.UUID  `json:"question_id"`
	PersonID       uuid.UUID  `json:"person_id"`
	LinkToken      string     `json:"link_token"`
	Status         string     `json:"status"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	ViewedAt       *time.Time `json:"viewed_at,omitempty"`
	AnsweredAt     *time.Time `json:"answered_at,omitempty"`
	ReminderCount  int        `json:"reminder_count"`
	LastReminderAt *time.Time `json:"last_reminder_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toAssignmentResponse(a *domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		PersonID:       a.PersonID,
		LinkToken:      a.LinkToken,
		Status:         a.Status.String(),
		SentAt:         a.SentAt,
		ViewedAt:       a.ViewedAt,
		AnsweredAt:     a.AnsweredAt,
		ReminderCount:  a.ReminderCount,
		LastReminderAt: a.LastReminderAt,
		CreatedAt:      a.CreatedAt,
	}
}

type recordingResponse struct {
	ID              uuid.UUID `json:"id"`
	ContentType     string    `json:"content_type"`
	SizeBytes       int64     `json:"size_bytes"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	RecordedAt      time.Time `json:"recorded_at"`
	URL             string    `json:"url,omitempty"`
}

func toRecordingResponse(rec *domain.Recording, url string) recordingResponse {
	return recordingResponse{
		ID:              rec.ID,
		ContentType:     rec.ContentType,
		SizeBytes:       rec.SizeBytes,
		DurationSeconds: rec.DurationSeconds,
		RecordedAt:      rec.RecordedAt,
		URL:             url,
	}
}

type notificationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	AssignmentID *uuid.UUID `json:"assignment_id,omitempty"`
	RecordingID  *uuid.UUID `json:"recording_id,omitempty"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Read         bool       `json:"read"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:           n.ID,
		Type:         n.Type.String(),
		AssignmentID: n.AssignmentID,
		RecordingID:  n.RecordingID,
		Title:        n.Title,
		Body:         n.Body,
		Read:         n.IsRead(),
		ReadAt:       n.ReadAt,
		CreatedAt:    n.CreatedAt,
	}
}

type deviceResponse struct {
	Token     string    `json:"token"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

func toDeviceResponse(d *domain.DeviceToken) deviceResponse {
	return deviceResponse{Token: d.Token, Platform: d.Platform.String(), CreatedAt: d.CreatedAt}
}
