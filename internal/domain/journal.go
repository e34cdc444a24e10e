package domain

import (
	"time"

	"github.com/google/uuid"
)

// Journal is an owner's collection of questions.
type Journal struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	CreatedAt time.Time
}

// Question belongs to a journal; DisplayOrder is unique within the journal.
type Question struct {
	ID           uuid.UUID
	JournalID    uuid.UUID
	Text         string
	Source       QuestionSource
	DisplayOrder int
	CreatedAt    time.Time
}

// StatusCounts is a per-status tally of assignments.
type StatusCounts struct {
	Pending  int
	Sent     int
	Viewed   int
	Answered int
}

// Total returns the number of assignments counted.
func (c StatusCounts) Total() int {
	return c.Pending + c.Sent + c.Viewed + c.Answered
}

// QuestionProgress is a question with its assignment tallies.
type QuestionProgress struct {
	Question Question
	Counts   StatusCounts
}

// JournalOverview is the read view of a journal and its progress.
type JournalOverview struct {
	Journal   Journal
	Questions []QuestionProgress
	Totals    StatusCounts
}

// Progress returns the answered fraction across all assignments, in [0, 1].
func (o *JournalOverview) Progress() float64 {
	total := o.Totals.Total()
	if total == 0 {
		return 0
	}
	return float64(o.Totals.Answered) / float64(total)
}
