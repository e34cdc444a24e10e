package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "owner-" + suffix + "@example.com",
		Name:         "Owner " + suffix,
		PasswordHash: "$2a$04$seedseedseedseedseedseedseedseedseedseedseedseedseedse",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPerson creates a person owned by ownerID with both email and phone set.
func SeedPerson(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Person {
	t.Helper()

	suffix := uniqueSuffix()
	email := "person-" + suffix + "@example.com"
	phone := "+1555" + suffix[:6]
	person := domain.Person{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Person " + suffix,
		Email:     &email,
		Phone:     &phone,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO people (id, owner_id, name, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		person.ID, person.OwnerID, person.Name, person.Email, person.Phone, person.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPerson: %v", err)
	}

	return person
}

// SeedJournal creates a journal owned by ownerID.
func SeedJournal(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Journal {
	t.Helper()

	journal := domain.Journal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Journal " + uniqueSuffix(),
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO journals (id, owner_id, title, created_at) VALUES ($1, $2, $3, $4)`,
		journal.ID, journal.OwnerID, journal.Title, journal.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournal: %v", err)
	}

	return journal
}

// SeedQuestion appends a custom question to the journal at the given display order.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, journalID uuid.UUID, order int) domain.Question {
	t.Helper()

	q := domain.Question{
		ID:           uuid.New(),
		JournalID:    journalID,
		Text:         "What do you remember about " + uniqueSuffix() + "?",
		Source:       domain.QuestionSourceCustom,
		DisplayOrder: order,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO questions (id, journal_id, text, source, display_order, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		q.ID, q.JournalID, q.Text, string(q.Source), q.DisplayOrder, q.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}

	return q
}

// SeedAssignment creates an assignment with the given status. Timestamps
// implied by the status are set to now.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, questionID, personID uuid.UUID, status domain.AssignmentStatus) domain.Assignment {
	t.Helper()

	ts := now()
	a := domain.Assignment{
		ID:         uuid.New(),
		QuestionID: questionID,
		PersonID:   personID,
		LinkToken:  "tok-" + uuid.New().String(),
		Status:     status,
		CreatedAt:  ts,
	}
	if status.Rank() >= domain.AssignmentStatusSent.Rank() {
		a.SentAt = &ts
	}
	if status.Rank() >= domain.AssignmentStatusViewed.Rank() {
		a.ViewedAt = &ts
	}
	if status == domain.AssignmentStatusAnswered {
		a.AnsweredAt = &ts
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO assignments (id, question_id, person_id, link_token, status, sent_at, viewed_at, answered_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.QuestionID, a.PersonID, a.LinkToken, string(a.Status), a.SentAt, a.ViewedAt, a.AnsweredAt, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssignment: %v", err)
	}

	return a
}

// Fixture is a fully linked owner/person/journal/question/assignment graph.
type Fixture struct {
	Owner      domain.User
	Person     domain.Person
	Journal    domain.Journal
	Question   domain.Question
	Assignment domain.Assignment
}

// SeedFixture seeds a complete graph with an assignment in the given status.
func SeedFixture(t *testing.T, pool *pgxpool.Pool, status domain.AssignmentStatus) Fixture {
	t.Helper()

	owner := SeedUser(t, pool)
	person := SeedPerson(t, pool, owner.ID)
	journal := SeedJournal(t, pool, owner.ID)
	question := SeedQuestion(t, pool, journal.ID, 0)
	assignment := SeedAssignment(t, pool, question.ID, person.ID, status)

	return Fixture{
		Owner:      owner,
		Person:     person,
		Journal:    journal,
		Question:   question,
		Assignment: assignment,
	}
}
