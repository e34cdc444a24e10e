package rest

import (
	"context"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/journal"
	"sync"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	CreateJournalFunc    func(ctx context.Context, input journal.CreateJournalInput) (*domain.Journal, error)
	ListJournalsFunc     func(ctx context.Context) ([]domain.Journal, error)
	GetOverviewFunc      func(ctx context.Context, input journal.GetOverviewInput) (*domain.JournalOverview, error)
	AddQuestionFunc      func(ctx context.Context, input journal.AddQuestionInput) (*domain.Question, error)
	ReorderQuestionsFunc func(ctx context.Context, input journal.ReorderQuestionsInput) ([]domain.Question, error)
	DeleteQuestionFunc   func(ctx context.Context, input journal.DeleteQuestionInput) error

	calls struct {
		CreateJournal []struct {
			Ctx   context.Context
			Input journal.CreateJournalInput
		}
		ListJournals []struct {
			Ctx context.Context
		}
		GetOverview []struct {
			Ctx   context.Context
			Input journal.GetOverviewInput
		}
		AddQuestion []struct {
			Ctx   context.Context
			Input journal.AddQuestionInput
		}
		ReorderQuestions []struct {
			Ctx   context.Context
			Input journal.ReorderQuestionsInput
		}
		DeleteQuestion []struct {
			Ctx   context.Context
			Input journal.DeleteQuestionInput
		}
	}
	lockCreateJournal    sync.RWMutex
	lockListJournals     sync.RWMutex
	lockGetOverview      sync.RWMutex
	lockAddQuestion      sync.RWMutex
	lockReorderQuestions sync.RWMutex
	lockDeleteQuestion   sync.RWMutex
}

func (mock *journalServiceMock) CreateJournal(ctx context.Context, input journal.CreateJournalInput) (*domain.Journal, error) {
	if mock.CreateJournalFunc == nil {
		panic("journalServiceMock.CreateJournalFunc: method is nil but journalService.CreateJournal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.CreateJournalInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateJournal.Lock()
	mock.calls.CreateJournal = append(mock.calls.CreateJournal, callInfo)
	mock.lockCreateJournal.Unlock()
	return mock.CreateJournalFunc(ctx, input)
}

func (mock *journalServiceMock) CreateJournalCalls() []struct {
	Ctx   context.Context
	Input journal.CreateJournalInput
} {
	mock.lockCreateJournal.RLock()
	calls := mock.calls.CreateJournal
	mock.lockCreateJournal.RUnlock()
	return calls
}

func (mock *journalServiceMock) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	if mock.ListJournalsFunc == nil {
		panic("journalServiceMock.ListJournalsFunc: method is nil but journalService.ListJournals was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListJournals.Lock()
	mock.calls.ListJournals = append(mock.calls.ListJournals, callInfo)
	mock.lockListJournals.Unlock()
	return mock.ListJournalsFunc(ctx)
}

func (mock *journalServiceMock) ListJournalsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListJournals.RLock()
	calls := mock.calls.ListJournals
	mock.lockListJournals.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetOverview(ctx context.Context, input journal.GetOverviewInput) (*domain.JournalOverview, error) {
	if mock.GetOverviewFunc == nil {
		panic("journalServiceMock.GetOverviewFunc: method is nil but journalService.GetOverview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.GetOverviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetOverview.Lock()
	mock.calls.GetOverview = append(mock.calls.GetOverview, callInfo)
	mock.lockGetOverview.Unlock()
	return mock.GetOverviewFunc(ctx, input)
}

func (mock *journalServiceMock) GetOverviewCalls() []struct {
	Ctx   context.Context
	Input journal.GetOverviewInput
} {
	mock.lockGetOverview.RLock()
	calls := mock.calls.GetOverview
	mock.lockGetOverview.RUnlock()
	return calls
}

func (mock *journalServiceMock) AddQuestion(ctx context.Context, input journal.AddQuestionInput) (*domain.Question, error) {
	if mock.AddQuestionFunc == nil {
		panic("journalServiceMock.AddQuestionFunc: method is nil but journalService.AddQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.AddQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddQuestion.Lock()
	mock.calls.AddQuestion = append(mock.calls.AddQuestion, callInfo)
	mock.lockAddQuestion.Unlock()
	return mock.AddQuestionFunc(ctx, input)
}

func (mock *journalServiceMock) AddQuestionCalls() []struct {
	Ctx   context.Context
	Input journal.AddQuestionInput
} {
	mock.lockAddQuestion.RLock()
	calls := mock.calls.AddQuestion
	mock.lockAddQuestion.RUnlock()
	return calls
}

func (mock *journalServiceMock) ReorderQuestions(ctx context.Context, input journal.ReorderQuestionsInput) ([]domain.Question, error) {
	if mock.ReorderQuestionsFunc == nil {
		panic("journalServiceMock.ReorderQuestionsFunc: method is nil but journalService.ReorderQuestions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.ReorderQuestionsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReorderQuestions.Lock()
	mock.calls.ReorderQuestions = append(mock.calls.ReorderQuestions, callInfo)
	mock.lockReorderQuestions.Unlock()
	return mock.ReorderQuestionsFunc(ctx, input)
}

func (mock *journalServiceMock) ReorderQuestionsCalls() []struct {
	Ctx   context.Context
	Input journal.ReorderQuestionsInput
} {
	mock.lockReorderQuestions.RLock()
	calls := mock.calls.ReorderQuestions
	mock.lockReorderQuestions.RUnlock()
	return calls
}

func (mock *journalServiceMock) DeleteQuestion(ctx context.Context, input journal.DeleteQuestionInput) error {
	if mock.DeleteQuestionFunc == nil {
		panic("journalServiceMock.DeleteQuestionFunc: method is nil but journalService.DeleteQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.DeleteQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteQuestion.Lock()
	mock.calls.DeleteQuestion = append(mock.calls.DeleteQuestion, callInfo)
	mock.lockDeleteQuestion.Unlock()
	return mock.DeleteQuestionFunc(ctx, input)
}

func (mock *journalServiceMock) DeleteQuestionCalls() []struct {
	Ctx   context.Context
	Input journal.DeleteQuestionInput
} {
	mock.lockDeleteQuestion.RLock()
	calls := mock.calls.DeleteQuestion
	mock.lockDeleteQuestion.RUnlock()
	return calls
}
