package wizard

import (
	"sort"
	"wellness-wizard/internal/app/models"
)

type LedgerEntry struct {
	OptionIndex int
	OptionText  string
	Score       int
	// Pending is set until the backend has acknowledged this value.
	Pending bool
}

// AnswerLedger holds at most one answer per question id. It is not safe for
// concurrent use; the controller serializes access.
type AnswerLedger struct {
	entries map[int]LedgerEntry
}

func NewAnswerLedger() *AnswerLedger {
	return &AnswerLedger{entries: make(map[int]LedgerEntry)}
}

// Upsert records the answer for questionID, replacing any earlier one.
func (l *AnswerLedger) Upsert(questionID int, entry LedgerEntry) {
	l.entries[questionID] = entry
}

func (l *AnswerLedger) Get(questionID int) (LedgerEntry, bool) {
	entry, ok := l.entries[questionID]
	return entry, ok
}

func (l *AnswerLedger) Len() int {
	return len(l.entries)
}

// MarkSynced clears the pending flag if the stored value still matches entry.
func (l *AnswerLedger) MarkSynced(questionID int, entry LedgerEntry) {
	current, ok := l.entries[questionID]
	if !ok || current.OptionIndex != entry.OptionIndex {
		return
	}
	current.Pending = false
	l.entries[questionID] = current
}

func (l *AnswerLedger) PendingCount() int {
	count := 0
	for _, entry := range l.entries {
		if entry.Pending {
			count++
		}
	}
	return count
}

// Entries returns every answer ordered by question id.
func (l *AnswerLedger) Entries() []models.Answer {
	answers := make([]models.Answer, 0, len(l.entries))
	for questionID, entry := range l.entries {
		answers = append(answers, entry.answer(questionID))
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].QuestionID < answers[j].QuestionID })
	return answers
}

// Pending returns the answers the backend has not acknowledged.
func (l *AnswerLedger) Pending() []models.Answer {
	var answers []models.Answer
	for _, answer := range l.Entries() {
		if l.entries[answer.QuestionID].Pending {
			answers = append(answers, answer)
		}
	}
	return answers
}

func (e LedgerEntry) answer(questionID int) models.Answer {
	return models.Answer{
		QuestionID:  questionID,
		OptionIndex: e.OptionIndex,
		OptionText:  e.OptionText,
		Score:       e.Score,
	}
}
