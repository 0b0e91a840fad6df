// Package memstore keeps every store Provider in memory. It is used by the
// handler and controller tests in place of postgres.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	dbmodels "skill-hire-backend/models/db"
)

type DB struct {
	mu   sync.RWMutex
	err  error
	tick int64
	base time.Time

	users       []dbmodels.User
	companies   []dbmodels.Company
	positions   []dbmodels.Position
	challenges  []dbmodels.Challenge
	questions   []dbmodels.Question
	submissions []dbmodels.Submission
	history     []dbmodels.SubmissionHistory
	reviews     []dbmodels.ResumeReview
}

func New() *DB {
	return &DB{
		base: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FailWith makes every following call return err, nil restores normal work.
func (d *DB) FailWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

func (d *DB) check(ctx context.Context) error {
	if d.err != nil {
		return d.err
	}
	return ctx.Err()
}

// now hands out strictly increasing timestamps so creation order is stable.
func (d *DB) now() time.Time {
	d.tick++
	return d.base.Add(time.Duration(d.tick) * time.Millisecond)
}

func (d *DB) newBase(base dbmodels.BaseModel) dbmodels.BaseModel {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	base.CreatedAt = d.now()
	base.UpdatedAt = base.CreatedAt
	return base
}

func (d *DB) user(id string) *dbmodels.User {
	for idx := range d.users {
		if d.users[idx].ID == id {
			rec := d.users[idx]
			return &rec
		}
	}
	return nil
}

func (d *DB) publicUser(id string) *dbmodels.User {
	rec := d.user(id)
	if rec != nil {
		rec.Password = ""
	}
	return rec
}

func (d *DB) company(id string) *dbmodels.Company {
	for idx := range d.companies {
		if d.companies[idx].ID == id {
			rec := d.companies[idx]
			return &rec
		}
	}
	return nil
}

func (d *DB) position(id string, withCompany, withChallenges bool) *dbmodels.Position {
	for idx := range d.positions {
		if d.positions[idx].ID == id {
			rec := d.withPositionRelations(d.positions[idx], withCompany, withChallenges)
			return &rec
		}
	}
	return nil
}

func (d *DB) withPositionRelations(rec dbmodels.Position, withCompany, withChallenges bool) dbmodels.Position {
	if withCompany {
		rec.Company = d.company(rec.CompanyID)
	}
	if withChallenges {
		rec.Challenges = []dbmodels.Challenge{}
		for _, challenge := range d.challenges {
			if challenge.PositionID == rec.ID {
				rec.Challenges = append(rec.Challenges, challenge)
			}
		}
	}
	return rec
}

func (d *DB) challenge(id string, withPosition, withQuestions bool) *dbmodels.Challenge {
	for idx := range d.challenges {
		if d.challenges[idx].ID == id {
			rec := d.withChallengeRelations(d.challenges[idx], withPosition, withQuestions)
			return &rec
		}
	}
	return nil
}

func (d *DB) withChallengeRelations(rec dbmodels.Challenge, withPosition, withQuestions bool) dbmodels.Challenge {
	if withPosition {
		rec.Position = d.position(rec.PositionID, false, false)
	}
	if withQuestions {
		rec.Questions = d.questionsOf(rec.ID)
	}
	return rec
}

func (d *DB) questionsOf(challengeID string) []dbmodels.Question {
	result := []dbmodels.Question{}
	for _, question := range d.questions {
		if question.ChallengeID == challengeID {
			result = append(result, question)
		}
	}
	sortByOrdinal(result)
	return result
}

func sortByOrdinal(list []dbmodels.Question) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Ordinal < list[j].Ordinal
	})
}
