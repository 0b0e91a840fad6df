package memstore

import (
	"context"

	"github.com/pkg/errors"
	resumereviewstore "skill-hire-backend/lib/resume-review/store"
	submissionhistorystore "skill-hire-backend/lib/submission-history/store"
	submissionstore "skill-hire-backend/lib/submission/store"
	"skill-hire-backend/lib/utils/helpers"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

func (d *DB) Submissions() submissionstore.Provider {
	return submissions{db: d}
}

type submissions struct {
	db *DB
}

func (s submissions) Create(ctx context.Context, rec *dbmodels.Submission) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return err
	}
	if rec.Status == "" {
		rec.Status = models.SubmissionStatusPending
	}
	rec.BaseModel = s.db.newBase(rec.BaseModel)
	stored := *rec
	stored.Interviewee = nil
	stored.Challenge = nil
	stored.Position = nil
	s.db.submissions = append(s.db.submissions, stored)
	return nil
}

func (s submissions) GetByID(ctx context.Context, id string) (*dbmodels.Submission, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	for _, rec := range s.db.submissions {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s submissions) GetPopulated(ctx context.Context, id string) (*dbmodels.Submission, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	for _, rec := range s.db.submissions {
		if rec.ID == id {
			rec = s.populated(rec)
			return &rec, nil
		}
	}
	return nil, nil
}

func (s submissions) ListByChallenges(ctx context.Context, challengeIDs []string) ([]dbmodels.Submission, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Submission{}
	for idx := len(s.db.submissions) - 1; idx >= 0; idx-- {
		rec := s.db.submissions[idx]
		if helpers.Contains(challengeIDs, rec.ChallengeID) {
			list = append(list, s.populated(rec))
		}
	}
	return list, nil
}

func (s submissions) ListByInterviewee(ctx context.Context, intervieweeID string) ([]dbmodels.Submission, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Submission{}
	for idx := len(s.db.submissions) - 1; idx >= 0; idx-- {
		rec := s.db.submissions[idx]
		if rec.IntervieweeID != intervieweeID {
			continue
		}
		if challenge := s.db.challenge(rec.ChallengeID, true, false); challenge != nil {
			if challenge.Position != nil {
				challenge.Position.Company = s.db.company(challenge.Position.CompanyID)
			}
			rec.Challenge = challenge
		}
		rec.Position = s.db.position(rec.PositionID, true, false)
		list = append(list, rec)
	}
	return list, nil
}

func (s submissions) LatestByIntervieweeAndChallenge(ctx context.Context, intervieweeID, challengeID string) (*dbmodels.Submission, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	for idx := len(s.db.submissions) - 1; idx >= 0; idx-- {
		rec := s.db.submissions[idx]
		if rec.IntervieweeID == intervieweeID && rec.ChallengeID == challengeID {
			rec.Challenge = s.db.challenge(rec.ChallengeID, false, false)
			return &rec, nil
		}
	}
	return nil, nil
}

func (s submissions) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return err
	}
	for idx := range s.db.submissions {
		rec := &s.db.submissions[idx]
		if rec.ID != id {
			continue
		}
		for key, value := range updMap {
			switch key {
			case "status":
				rec.Status = value.(models.SubmissionStatus)
			case "feedback":
				feedback := value.(string)
				rec.Feedback = &feedback
			default:
				return errors.Errorf("unknown submission column %q", key)
			}
		}
		rec.UpdatedAt = s.db.now()
		return nil
	}
	return errors.New("submission not found")
}

func (s submissions) populated(rec dbmodels.Submission) dbmodels.Submission {
	rec.Interviewee = s.db.publicUser(rec.IntervieweeID)
	rec.Challenge = s.db.challenge(rec.ChallengeID, false, false)
	rec.Position = s.db.position(rec.PositionID, true, false)
	return rec
}

func (d *DB) SubmissionHistory() submissionhistorystore.Provider {
	return history{db: d}
}

type history struct {
	db *DB
}

func (s history) Save(ctx context.Context, rec dbmodels.SubmissionHistory) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return err
	}
	rec.BaseModel = s.db.newBase(rec.BaseModel)
	s.db.history = append(s.db.history, rec)
	return nil
}

func (s history) List(ctx context.Context, submissionID string) ([]dbmodels.SubmissionHistory, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.SubmissionHistory{}
	for _, rec := range s.db.history {
		if rec.SubmissionID == submissionID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (d *DB) ResumeReviews() resumereviewstore.Provider {
	return reviews{db: d}
}

type reviews struct {
	db *DB
}

func (s reviews) Create(ctx context.Context, rec *dbmodels.ResumeReview) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.BaseModel = s.db.newBase(rec.BaseModel)
	stored := *rec
	stored.Interviewee = nil
	stored.ReviewedBy = nil
	s.db.reviews = append(s.db.reviews, stored)
	return nil
}

func (s reviews) ListByInterviewee(ctx context.Context, intervieweeID string) ([]dbmodels.ResumeReview, error) {
	return s.list(ctx, func(rec dbmodels.ResumeReview) bool { return rec.IntervieweeID == intervieweeID })
}

func (s reviews) ListByReviewer(ctx context.Context, reviewerID string) ([]dbmodels.ResumeReview, error) {
	return s.list(ctx, func(rec dbmodels.ResumeReview) bool { return rec.ReviewedByID == reviewerID })
}

func (s reviews) list(ctx context.Context, match func(rec dbmodels.ResumeReview) bool) ([]dbmodels.ResumeReview, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.ResumeReview{}
	for idx := len(s.db.reviews) - 1; idx >= 0; idx-- {
		rec := s.db.reviews[idx]
		if match(rec) {
			rec.ReviewedBy = s.db.publicUser(rec.ReviewedByID)
			rec.Interviewee = s.db.publicUser(rec.IntervieweeID)
			list = append(list, rec)
		}
	}
	return list, nil
}
