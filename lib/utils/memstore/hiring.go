package memstore

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	challengestore "skill-hire-backend/lib/challenge/store"
	companystore "skill-hire-backend/lib/company/store"
	positionstore "skill-hire-backend/lib/position/store"
	questionstore "skill-hire-backend/lib/question/store"
	"skill-hire-backend/lib/utils/helpers"
	dbmodels "skill-hire-backend/models/db"
)

func (d *DB) Companies() companystore.Provider {
	return companies{db: d}
}

type companies struct {
	db *DB
}

func (s companies) Create(ctx context.Context, rec *dbmodels.Company) error {
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
	stored.Recruiter = nil
	s.db.companies = append(s.db.companies, stored)
	return nil
}

func (s companies) GetByID(ctx context.Context, id string) (*dbmodels.Company, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	return s.db.company(id), nil
}

func (s companies) ListByRecruiter(ctx context.Context, recruiterID string) ([]dbmodels.Company, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Company{}
	for _, rec := range s.db.companies {
		if rec.RecruiterID == recruiterID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s companies) IDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error) {
	list, err := s.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, rec := range list {
		ids = append(ids, rec.ID)
	}
	return ids, nil
}

func (s companies) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return err
	}
	for idx := range s.db.companies {
		rec := &s.db.companies[idx]
		if rec.ID != id {
			continue
		}
		for key, value := range updMap {
			switch key {
			case "name":
				rec.Name = value.(string)
			case "description":
				rec.Description = value.(string)
			case "culture_tags":
				rec.CultureTags = value.(pq.StringArray)
			case "salary_transparency":
				rec.SalaryTransparency = value.(bool)
			default:
				return errors.Errorf("unknown company column %q", key)
			}
		}
		rec.UpdatedAt = s.db.now()
		return nil
	}
	return errors.New("company not found")
}

func (d *DB) Positions() positionstore.Provider {
	return positions{db: d}
}

type positions struct {
	db *DB
}

func (s positions) Create(ctx context.Context, rec *dbmodels.Position) error {
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
	stored.Company = nil
	stored.Challenges = nil
	s.db.positions = append(s.db.positions, stored)
	return nil
}

func (s positions) GetByID(ctx context.Context, id string) (*dbmodels.Position, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	return s.db.position(id, false, true), nil
}

func (s positions) GetWithCompany(ctx context.Context, id string) (*dbmodels.Position, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	return s.db.position(id, true, true), nil
}

func (s positions) ListByCompanies(ctx context.Context, companyIDs []string) ([]dbmodels.Position, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Position{}
	for _, rec := range s.db.positions {
		if helpers.Contains(companyIDs, rec.CompanyID) {
			list = append(list, s.db.withPositionRelations(rec, true, true))
		}
	}
	return list, nil
}

func (s positions) ListWithCompanyAndChallenges(ctx context.Context) ([]dbmodels.Position, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Position{}
	for _, rec := range s.db.positions {
		list = append(list, s.db.withPositionRelations(rec, true, true))
	}
	return list, nil
}

func (s positions) IDsByCompanies(ctx context.Context, companyIDs []string) ([]string, error) {
	list, err := s.ListByCompanies(ctx, companyIDs)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, rec := range list {
		ids = append(ids, rec.ID)
	}
	return ids, nil
}

func (d *DB) Challenges() challengestore.Provider {
	return challenges{db: d}
}

type challenges struct {
	db *DB
}

func (s challenges) Create(ctx context.Context, rec *dbmodels.Challenge) error {
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
	stored.Position = nil
	stored.Questions = nil
	s.db.challenges = append(s.db.challenges, stored)
	return nil
}

func (s challenges) GetByID(ctx context.Context, id string) (*dbmodels.Challenge, error) {
	return s.get(ctx, id, false, false)
}

func (s challenges) GetWithQuestions(ctx context.Context, id string) (*dbmodels.Challenge, error) {
	return s.get(ctx, id, false, true)
}

func (s challenges) GetWithPositionAndQuestions(ctx context.Context, id string) (*dbmodels.Challenge, error) {
	return s.get(ctx, id, true, true)
}

func (s challenges) get(ctx context.Context, id string, withPosition, withQuestions bool) (*dbmodels.Challenge, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	return s.db.challenge(id, withPosition, withQuestions), nil
}

func (s challenges) ListByPositions(ctx context.Context, positionIDs []string) ([]dbmodels.Challenge, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Challenge{}
	for _, rec := range s.db.challenges {
		if helpers.Contains(positionIDs, rec.PositionID) {
			list = append(list, s.db.withChallengeRelations(rec, false, true))
		}
	}
	return list, nil
}

func (s challenges) IDsByPositions(ctx context.Context, positionIDs []string) ([]string, error) {
	list, err := s.ListByPositions(ctx, positionIDs)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, rec := range list {
		ids = append(ids, rec.ID)
	}
	return ids, nil
}

func (d *DB) Questions() questionstore.Provider {
	return questions{db: d}
}

type questions struct {
	db *DB
}

func (s questions) CreateBulk(ctx context.Context, challengeID string, recs []dbmodels.Question) ([]dbmodels.Question, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	for idx := range recs {
		recs[idx].ChallengeID = challengeID
		if err := recs[idx].Validate(); err != nil {
			return nil, err
		}
	}
	next := 0
	for _, rec := range s.db.questions {
		if rec.ChallengeID == challengeID && rec.Ordinal >= next {
			next = rec.Ordinal + 1
		}
	}
	for idx := range recs {
		recs[idx].BaseModel = s.db.newBase(recs[idx].BaseModel)
		recs[idx].Ordinal = next + idx
	}
	s.db.questions = append(s.db.questions, recs...)
	return recs, nil
}

func (s questions) ListByChallenges(ctx context.Context, challengeIDs []string) ([]dbmodels.Question, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Question{}
	for _, challengeID := range challengeIDs {
		list = append(list, s.db.questionsOf(challengeID)...)
	}
	return list, nil
}
