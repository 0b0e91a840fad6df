package models

import "strings"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusSelected SubmissionStatus = "selected"
	SubmissionStatusRejected SubmissionStatus = "rejected"
	SubmissionStatusOnHold   SubmissionStatus = "on_hold"
)

var submissionStatusHumanName = map[SubmissionStatus]string{
	SubmissionStatusPending:  "Pending",
	SubmissionStatusSelected: "Selected",
	SubmissionStatusRejected: "Rejected",
	SubmissionStatusOnHold:   "On hold",
}

func (s SubmissionStatus) ToHuman() string {
	if human, exist := submissionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// ParseSubmissionStatus normalizes client input, "on hold" is accepted for on_hold.
func ParseSubmissionStatus(value string) SubmissionStatus {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "_")
	return SubmissionStatus(value)
}

// IsReviewDecision reports whether a recruiter may move a submission into s.
// pending is only ever the initial state.
func (s SubmissionStatus) IsReviewDecision() bool {
	switch s {
	case SubmissionStatusSelected, SubmissionStatusRejected, SubmissionStatusOnHold:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionTypeMCQ     QuestionType = "mcq"
	QuestionTypeCoding  QuestionType = "coding"
	QuestionTypeWritten QuestionType = "written"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeCoding, QuestionTypeWritten:
		return true
	}
	return false
}

type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "Easy"
	DifficultyMedium ChallengeDifficulty = "Medium"
	DifficultyHard   ChallengeDifficulty = "Hard"
)

func (d ChallengeDifficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const NotAvailable = "N/A"
