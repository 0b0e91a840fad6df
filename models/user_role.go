package models

type UserRole string

const (
	RecruiterRole   UserRole = "recruiter"
	IntervieweeRole UserRole = "interviewee"
)

var roleHumanName = map[UserRole]string{
	RecruiterRole:   "Recruiter",
	IntervieweeRole: "Interviewee",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}
