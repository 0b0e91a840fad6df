package authapimodels

import (
	"net/mail"
	"strings"
	"time"

	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the most bcrypt hashes, counted in bytes
	MaxPasswordLength = 72
)

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"` // recruiter | interviewee
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" || r.Email == "" || r.Password == "" || r.Role == "" {
		return apperrors.New(apperrors.ErrValidation, "all fields are required")
	}
	if !r.Role.IsValid() {
		return apperrors.Newf(apperrors.ErrValidation, "unknown role %q", r.Role)
	}
	if len(r.Password) < MinPasswordLength {
		return apperrors.Newf(apperrors.ErrWeakCredential, "password must be at least %d characters", MinPasswordLength)
	}
	if len(r.Password) > MaxPasswordLength {
		return apperrors.Newf(apperrors.ErrValidation, "password must be at most %d bytes", MaxPasswordLength)
	}
	if !isEmail(r.Email) {
		return apperrors.New(apperrors.ErrInvalidFormat, "invalid email format")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || r.Password == "" {
		return apperrors.New(apperrors.ErrValidation, "email and password are required")
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      rec.Role,
		CreatedAt: rec.CreatedAt,
	}
}

// isEmail accepts bare addresses only, "Name <a@b.c>" is rejected.
func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Address == value && strings.Contains(value[strings.LastIndex(value, "@"):], ".")
}

type MeView struct {
	UserView
	Permissions map[models.Module][]models.Permission `json:"permissions"`
}
