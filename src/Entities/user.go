package Entities

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type User struct {
	Id               int64     `json:"id"`
	Username         string    `json:"username"`
	Password         string    `json:"-"`
	Information      string    `json:"information"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	Avatar           []byte    `json:"avatar,omitempty"`
	Role             *Role     `json:"role"`
	NonLocked        bool      `json:"non_locked"`
}

type ShortUser struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *User) HashPassword(password string) error {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(bytes)
	return nil
}

func (u *User) CheckPassword(providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(providedPassword))
}

func (u *User) IsAdmin() bool {
	return u.Role != nil && u.Role.Name == AdminRoleName
}

// ValidateNew checks the registration payload; password is the plaintext
// before hashing.
func (u *User) ValidateNew(password string) error {
	var violations []string

	if u.Username == "" {
		violations = append(violations, "Username can't be empty")
	} else if n := utf8.RuneCountInString(u.Username); n < 4 || n > 20 {
		violations = append(violations, "Name must be between 4 and 20 in length")
	}

	if password == "" {
		violations = append(violations, "Password can't be null")
	} else if !ValidPassword(password) {
		violations = append(violations, passwordRuleMessage)
	}

	if utf8.RuneCountInString(u.Information) > 1000 {
		violations = append(violations, "Information mustn't be longer than 1000 in length")
	}

	if u.Email == "" {
		violations = append(violations, "Email can't be null")
	} else if !emailPattern.MatchString(u.Email) {
		violations = append(violations, "Wrong email")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}

const passwordRuleMessage = "Password must be minimum 8 characters in length and include at least one digit, " +
	"lower-case, upper-case and special characters and mustn't include any space symbols"

// ValidPassword enforces the password complexity rules: at least 8
// characters with a digit, a lower-case letter, an upper-case letter and one
// of @#$%^&+= with no whitespace.
func ValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune("@#$%^&+=", r):
			hasSpecial = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return false
		}
	}
	return hasDigit && hasLower && hasUpper && hasSpecial
}

func PasswordRuleViolation() error {
	return &Errors.ValidationFailed{Violations: []string{passwordRuleMessage}}
}
