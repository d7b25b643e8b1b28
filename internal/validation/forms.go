package validation

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"porra/internal/domain"
)

const (
	minPasswordLength   = 8
	maxNameLength       = 50
	minLeagueNameLength = 3
	maxDescriptionLen   = 200
	leagueCodeMinLength = 6
	leagueCodeMaxLength = 12
	maxGoalsPerTeam     = 20
)

type LoginForm struct {
	Email    string
	Password string
}

type RegisterForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

type ResetPasswordForm struct {
	Token    string
	Password string
	Confirm  string
}

type LeagueForm struct {
	Name        string
	Description string
	IsPrivate   bool
}

func ValidateLogin(f LoginForm) error {
	if err := validateEmail(f.Email); err != nil {
		return err
	}
	if f.Password == "" {
		return fieldError("password", "La contraseña es obligatoria")
	}
	return nil
}

func ValidateRegister(f RegisterForm) error {
	name := strings.TrimSpace(f.Name)
	if utf8.RuneCountInString(name) < 2 {
		return fieldError("name", "El nombre debe tener al menos 2 caracteres")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fieldError("name", "El nombre no puede superar los %d caracteres", maxNameLength)
	}
	if err := validateEmail(f.Email); err != nil {
		return err
	}
	return validateNewPassword(f.Password, f.Confirm)
}

func ValidateForgotPassword(email string) error {
	return validateEmail(email)
}

func ValidateVerifyToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fieldError("token", "El enlace de verificación no es válido")
	}
	return nil
}

func ValidateResetPassword(f ResetPasswordForm) error {
	if strings.TrimSpace(f.Token) == "" {
		return fieldError("token", "El enlace de recuperación no es válido")
	}
	return validateNewPassword(f.Password, f.Confirm)
}

func ValidateLeague(f LeagueForm) error {
	name := strings.TrimSpace(f.Name)
	if utf8.RuneCountInString(name) < minLeagueNameLength {
		return fieldError("name", "El nombre de la liga debe tener al menos %d caracteres", minLeagueNameLength)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fieldError("name", "El nombre de la liga no puede superar los %d caracteres", maxNameLength)
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLen {
		return fieldError("description", "La descripción no puede superar los %d caracteres", maxDescriptionLen)
	}
	return nil
}

func ValidateJoinCode(code string) error {
	code = strings.TrimSpace(code)
	if len(code) < leagueCodeMinLength || len(code) > leagueCodeMaxLength {
		return fieldError("code", "El código debe tener entre %d y %d caracteres", leagueCodeMinLength, leagueCodeMaxLength)
	}
	for _, r := range code {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fieldError("code", "El código solo puede contener letras y números")
		}
	}
	return nil
}

// ValidateGroupSubmission checks a group batch against the matches of that
// group. Partial submissions are allowed.
func ValidateGroupSubmission(groupMatches []domain.Match, preds []domain.MatchPrediction) error {
	if len(preds) == 0 {
		return &Error{Rule: RuleCount, Index: -1, Message: "Debes pronosticar al menos un partido"}
	}
	known := make(map[string]bool, len(groupMatches))
	for _, m := range groupMatches {
		known[m.ID] = true
	}
	seen := make(map[string]bool, len(preds))
	for i, p := range preds {
		if !known[p.MatchID] {
			return &Error{Rule: RuleIdentifiers, Index: i, MatchID: p.MatchID, Message: "El partido " + p.MatchID + " no pertenece a este grupo"}
		}
		if seen[p.MatchID] {
			return &Error{Rule: RuleIdentifiers, Index: i, MatchID: p.MatchID, Message: "El partido " + p.MatchID + " está repetido"}
		}
		seen[p.MatchID] = true
		if p.HomeScore < 0 || p.AwayScore < 0 || p.HomeScore > maxGoalsPerTeam || p.AwayScore > maxGoalsPerTeam {
			return &Error{Rule: RuleScores, Index: i, MatchID: p.MatchID, Message: "Los goles deben ser números enteros entre 0 y 20"}
		}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fieldError("email", "El correo electrónico es obligatorio")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fieldError("email", "El correo electrónico no es válido")
	}
	return nil
}

func validateNewPassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return fieldError("password", "La contraseña debe tener al menos %d caracteres", minPasswordLength)
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fieldError("password", "La contraseña debe incluir letras y números")
	}
	if password != confirm {
		return fieldError("confirm", "Las contraseñas no coinciden")
	}
	return nil
}
