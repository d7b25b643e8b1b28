package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"porra/internal/domain"
)

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(LoginForm{Email: "ana@example.com", Password: "x"}))

	err := ValidateLogin(LoginForm{Email: "ana", Password: "x"})
	requireRule(t, err, RuleField)
	assert.Equal(t, "email", err.(*Error).Field)

	err = ValidateLogin(LoginForm{Email: "ana@example.com"})
	assert.Equal(t, "password", err.(*Error).Field)
}

func TestValidateRegister(t *testing.T) {
	valid := RegisterForm{Name: "Ana", Email: "ana@example.com", Password: "golazo2026", Confirm: "golazo2026"}
	assert.NoError(t, ValidateRegister(valid))

	tests := map[string]struct {
		mutate func(f *RegisterForm)
		field  string
	}{
		"short name":     {func(f *RegisterForm) { f.Name = "A" }, "name"},
		"bad email":      {func(f *RegisterForm) { f.Email = "ana@" }, "email"},
		"short password": {func(f *RegisterForm) { f.Password, f.Confirm = "g0l", "g0l" }, "password"},
		"no digits":      {func(f *RegisterForm) { f.Password, f.Confirm = "golazooo", "golazooo" }, "password"},
		"mismatch":       {func(f *RegisterForm) { f.Confirm = "golazo2027" }, "confirm"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)
			err := ValidateRegister(f)
			requireRule(t, err, RuleField)
			assert.Equal(t, tc.field, err.(*Error).Field)
		})
	}
}

func TestValidateResetPassword(t *testing.T) {
	assert.NoError(t, ValidateResetPassword(ResetPasswordForm{Token: "t", Password: "abc12345", Confirm: "abc12345"}))
	requireRule(t, ValidateResetPassword(ResetPasswordForm{Password: "abc12345", Confirm: "abc12345"}), RuleField)
}

func TestValidateLeague(t *testing.T) {
	assert.NoError(t, ValidateLeague(LeagueForm{Name: "Los de la ofi"}))
	requireRule(t, ValidateLeague(LeagueForm{Name: "ab"}), RuleField)
}

func TestValidateJoinCode(t *testing.T) {
	assert.NoError(t, ValidateJoinCode("ABC123"))
	requireRule(t, ValidateJoinCode("ABC"), RuleField)
	requireRule(t, ValidateJoinCode("ABC-123"), RuleField)
}

func TestValidateGroupSubmission(t *testing.T) {
	matches := []domain.Match{{ID: "m1"}, {ID: "m2"}}

	assert.NoError(t, ValidateGroupSubmission(matches, []domain.MatchPrediction{{MatchID: "m1", HomeScore: 1}}))
	requireRule(t, ValidateGroupSubmission(matches, nil), RuleCount)
	requireRule(t, ValidateGroupSubmission(matches, []domain.MatchPrediction{{MatchID: "m9"}}), RuleIdentifiers)
	requireRule(t, ValidateGroupSubmission(matches, []domain.MatchPrediction{{MatchID: "m1"}, {MatchID: "m1"}}), RuleIdentifiers)
	requireRule(t, ValidateGroupSubmission(matches, []domain.MatchPrediction{{MatchID: "m2", AwayScore: -1}}), RuleScores)
}

func TestValidateVerifyToken(t *testing.T) {
	assert.NoError(t, ValidateVerifyToken("abc123"))
	requireRule(t, ValidateVerifyToken("  "), RuleField)
}
