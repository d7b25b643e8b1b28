package api

import "time"

type UserDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string  `json:"accessToken"`
	User        UserDTO `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LeagueDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	OwnerID     string    `json:"ownerId"`
	IsPrivate   bool      `json:"isPrivate"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LeagueMemberDTO struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type CreateLeagueRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPrivate   bool   `json:"isPrivate"`
}

type UpdateLeagueRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPrivate   *bool   `json:"isPrivate,omitempty"`
}

type JoinLeagueRequest struct {
	Code string `json:"code"`
}

type RankingEntryDTO struct {
	Position    int    `json:"position"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	Points      int    `json:"points"`
	ExactScores int    `json:"exactScores"`
	Outcomes    int    `json:"correctOutcomes"`
}

type RankingPageDTO struct {
	Entries []RankingEntryDTO `json:"entries"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
}

type TeamDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FifaCode      string `json:"fifaCode"`
	Confederation string `json:"confederation"`
	FlagURL       string `json:"flagUrl"`
	Group         string `json:"group"`
}

type PlayerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number"`
	TeamID   string `json:"teamId"`
	Club     string `json:"club"`
}

type StadiumDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
}

type MatchDTO struct {
	ID          string    `json:"id"`
	HomeTeam    *TeamDTO  `json:"homeTeam"`
	AwayTeam    *TeamDTO  `json:"awayTeam"`
	Group       string    `json:"group"`
	Phase       string    `json:"phase"`
	MatchNumber int       `json:"matchNumber"`
	Date        time.Time `json:"date"`
	StadiumID   string    `json:"stadiumId"`
	Status      string    `json:"status"`
	HomeScore   *int      `json:"homeScore"`
	AwayScore   *int      `json:"awayScore"`
}

type CalendarDayDTO struct {
	Date    string     `json:"date"`
	Matches []MatchDTO `json:"matches"`
}

type MatchPredictionDTO struct {
	MatchID         string  `json:"matchId"`
	HomeTeamID      string  `json:"homeTeamId,omitempty"`
	AwayTeamID      string  `json:"awayTeamId,omitempty"`
	HomeScore       int     `json:"homeScore"`
	AwayScore       int     `json:"awayScore"`
	HomeScoreET     *int    `json:"homeScoreET"`
	AwayScoreET     *int    `json:"awayScoreET"`
	PenaltiesWinner *string `json:"penaltiesWinner"`
}

type AwardsDTO struct {
	GoldenBall      string `json:"goldenBall,omitempty"`
	GoldenBoot      string `json:"goldenBoot,omitempty"`
	GoldenGlove     string `json:"goldenGlove,omitempty"`
	BestYoungPlayer string `json:"bestYoungPlayer,omitempty"`
}

type PredictionDTO struct {
	ID                  string                    `json:"id"`
	UserID              string                    `json:"userId"`
	LeagueID            string                    `json:"leagueId"`
	GroupPredictions    []MatchPredictionDTO      `json:"groupPredictions"`
	KnockoutPredictions []MatchPredictionDTO      `json:"knockoutPredictions"`
	Awards              *AwardsDTO                `json:"awards"`
	ChampionTeamID      *string                   `json:"championTeamId"`
	Tiebreakers         map[string]map[string]int `json:"tiebreakers"`
	UpdatedAt           time.Time                 `json:"updatedAt"`
}

type SaveGroupRequest struct {
	Predictions []MatchPredictionDTO `json:"predictions"`
	Tiebreakers map[string]int       `json:"tiebreakers,omitempty"`
}

type SaveKnockoutRequest struct {
	Predictions []MatchPredictionDTO `json:"predictions"`
}

type ChampionRequest struct {
	TeamID string `json:"teamId"`
}

type PredictionStatsDTO struct {
	GroupPredicted    int  `json:"groupPredicted"`
	GroupTotal        int  `json:"groupTotal"`
	KnockoutPredicted int  `json:"knockoutPredicted"`
	KnockoutTotal     int  `json:"knockoutTotal"`
	HasAwards         bool `json:"hasAwards"`
	HasChampion       bool `json:"hasChampion"`
	Points            int  `json:"points"`
}
