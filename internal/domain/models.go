package domain

import (
	"time"
)

type Team struct {
	ID            string
	Name          string
	Code          string // FIFA code, e.g. "ESP"
	Confederation string
	FlagURL       string
	GroupID       string
}

type Player struct {
	ID       string
	Name     string
	Position string
	Number   int
	TeamID   string
	Club     string
}

type Stadium struct {
	ID       string
	Name     string
	City     string
	Country  string
	Capacity int
}

type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchLive      MatchStatus = "LIVE"
	MatchFinished  MatchStatus = "FINISHED"
)

type Match struct {
	ID        string
	HomeTeam  *Team
	AwayTeam  *Team
	GroupID   string
	Phase     Phase
	Number    int
	KickoffAt time.Time
	StadiumID string
	Status    MatchStatus
	Result    *Score // nil until played
}

// Score is a regulation-time result, real or predicted.
type Score struct {
	Home int
	Away int
}

func (s Score) IsDraw() bool {
	return s.Home == s.Away
}

type User struct {
	ID        string
	Name      string
	Email     string
	Verified  bool
	CreatedAt time.Time
}

type League struct {
	ID          string
	Name        string
	Description string
	Code        string // invite code
	OwnerID     string
	IsPrivate   bool
	MemberCount int
	CreatedAt   time.Time
}

type LeagueMember struct {
	UserID   string
	Name     string
	Role     string // "owner" or "member"
	JoinedAt time.Time
}

type Awards struct {
	GoldenBall      string // player ids
	GoldenBoot      string
	GoldenGlove     string
	BestYoungPlayer string
}

type PredictionStats struct {
	GroupMatchesPredicted    int
	GroupMatchesTotal        int
	KnockoutMatchesPredicted int
	KnockoutMatchesTotal     int
	AwardsCompleted          bool
	ChampionSelected         bool
	Points                   int
}

func (s PredictionStats) CompletionPercent() int {
	total := s.GroupMatchesTotal + s.KnockoutMatchesTotal
	if total == 0 {
		return 0
	}
	return (s.GroupMatchesPredicted + s.KnockoutMatchesPredicted) * 100 / total
}

type RankingEntry struct {
	Position    int
	UserID      string
	UserName    string
	Points      int
	ExactScores int
	Outcomes    int
}

type Session struct {
	AccessToken   string
	RefreshCookie string
	UserID        string
	UpdatedAt     time.Time
}

// TeamStanding is derived from predictions and never persisted.
type TeamStanding struct {
	Team           Team
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Position       int
	IsTied         bool
	TiedWith       []string
}
