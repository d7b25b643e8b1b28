package constants

import "time"

const (
	APITimeout      = 10 * time.Second
	DatabaseTimeout = 5 * time.Second
	CommandTimeout  = 30 * time.Second
)

const (
	APIMaxConnsPerHost     = 16
	APIMaxIdleConnDuration = 1 * time.Minute
	APIMaxResponseBodySize = 4 << 20
)

const (
	DBMaxOpenConns    = 4
	DBMaxIdleConns    = 2
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	StartTimeout    = 5 * time.Second
	ShutdownTimeout = 5 * time.Second
)

const (
	RefreshCookieName = "refreshToken"
	RequestIDHeader   = "X-Request-ID"
	DefaultAPIBaseURL = "http://localhost:3001/api"
	DefaultDBPath     = "porra.db"
)

const (
	RankingPageSize = 50
)
