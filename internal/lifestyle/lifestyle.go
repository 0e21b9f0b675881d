package lifestyle

import (
	"errors"
	"time"
)

const (
	DefaultWaterMl      = 250
	HydrationGoalMl     = 3000
	DefaultSleepHours   = 8.0
	DefaultSleepQuality = "Good"
	LeaderboardSize     = 5
)

var ErrNoSleepLog = errors.New("no sleep log")

type SleepLog struct {
	Hours   float64   `json:"hours"`
	Quality string    `json:"quality"`
	Date    time.Time `json:"-"`
}

type WeightLog struct {
	Weight   float64   `json:"weight"`
	LoggedAt time.Time `json:"logged_at"`
}

type LeaderboardRow struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Metric string `json:"metric"`
}

// FallbackLeaderboard is served while nobody has logged progress yet.
var FallbackLeaderboard = []LeaderboardRow{
	{Name: "Admin User", Score: 42, Metric: "Workouts"},
	{Name: "Bot One", Score: 30, Metric: "Workouts"},
}
