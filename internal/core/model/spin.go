package model

// SpinResult is the outcome of a single wheel spin.
type SpinResult struct {
	Value           int     `json:"value"`
	NewScore        int     `json:"newScore"`
	LandingRotation float64 `json:"landingRotation"`
	Message         string  `json:"message"`
}

// LeaderboardEntry is one row of the score ranking.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
