package entity

const (
	ProgressCollection          = "progress"
	DisplayNameChangeCollection = "display_name_changes"
	AdminCollection             = "admins"

	DisplayNameChangeListLimit = 50
)

type LearnProgress struct {
	UserID             string `json:"userId"`
	DisplayName        string `json:"displayName"`
	LearnedAlphabetAll bool   `json:"learnedAlphabetAll"`
	LearnedNumbersAll  bool   `json:"learnedNumbersAll"`
	LearnedColoursAll  bool   `json:"learnedColoursAll"`
	LearnedFruitsAll   bool   `json:"learnedFruitsAll"`
	LearnedAnimalsAll  bool   `json:"learnedAnimalsAll"`
	LearnedVerbsAll    bool   `json:"learnedVerbsAll"`
}

type AnalyticsSummary struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalUsersWithProgress int     `json:"totalUsersWithProgress"`
	TotalLevel             float64 `json:"totalLevel"`
	TotalXP                float64 `json:"totalXP"`
	TotalChests            float64 `json:"totalChests"`
	TotalStreaks           float64 `json:"totalStreaks"`
	MaxLevel               float64 `json:"maxLevel"`
	MaxXP                  float64 `json:"maxXP"`
	AvgLevel               float64 `json:"avgLevel"`
	AvgXP                  float64 `json:"avgXP"`
}
