package response

type RankingItem struct {
	Rank  string `json:"rank"`
	Name  string `json:"name"`
	Club  string `json:"club"`
	Event string `json:"event"`
	Time  string `json:"time"`
	Score string `json:"score"`
}

type RankingsResponse struct {
	Men         []RankingItem `json:"men"`
	Women       []RankingItem `json:"women"`
	LastUpdated string        `json:"last_updated"`
}
