package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Status      statusResponse       `json:"status"`
	Competitors []competitorResponse `json:"competitors"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
}
