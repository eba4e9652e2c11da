package espn

import "time"

const providerName = "espn"

// Public MLB scoreboard endpoint; no API key required.
const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/baseball/mlb"

const defaultTimeout = 5 * time.Second

// ProviderName identifies this provider in logs and metrics.
func ProviderName() string { return providerName }
