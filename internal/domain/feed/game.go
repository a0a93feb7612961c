package feed

// Game mirrors the upstream /game document. CurrentEvent is the gameweek the
// rest of the feed is scoped to.
type Game struct {
	CurrentEvent          int    `json:"current_event"`
	CurrentEventFinished  bool   `json:"current_event_finished"`
	NextEvent             int    `json:"next_event"`
	ProcessingStatus      string `json:"processing_status"`
	TradesTimeForApproval bool   `json:"trades_time_for_approval"`
	WaiversProcessed      bool   `json:"waivers_processed"`
}
