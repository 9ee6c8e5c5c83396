package ledger

// Block is one recorded draw in the history.
type Block struct {
	Index          int      `json:"index"`
	Timestamp      int64    `json:"timestamp"`
	PrevHash       string   `json:"prev_hash"`
	Hash           string   `json:"hash"`
	Hand           []string `json:"hand"` // short display form, in hand order
	Classification string   `json:"classification"`
	Metadata       Metadata `json:"metadata"`
}

type Metadata struct {
	Remaining  int  `json:"remaining"`  // cards left in the draw pile
	Reshuffled bool `json:"reshuffled"` // the deck was reshuffled to serve this draw
}
