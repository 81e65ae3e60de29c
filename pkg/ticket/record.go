package ticket

// Record is the chain-sourced view of one ticket. TokenID is the decimal
// string form of the uint256 token id. Timestamp is the issuance time in unix
// seconds as recorded by the contract. Used transitions false -> true exactly
// once and never back.
type Record struct {
	TokenID     string `json:"tokenId"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Seat        uint64 `json:"seat"`
	Timestamp   int64  `json:"timestamp"`
	Passenger   string `json:"passenger"`
	Used        bool   `json:"used"`
}
