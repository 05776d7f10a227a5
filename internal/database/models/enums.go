package models

// Verification is the trust state of an uploaded mod.
type Verification string

const (
	VerificationNone   Verification = "None"
	VerificationYanked Verification = "Yanked"
	VerificationUnsafe Verification = "Unsafe"
	VerificationAuto   Verification = "Auto"
	VerificationManual Verification = "Manual"
	VerificationCore   Verification = "Core"
)

// trustRanks is the explicit total order used for minimum-trust filtering.
// Yanked ranks above None so a trust floor of None still surfaces yanked
// artifacts to callers that opted into seeing everything.
var trustRanks = map[Verification]int{
	VerificationNone:   0,
	VerificationYanked: 1,
	VerificationUnsafe: 2,
	VerificationAuto:   3,
	VerificationManual: 4,
	VerificationCore:   5,
}

// TrustRank returns the position of the state in the trust order.
// Unknown values rank lowest.
func (v Verification) TrustRank() int {
	return trustRanks[v]
}

// IsValid checks if the Verification is a known state
func (v Verification) IsValid() bool {
	_, ok := trustRanks[v]
	return ok
}

// Terminal reports whether the state accepts no further verification votes.
// Yanked is terminal for voting purposes too: no specified transition leads
// back out of it.
func (v Verification) Terminal() bool {
	switch v {
	case VerificationUnsafe, VerificationManual, VerificationCore, VerificationYanked:
		return true
	}
	return false
}

// SortBy defines the allowed search sort keys
type SortBy string

const (
	SortByName      SortBy = "name"
	SortByDownloads SortBy = "downloads"
	SortByUploaded  SortBy = "uploaded"
)

// IsValid checks if the SortBy is an allow-listed sort key
func (s SortBy) IsValid() bool {
	switch s {
	case SortByName, SortByDownloads, SortByUploaded:
		return true
	}
	return false
}

// Column returns the database column for the sort key. Only allow-listed
// values ever reach an ORDER BY clause.
func (s SortBy) Column() string {
	return string(s)
}
