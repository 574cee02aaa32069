package model

// RoleCommand tells the role-mutation collaborator to grant or revoke a
// reward role. Commands in a batch are independent: one failure must not
// block the others.
type RoleCommand struct {
	GuildID string
	UserID  string
	RoleID  string
}

// RankEntry is one row of a ranked snapshot.
type RankEntry struct {
	UserID string
	Count  int
}

// RankingPost hands a ranked snapshot to the messaging collaborator.
// GuildID is empty for the global scope.
type RankingPost struct {
	GuildID string
	Period  Period
	Entries []RankEntry
}
