/*
Package dbmodel defines db model structure.
*/
package dbmodel

import "time"

// Match represents `patch_matches` table and fields: a title confirmed in the
// Jamf inventory via one catalog during one run.
type Match struct {
	CreatedAt time.Time
	RunID     string
	Source    string
	Title     string
	ID        int
}

// Matches is a collection of Match.
type Matches []Match
