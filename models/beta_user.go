package models

import "slices"

// BetaUserList is the persisted allow-list of beta testers
type BetaUserList struct {
	Users []int64 `json:"users"`
}

// Contains reports whether the user is already a beta tester
func (l BetaUserList) Contains(userID int64) bool {
	return slices.Contains(l.Users, userID)
}
