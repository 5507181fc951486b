package usecase

import (
	"sort"

	"parking_service/internal/domain/entities"
)

func sortSpacesByCode(spaces []entities.Space) {
	sort.Slice(spaces, func(i, j int) bool { return spaces[i].Code < spaces[j].Code })
}

func sortSessionsByEntry(sessions []entities.Session) {
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].EntryTime.Before(sessions[j].EntryTime) })
}
