package store

import (
	"strconv"

	"github.com/MKhiriev/go-user-admin/models"
)

// nextID returns max(numeric ids)+1 as a decimal string, "1" for a set with
// no numeric ids. Ids that do not parse as integers are skipped.
func nextID(users []models.User) string {
	var maxID int64
	for _, u := range users {
		id, err := strconv.ParseInt(u.ID, 10, 64)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}

	return strconv.FormatInt(maxID+1, 10)
}

func indexByID(users []models.User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
