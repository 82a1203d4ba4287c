package schedule

import "strings"

// ChangeOp is one persistence operation produced by DiffOverrides.
type ChangeOp int

const (
	OpInsert ChangeOp = iota
	OpUpdate
	OpDelete
)

// Change is one row of an override batch save.
type Change struct {
	Op       ChangeOp
	ID       string // existing override id for update/delete
	Date     string
	MemberID string
	Status   string
}

// DiffOverrides turns pending base edits into the minimal batch of
// persistence operations. A cell edited back to its weekday default deletes
// the stored override (absence means default); a changed existing override
// updates in place; a new non-default value inserts. Edits equal to what is
// already stored produce nothing. The whole batch is meant to be applied as
// one atomic unit by the caller.
func DiffOverrides(pending map[string]string, originals map[string]Override) []Change {
	var changes []Change
	for key, status := range pending {
		date, memberID, ok := splitOverrideKey(key)
		if !ok {
			continue
		}
		origin, exists := originals[key]
		if status == DefaultStatusFor(date) {
			if exists {
				changes = append(changes, Change{Op: OpDelete, ID: origin.ID, Date: date, MemberID: memberID})
			}
			continue
		}
		if exists {
			if origin.Status != status {
				changes = append(changes, Change{Op: OpUpdate, ID: origin.ID, Date: date, MemberID: memberID, Status: status})
			}
			continue
		}
		changes = append(changes, Change{Op: OpInsert, Date: date, MemberID: memberID, Status: status})
	}
	return changes
}

func splitOverrideKey(key string) (date, memberID string, ok bool) {
	i := strings.Index(key, "_")
	if i < 0 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}
