package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffOverrides(t *testing.T) {
	// 2025-01-06 Mon (default workday), 2025-01-04 Sat (default rest).
	originals := map[string]Override{
		OverrideKey("2025-01-06", "a"): {ID: "o1", Date: "2025-01-06", MemberID: "a", Status: StatusRest},
		OverrideKey("2025-01-04", "b"): {ID: "o2", Date: "2025-01-04", MemberID: "b", Status: StatusWorkday},
		OverrideKey("2025-01-06", "c"): {ID: "o3", Date: "2025-01-06", MemberID: "c", Status: StatusWeeklyOff},
	}
	pending := map[string]string{
		OverrideKey("2025-01-06", "a"): StatusWeeklyOff, // changed override -> update
		OverrideKey("2025-01-04", "b"): StatusRest,      // back to default -> delete
		OverrideKey("2025-01-06", "c"): StatusWeeklyOff, // unchanged -> nothing
		OverrideKey("2025-01-07", "a"): StatusRest,      // new non-default -> insert
		OverrideKey("2025-01-05", "b"): StatusWeeklyOff, // equals Sunday default, no original -> nothing
		"garbage-key":                  StatusRest,      // unparseable -> skipped
	}

	changes := DiffOverrides(pending, originals)
	require.Len(t, changes, 3)

	byKey := map[string]Change{}
	for _, ch := range changes {
		byKey[OverrideKey(ch.Date, ch.MemberID)] = ch
	}

	up := byKey[OverrideKey("2025-01-06", "a")]
	assert.Equal(t, OpUpdate, up.Op)
	assert.Equal(t, "o1", up.ID)
	assert.Equal(t, StatusWeeklyOff, up.Status)

	del := byKey[OverrideKey("2025-01-04", "b")]
	assert.Equal(t, OpDelete, del.Op)
	assert.Equal(t, "o2", del.ID)

	ins := byKey[OverrideKey("2025-01-07", "a")]
	assert.Equal(t, OpInsert, ins.Op)
	assert.Empty(t, ins.ID)
	assert.Equal(t, StatusRest, ins.Status)
}

func TestDiffOverridesDefaultWithoutOriginal(t *testing.T) {
	pending := map[string]string{
		OverrideKey("2025-01-06", "a"): StatusWorkday, // Monday default, nothing stored
	}
	assert.Empty(t, DiffOverrides(pending, nil))
}
