package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridOf builds a projected grid straight from plain statuses.
func gridOf(m Month, statuses map[int]map[string]string) Grid {
	return Project(m, Base(statuses), nil, nil)
}

func TestBaseEditCycle(t *testing.T) {
	base := Resolve(jan2025, roster, nil, nil)
	ed := NewEditor(jan2025)
	ed.StartBaseEdit()
	require.Equal(t, ModeBase, ed.Mode())

	key := OverrideKey("2025-01-06", "a") // Monday, default workday
	ed.Click(6, "a", base, nil)
	assert.Equal(t, StatusRest, ed.Pending()[key])
	ed.Click(6, "a", base, nil)
	assert.Equal(t, StatusWeeklyOff, ed.Pending()[key])
	ed.Click(6, "a", base, nil)
	assert.Equal(t, StatusWorkday, ed.Pending()[key], "cycle wraps around")
	assert.True(t, ed.HasChanges())

	ed.Discard()
	assert.False(t, ed.HasChanges())
	assert.Equal(t, ModeIdle, ed.Mode())
}

func TestSetMonthDropsPending(t *testing.T) {
	base := Resolve(jan2025, roster, nil, nil)
	ed := NewEditor(jan2025)
	ed.StartBaseEdit()
	ed.Click(6, "a", base, nil)
	require.True(t, ed.HasChanges())

	ed.SetMonth(Month{Year: 2025, Month: 2})
	ed.SetMonth(jan2025)
	assert.False(t, ed.HasChanges(), "stale edits must not resurrect after switching back")
}

func TestModesAreExclusive(t *testing.T) {
	ed := NewEditor(jan2025)
	ed.StartBaseEdit()
	ed.StartQuickEdit(EventLeave)
	assert.Equal(t, ModeQuick, ed.Mode())

	ed.StartBaseEdit()
	assert.Equal(t, ModeBase, ed.Mode())
	assert.Equal(t, 0, ed.Selection().Step)
}

func TestQuickEditOvertime(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{6: {"a": StatusWorkday, "b": StatusRest}})
	ed := NewEditor(jan2025)
	ed.StartQuickEdit(EventOvertime)

	assert.True(t, ed.Selectable(6, "b", grid), "any cell is selectable for overtime")

	res := ed.Click(6, "a", nil, grid)
	require.True(t, res.FormOpen)
	assert.Equal(t, "2025-01-06", res.Draft.Date)
	assert.Equal(t, "a", res.Draft.MemberID)
	assert.Equal(t, float64(1), res.Draft.Hours, "hours default to 1")
}

func TestQuickEditLeave(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{6: {"a": StatusWorkday, "b": StatusRest}})
	ed := NewEditor(jan2025)
	ed.StartQuickEdit(EventLeave)

	assert.True(t, ed.Selectable(6, "a", grid))
	assert.False(t, ed.Selectable(6, "b", grid), "only workday cells can take leave")

	res := ed.Click(6, "a", nil, grid)
	require.True(t, res.FormOpen)
	assert.Equal(t, LeaveTypes[0].Name, res.Draft.Reason, "reason defaults to the first configured leave type")
}

func TestQuickEditInternalSubstitution(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{
		6: {"a": StatusWorkday, "b": StatusRest, "c": StatusWorkday},
		7: {"a": StatusWorkday, "b": StatusRest, "c": StatusRest},
	})
	ed := NewEditor(jan2025)
	ed.StartInternalSubstitute()

	res := ed.Click(6, "a", nil, grid)
	assert.False(t, res.FormOpen)
	require.Equal(t, 2, ed.Selection().Step)

	assert.False(t, ed.Selectable(6, "a", grid), "source cell is never a target")
	assert.False(t, ed.Selectable(6, "c", grid), "working members cannot cover")
	assert.False(t, ed.Selectable(7, "b", grid), "cover must be on the same day")
	assert.True(t, ed.Selectable(6, "b", grid))

	res = ed.Click(6, "b", nil, grid)
	require.True(t, res.FormOpen)
	assert.Equal(t, "b", res.Draft.RelatedMemberID)
	assert.False(t, res.Draft.IsExternalSubstitute)
}

func TestQuickEditExternalSubstitution(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{6: {"a": StatusWorkday}})
	ed := NewEditor(jan2025)
	ed.StartExternalSubstitute()

	res := ed.Click(6, "a", nil, grid)
	require.True(t, res.FormOpen, "external substitution needs no second cell")
	assert.True(t, res.Draft.IsExternalSubstitute)
	assert.Equal(t, 1, ed.Selection().Step)
}

func TestQuickEditDateSwap(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{
		6: {"a": StatusWorkday, "b": StatusRest},
		7: {"a": StatusRest, "b": StatusRest},
	})
	ed := NewEditor(jan2025)
	ed.StartQuickEdit(EventDateSwap)

	ed.Click(6, "a", nil, grid)
	require.Equal(t, 2, ed.Selection().Step)

	assert.False(t, ed.Selectable(6, "b", grid), "date swap stays within one member")
	assert.True(t, ed.Selectable(7, "a", grid))

	res := ed.Click(7, "a", nil, grid)
	require.True(t, res.FormOpen)
	assert.Equal(t, "a", res.Draft.RelatedMemberID)
	assert.Equal(t, "2025-01-07", res.Draft.RelatedDate)
}

func TestQuickEditShiftSwapFourWayEligibility(t *testing.T) {
	// a works day 5, rests day 12; b rests day 5, works day 12.
	statuses := map[int]map[string]string{
		5:  {"a": StatusWorkday, "b": StatusRest},
		12: {"a": StatusRest, "b": StatusWorkday},
	}
	ed := NewEditor(jan2025)
	ed.StartQuickEdit(EventShiftSwap)
	grid := gridOf(jan2025, statuses)
	ed.Click(5, "a", nil, grid)
	require.Equal(t, 2, ed.Selection().Step)
	assert.True(t, ed.Selectable(12, "b", grid), "all four conditions hold")

	breakCondition := func(day int, member, status string) Grid {
		mutated := map[int]map[string]string{}
		for d, row := range statuses {
			cp := map[string]string{}
			for k, v := range row {
				cp[k] = v
			}
			mutated[d] = cp
		}
		mutated[day][member] = status
		return gridOf(jan2025, mutated)
	}

	assert.False(t, ed.Selectable(12, "b", breakCondition(12, "b", StatusRest)),
		"target must itself be working on the target day")
	assert.False(t, ed.Selectable(12, "b", breakCondition(12, "a", StatusWorkday)),
		"initiator must be off on the target day")
	assert.False(t, ed.Selectable(12, "b", breakCondition(5, "b", StatusWorkday)),
		"target must be off on the source day")
	assert.False(t, ed.Selectable(12, "a", grid), "same member is never a shift-swap target")

	res := ed.Click(12, "b", nil, grid)
	require.True(t, res.FormOpen)
	assert.Equal(t, "b", res.Draft.RelatedMemberID)
	assert.Equal(t, "2025-01-12", res.Draft.RelatedDate)
}

func TestCancelResetsSelection(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{6: {"a": StatusWorkday}})
	ed := NewEditor(jan2025)
	ed.StartQuickEdit(EventShiftSwap)
	ed.Click(6, "a", nil, grid)
	require.Equal(t, 2, ed.Selection().Step)

	ed.Cancel()
	assert.Equal(t, ModeIdle, ed.Mode())
	assert.Equal(t, 0, ed.Selection().Step)
	assert.Nil(t, ed.Selection().Source)
	assert.Equal(t, Event{}, ed.Draft())
}

func TestPromptFollowsStep(t *testing.T) {
	grid := gridOf(jan2025, map[int]map[string]string{6: {"a": StatusWorkday}})
	ed := NewEditor(jan2025)
	assert.Empty(t, ed.Prompt())

	ed.StartQuickEdit(EventShiftSwap)
	assert.Contains(t, ed.Prompt(), "調班")

	ed.Click(6, "a", nil, grid)
	assert.Contains(t, ed.Prompt(), "要交換的對方上班日")
}
