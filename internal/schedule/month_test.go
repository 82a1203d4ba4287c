package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthDays(t *testing.T) {
	assert.Equal(t, 31, Month{2025, 1}.Days())
	assert.Equal(t, 28, Month{2025, 2}.Days())
	assert.Equal(t, 29, Month{2024, 2}.Days())
	assert.Equal(t, 30, Month{2025, 4}.Days())
}

func TestMonthDayOf(t *testing.T) {
	m := Month{2025, 1}

	d, ok := m.DayOf("2025-01-15")
	assert.True(t, ok)
	assert.Equal(t, 15, d)

	_, ok = m.DayOf("2025-02-01")
	assert.False(t, ok)
	_, ok = m.DayOf("2025-01-32")
	assert.False(t, ok)
	_, ok = m.DayOf("")
	assert.False(t, ok)
	_, ok = m.DayOf("not-a-date")
	assert.False(t, ok)
}

func TestMonthNavigation(t *testing.T) {
	assert.Equal(t, Month{2024, 12}, Month{2025, 1}.Prev())
	assert.Equal(t, Month{2026, 1}, Month{2025, 12}.Next())
	assert.Equal(t, Month{2025, 6}, Month{2025, 7}.Prev())
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusWeeklyOff, DefaultStatus(time.Sunday))
	assert.Equal(t, StatusRest, DefaultStatus(time.Saturday))
	assert.Equal(t, StatusWorkday, DefaultStatus(time.Wednesday))
	assert.Equal(t, StatusWeeklyOff, DefaultStatusFor("2025-01-05"))
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "01-15", ShortDate("2025-01-15"))
	assert.Empty(t, ShortDate("2025-1"))
}

func TestNickname(t *testing.T) {
	assert.Equal(t, "小明", Nickname("王小明"))
	assert.Equal(t, "阿美", Nickname("阿美"))
	assert.Equal(t, "玲", Nickname("玲"))
	assert.Equal(t, "大華", Nickname("歐陽大華"), "rune based, not byte based")
}
