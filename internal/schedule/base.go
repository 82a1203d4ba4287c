package schedule

import "sort"

// Member is the roster entry the resolver and projector need. Inactive
// members are kept in the grid; filtering is a display concern.
type Member struct {
	ID     string
	Name   string
	Title  string
	Team   string
	Status string
}

// MemberActive is the employment status of a member still on the roster.
const MemberActive = "在職"

// Override is one persisted exception to the computed default status.
type Override struct {
	ID       string
	Date     string // ISO "YYYY-MM-DD"
	MemberID string
	Status   string
}

// Base maps day of month to member ID to plain status.
type Base map[int]map[string]string

// OverrideKey builds the "date_memberID" key overrides and pending edits
// are indexed by.
func OverrideKey(date, memberID string) string {
	return date + "_" + memberID
}

// Resolve computes the base schedule for a month: the weekday default for
// every (day, member), overlaid by persisted overrides, overlaid by pending
// unsaved edits. Pending edits are keyed by full date so entries belonging
// to another month simply never match.
func Resolve(m Month, members []Member, overrides []Override, pending map[string]string) Base {
	byKey := make(map[string]string, len(overrides))
	for _, o := range overrides {
		byKey[OverrideKey(o.Date, o.MemberID)] = o.Status
	}

	result := make(Base, m.Days())
	for d := 1; d <= m.Days(); d++ {
		row := make(map[string]string, len(members))
		date := m.DateOf(d)
		def := DefaultStatus(m.Weekday(d))
		for _, mb := range members {
			key := OverrideKey(date, mb.ID)
			switch {
			case pending[key] != "":
				row[mb.ID] = pending[key]
			case byKey[key] != "":
				row[mb.ID] = byKey[key]
			default:
				row[mb.ID] = def
			}
		}
		result[d] = row
	}
	return result
}

// ActiveTeamMembers filters the roster down to active members of one team,
// preserving input order.
func ActiveTeamMembers(members []Member, team string) []Member {
	var out []Member
	for _, m := range members {
		if m.Team == team && m.Status == MemberActive {
			out = append(out, m)
		}
	}
	return out
}

// Teams returns the sorted distinct team names present on the roster.
func Teams(members []Member) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range members {
		if m.Team != "" && !seen[m.Team] {
			seen[m.Team] = true
			out = append(out, m.Team)
		}
	}
	sort.Strings(out)
	return out
}
