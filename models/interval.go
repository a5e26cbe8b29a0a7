package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Busy interval source kinds.
const (
	BusySourceBooking = "booking"
	BusySourceEvent   = "event"
)

// BusyInterval is a half-open range [Start, End) during which a workspace is
// committed. Start and End are local wall-clock values; Start < End always.
type BusyInterval struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Source   string    `json:"source"`   // "booking" or "event"
	OriginID int64     `json:"originId"` // upstream record id, for diagnostics
}

// ResourceScope selects which workspaces a query is constrained to:
// either every workspace or an explicit set of ids.
type ResourceScope struct {
	All          bool  `json:"all"`
	WorkspaceIDs []int `json:"workspaceIds,omitempty"`
}

// AllResources returns the scope covering every workspace.
func AllResources() ResourceScope {
	return ResourceScope{All: true}
}

// ScopeOf returns a scope restricted to the given workspace ids.
func ScopeOf(ids ...int) ResourceScope {
	return ResourceScope{WorkspaceIDs: ids}
}

// IsEmpty reports whether the scope selects nothing at all.
func (s ResourceScope) IsEmpty() bool {
	return !s.All && len(s.WorkspaceIDs) == 0
}

// Signature returns the canonical cache-key form of the scope:
// "ALL" for the all-resources scope, otherwise the sorted id list.
func (s ResourceScope) Signature() string {
	if s.All {
		return "ALL"
	}
	ids := make([]int, len(s.WorkspaceIDs))
	copy(ids, s.WorkspaceIDs)
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
