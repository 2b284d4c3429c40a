package utils

import (
	"fmt"
	"strings"
)

// Review status values stored on research, documentary and field data rows.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusRevision = "revision"
)

var statusSynonyms = map[string][]string{
	StatusPending: {
		"pending",
		"under_review",
	},
	StatusApproved: {
		"approved",
		"accept",
		"accepted",
	},
	StatusRejected: {
		"rejected",
		"reject",
		"declined",
	},
	StatusRevision: {
		"revision",
		"needs_revision",
		"revise",
	},
}

var statusAliasToCanonical = buildStatusAliasMap()

func buildStatusAliasMap() map[string]string {
	aliasMap := make(map[string]string)
	for canonical, synonyms := range statusSynonyms {
		aliasMap[canonical] = canonical
		for _, alias := range synonyms {
			if normalized := normalizeStatus(alias); normalized != "" {
				aliasMap[normalized] = canonical
			}
		}
	}
	return aliasMap
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// CanonicalStatus resolves aliases like "needs_revision" to their canonical
// status value. Unknown inputs return an error.
func CanonicalStatus(status string) (string, error) {
	normalized := normalizeStatus(status)
	if canonical, ok := statusAliasToCanonical[normalized]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unknown status '%s'", status)
}

// IsReviewTarget reports whether a canonical status is a valid review
// decision. Pending is the initial state only; no transition returns to it.
func IsReviewTarget(status string) bool {
	switch status {
	case StatusApproved, StatusRejected, StatusRevision:
		return true
	}
	return false
}
