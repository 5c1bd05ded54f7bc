package model

type WarningCode string

const (
	// WarnDirectDrugDiseaseEdge flags a drug->disease edge that survived
	// mediation. It indicates an upstream contract bug; the edge is dropped.
	WarnDirectDrugDiseaseEdge WarningCode = "DIRECT_DRUG_DISEASE_EDGE"

	// WarnOrphanRemoved flags a node pruned for having no remaining edges.
	WarnOrphanRemoved WarningCode = "ORPHAN_REMOVED"

	// WarnDiseaseNoIncoming flags a disease node with zero incoming edges.
	WarnDiseaseNoIncoming WarningCode = "DISEASE_NO_INCOMING"

	// WarnWeakEvidenceLinkage flags an evidence or trial node touched by
	// fewer than two edges.
	WarnWeakEvidenceLinkage WarningCode = "WEAK_EVIDENCE_LINKAGE"

	// WarnEmptyResultMismatch flags a surviving edge set with no surviving
	// nodes, or the reverse.
	WarnEmptyResultMismatch WarningCode = "EMPTY_RESULT_MISMATCH"
)

// Warning is a diagnostic record. Warnings are never raised as failures; they
// exist so anomalies are observable without the pipeline logging as a side
// effect.
type Warning struct {
	Code    WarningCode    `json:"code"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}
