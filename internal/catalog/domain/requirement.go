package domain

import (
	"time"

	shareddomain "predial-server/internal/shared_kernel/domain"
)

// ComplianceRequirement describes one normative maintenance obligation for an
// asset type. Periodicity is carried in its wire form ("30d", "6m", "1y")
// and parsed by the maintenance context when plans are generated.
type ComplianceRequirement struct {
	ID              shareddomain.ID
	AssetTypeSlug   string
	Code            string
	Title           string
	Description     string
	Periodicity     string
	ResponsibleRole string
	IsLegal         bool
	Checklist       []ChecklistItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
