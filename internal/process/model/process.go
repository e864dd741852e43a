package model

import "sort"

// StepType classifies how work in a stage is carried out.
type StepType string

const (
	StepTypeManual    StepType = "Manual"
	StepTypeAutomated StepType = "Automated"
	StepTypeReview    StepType = "Review"
	StepTypeApproval  StepType = "Approval"
)

// Stage is one step of a process definition. Stages are stored inline on the
// owning process as a JSONB array; once an instance references them the
// instance keeps its own denormalized snapshots, so editing a definition never
// rewrites running instances.
type Stage struct {
	ID                string   `json:"id"`                          // unique within the owning process
	Order             int      `json:"order"`                       // 1-based sequence position
	Name              string   `json:"name"`                        // short display label
	Title             string   `json:"title"`                       // full display title
	Description       string   `json:"description"`                 // free-text display metadata
	StepType          StepType `json:"stepType"`                    // Manual | Automated | Review | Approval
	WIPLimit          *int     `json:"wipLimit"`                    // advisory cap on concurrent tasks; nil = unbounded
	EstimatedDuration string   `json:"estimatedDuration,omitempty"` // free-text duration hint
	Color             string   `json:"color,omitempty"`             // UI accent color
}

// StageList is the ordered stage sequence of a process, persisted as JSONB.
type StageList []Stage

// Sort orders stages by ascending Order in place.
func (sl StageList) Sort() {
	sort.SliceStable(sl, func(i, j int) bool { return sl[i].Order < sl[j].Order })
}

// ByID returns the stage with the given ID, or nil when absent.
func (sl StageList) ByID(stageID string) *Stage {
	for i := range sl {
		if sl[i].ID == stageID {
			return &sl[i]
		}
	}
	return nil
}

// Process is a reusable named workflow definition: an ordered sequence of
// stages plus display metadata. A process with zero stages is valid to store
// but cannot be started as an instance.
type Process struct {
	BaseModel
	Name         string    `gorm:"type:varchar(255);column:name;not null" json:"name"`
	Owner        string    `gorm:"type:varchar(255);column:owner" json:"owner"`
	Tags         TagList   `gorm:"type:jsonb;column:tags;serializer:json" json:"tags"`
	Stages       StageList `gorm:"type:jsonb;column:stages;not null;serializer:json" json:"stages"`
	TemplateID   *int      `gorm:"column:template_id" json:"templateId,omitempty"`                       // set when created from the built-in catalog
	TemplateName string    `gorm:"type:varchar(255);column:template_name" json:"templateName,omitempty"` // catalog template name at creation time
}

func (p *Process) TableName() string {
	return "processes"
}

// TagList is a free-form set of labels persisted as JSONB.
type TagList []string

// CreateProcessDTO is the request body for creating or replacing a process.
type CreateProcessDTO struct {
	Name   string    `json:"name" binding:"required"`
	Owner  string    `json:"owner"`
	Tags   TagList   `json:"tags"`
	Stages StageList `json:"stages"`
}

// ProcessFilter narrows process listings.
type ProcessFilter struct {
	Owner  *string
	Tag    *string
	Offset *int
	Limit  *int
}

// StageLoad reports the advisory WIP situation of one stage: how many tasks
// currently sit in it versus its configured cap. OverLimit is a display hint,
// never an enforcement signal.
type StageLoad struct {
	StageID   string `json:"stageId"`
	StageName string `json:"stageName"`
	TaskCount int    `json:"taskCount"`
	WIPLimit  *int   `json:"wipLimit"`
	OverLimit bool   `json:"overLimit"`
}
