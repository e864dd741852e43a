package attachment

import (
	"github.com/google/uuid"

	"github.com/flowhub/flowhub/internal/process/model"
)

// Attachment is the metadata row for one file attached to a board task.
// The binary content lives behind a StorageDriver under Key.
type Attachment struct {
	model.BaseModel
	TaskID   uuid.UUID `gorm:"type:uuid;column:task_id;not null" json:"taskId"`
	Name     string    `gorm:"type:varchar(255);column:name;not null" json:"name"`
	Key      string    `gorm:"type:varchar(255);column:key;not null" json:"key"`
	URL      string    `gorm:"type:text;column:url" json:"url"`
	Size     int64     `gorm:"column:size" json:"size"`
	MimeType string    `gorm:"type:varchar(255);column:mime_type" json:"mimeType"`
}

func (a *Attachment) TableName() string {
	return "attachments"
}
