package identity

import (
	"context"

	"github.com/flowhub/flowhub/internal/process/model"
)

// Member is a person known to the board: the identity stamped onto step
// statuses and used as the default assignee. Members carry no permissions —
// authorization is out of scope, this is attribution only.
type Member struct {
	model.BaseModel
	Token string `gorm:"type:varchar(255);column:token;uniqueIndex;not null" json:"-"`
	Name  string `gorm:"type:varchar(255);column:name;not null" json:"name"`
	Email string `gorm:"type:varchar(255);column:email" json:"email"`
}

func (m *Member) TableName() string {
	return "members"
}

type contextKey string

const memberContextKey contextKey = "flowhub.member"

// SystemActor is the attribution used when no caller identity is available.
const SystemActor = "system"

// WithMember returns a context carrying the resolved member.
func WithMember(ctx context.Context, member *Member) context.Context {
	return context.WithValue(ctx, memberContextKey, member)
}

// FromContext returns the member carried by the context, or nil.
func FromContext(ctx context.Context) *Member {
	member, _ := ctx.Value(memberContextKey).(*Member)
	return member
}

// ActorName returns the display name to attribute writes to: the resolved
// member's name, or SystemActor when the request was anonymous.
func ActorName(ctx context.Context) string {
	if member := FromContext(ctx); member != nil && member.Name != "" {
		return member.Name
	}
	return SystemActor
}
