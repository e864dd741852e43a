package template

import "github.com/flowhub/flowhub/internal/process/model"

// Template is a pre-built process definition from the built-in catalog.
// The catalog ships with the binary; templates are read-only and identified
// by small integer IDs rather than database UUIDs.
type Template struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Stages      model.StageList `json:"stages"`
}

func intPtr(v int) *int { return &v }

// catalog holds the built-in templates. Stage IDs are namespaced per
// template so processes instantiated from different templates never share
// stage identifiers.
var catalog = []Template{
	{
		ID:          1,
		Name:        "Employee Onboarding",
		Description: "Comprehensive employee onboarding process from initial paperwork to team integration",
		Category:    "hr",
		Icon:        "UserPlus",
		Color:       "from-blue-500 to-blue-600",
		Stages: model.StageList{
			{ID: "onboard-1", Order: 1, Name: "Documentation", Title: "Paperwork & Documentation", Description: "Collect and process all required employment documents, contracts, and legal paperwork", EstimatedDuration: "1 day", StepType: model.StepTypeManual, WIPLimit: intPtr(10), Color: "#6B7280"},
			{ID: "onboard-2", Order: 2, Name: "Setup", Title: "Account & Equipment Setup", Description: "Create user accounts, assign equipment, and configure access to necessary systems and tools", EstimatedDuration: "2-3 hours", StepType: model.StepTypeManual, WIPLimit: intPtr(5), Color: "#3B82F6"},
			{ID: "onboard-3", Order: 3, Name: "Training", Title: "Orientation & Training", Description: "Conduct company orientation, role-specific training, and introduce team members and processes", EstimatedDuration: "3-5 days", StepType: model.StepTypeManual, WIPLimit: intPtr(3), Color: "#F59E0B"},
			{ID: "onboard-4", Order: 4, Name: "Integration", Title: "Team Integration", Description: "Employee is fully integrated into the team and ready to contribute independently", EstimatedDuration: "Ongoing", StepType: model.StepTypeManual, Color: "#10B981"},
		},
	},
	{
		ID:          2,
		Name:        "Invoice Approval",
		Description: "Streamlined invoice processing and approval workflow for finance teams",
		Category:    "finance",
		Icon:        "Receipt",
		Color:       "from-green-500 to-green-600",
		Stages: model.StageList{
			{ID: "invoice-1", Order: 1, Name: "Received", Title: "Invoice Received", Description: "New invoices received and logged into the system for processing", EstimatedDuration: "Immediate", StepType: model.StepTypeAutomated, WIPLimit: intPtr(20), Color: "#6B7280"},
			{ID: "invoice-2", Order: 2, Name: "Review", Title: "Initial Review", Description: "Verify invoice details, check against purchase orders, and validate amounts", EstimatedDuration: "1 hour", StepType: model.StepTypeManual, WIPLimit: intPtr(10), Color: "#3B82F6"},
			{ID: "invoice-3", Order: 3, Name: "Approval", Title: "Manager Approval", Description: "Awaiting manager approval for payment authorization", EstimatedDuration: "1-2 days", StepType: model.StepTypeApproval, WIPLimit: intPtr(5), Color: "#F59E0B"},
			{ID: "invoice-4", Order: 4, Name: "Paid", Title: "Payment Processed", Description: "Invoice approved and payment has been processed", EstimatedDuration: "Immediate", StepType: model.StepTypeAutomated, Color: "#10B981"},
		},
	},
	{
		ID:          3,
		Name:        "Product Launch",
		Description: "Complete product launch process from planning to post-launch analysis",
		Category:    "product",
		Icon:        "Rocket",
		Color:       "from-purple-500 to-purple-600",
		Stages: model.StageList{
			{ID: "launch-1", Order: 1, Name: "Planning", Title: "Launch Planning", Description: "Define launch strategy, timeline, resources, and success metrics", EstimatedDuration: "1-2 weeks", StepType: model.StepTypeManual, WIPLimit: intPtr(5), Color: "#6B7280"},
			{ID: "launch-2", Order: 2, Name: "Preparation", Title: "Pre-Launch Preparation", Description: "Execute marketing campaigns, prepare materials, and coordinate with teams", EstimatedDuration: "3-4 weeks", StepType: model.StepTypeManual, WIPLimit: intPtr(3), Color: "#3B82F6"},
			{ID: "launch-3", Order: 3, Name: "Launch", Title: "Product Launch", Description: "Official product launch and immediate post-launch monitoring", EstimatedDuration: "1 week", StepType: model.StepTypeManual, WIPLimit: intPtr(2), Color: "#F59E0B"},
			{ID: "launch-4", Order: 4, Name: "Analysis", Title: "Post-Launch Analysis", Description: "Analyze launch results, gather feedback, and plan improvements", EstimatedDuration: "2 weeks", StepType: model.StepTypeReview, Color: "#10B981"},
		},
	},
	{
		ID:          4,
		Name:        "Customer Support Ticket",
		Description: "Customer support ticket resolution workflow for service teams",
		Category:    "support",
		Icon:        "Headphones",
		Color:       "from-red-500 to-red-600",
		Stages: model.StageList{
			{ID: "ticket-1", Order: 1, Name: "New", Title: "New Ticket", Description: "New support tickets from customers awaiting initial triage", EstimatedDuration: "Immediate", StepType: model.StepTypeAutomated, WIPLimit: intPtr(50), Color: "#6B7280"},
			{ID: "ticket-2", Order: 2, Name: "In Progress", Title: "In Progress", Description: "Tickets actively being worked on by support agents", EstimatedDuration: "2-4 hours", StepType: model.StepTypeManual, WIPLimit: intPtr(15), Color: "#3B82F6"},
			{ID: "ticket-3", Order: 3, Name: "Escalated", Title: "Escalated", Description: "Complex issues escalated to senior support or development teams", EstimatedDuration: "1-3 days", StepType: model.StepTypeManual, WIPLimit: intPtr(5), Color: "#F59E0B"},
			{ID: "ticket-4", Order: 4, Name: "Resolved", Title: "Resolved", Description: "Tickets that have been resolved and closed", EstimatedDuration: "Immediate", StepType: model.StepTypeManual, Color: "#10B981"},
		},
	},
	{
		ID:          5,
		Name:        "Software Development",
		Description: "Agile software development workflow from backlog to deployment",
		Category:    "development",
		Icon:        "Code",
		Color:       "from-indigo-500 to-indigo-600",
		Stages: model.StageList{
			{ID: "dev-1", Order: 1, Name: "Backlog", Title: "Product Backlog", Description: "Feature requests and tasks waiting to be prioritized and planned", EstimatedDuration: "Ongoing", StepType: model.StepTypeManual, WIPLimit: intPtr(20), Color: "#6B7280"},
			{ID: "dev-2", Order: 2, Name: "In Progress", Title: "Development", Description: "Active development work on features and bug fixes", EstimatedDuration: "3-7 days", StepType: model.StepTypeManual, WIPLimit: intPtr(8), Color: "#3B82F6"},
			{ID: "dev-3", Order: 3, Name: "Review", Title: "Code Review", Description: "Peer review and testing of completed development work", EstimatedDuration: "1-2 days", StepType: model.StepTypeReview, WIPLimit: intPtr(5), Color: "#F59E0B"},
			{ID: "dev-4", Order: 4, Name: "Done", Title: "Deployed", Description: "Features that have been deployed to production", EstimatedDuration: "Immediate", StepType: model.StepTypeAutomated, Color: "#10B981"},
		},
	},
	{
		ID:          6,
		Name:        "Content Creation",
		Description: "Content creation workflow from ideation to publication",
		Category:    "marketing",
		Icon:        "FileText",
		Color:       "from-yellow-500 to-yellow-600",
		Stages: model.StageList{
			{ID: "content-1", Order: 1, Name: "Ideas", Title: "Content Ideas", Description: "Brainstorm content topics and create content briefs", EstimatedDuration: "1-2 hours", StepType: model.StepTypeManual, WIPLimit: intPtr(15), Color: "#6B7280"},
			{ID: "content-2", Order: 2, Name: "Writing", Title: "Content Creation", Description: "Write and create the actual content based on the brief", EstimatedDuration: "4-8 hours", StepType: model.StepTypeManual, WIPLimit: intPtr(5), Color: "#3B82F6"},
			{ID: "content-3", Order: 3, Name: "Review", Title: "Editorial Review", Description: "Review content for quality, accuracy, and brand consistency", EstimatedDuration: "1-2 hours", StepType: model.StepTypeReview, WIPLimit: intPtr(3), Color: "#F59E0B"},
			{ID: "content-4", Order: 4, Name: "Published", Title: "Published", Description: "Content has been published and is live", EstimatedDuration: "30 minutes", StepType: model.StepTypeAutomated, Color: "#10B981"},
		},
	},
}
