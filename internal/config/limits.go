package config

const (
	// MaxTitleLength is the maximum length for project and section titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxTitleLength = 255

	// MaxTopicLength is the maximum length for a project topic. Topics
	// are prompt material, not body text; a few sentences is plenty.
	MaxTopicLength = 2000

	// MaxInstructionLength is the maximum length for a refinement
	// instruction.
	MaxInstructionLength = 2000

	// MaxCommentLength is the maximum length for a feedback comment.
	MaxCommentLength = 2000

	// DefaultOutlineSections is how many section titles the planner asks
	// for when the request does not say.
	DefaultOutlineSections = 5

	// MaxOutlineSections caps how many section titles can be requested in
	// one outline call.
	MaxOutlineSections = 20
)
