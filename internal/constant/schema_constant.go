package constant

const TeamCandidatesSchema = `{
	"type": "array",
	"minItems": 4,
	"maxItems": 4,
	"uniqueItems": true,
	"items": {"type": "string", "minLength": 1}
}`

const RoleAssignmentSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["id", "role"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"role": {"enum": ["Leader", "Frontend", "Backend", "Designer", "Tester", "Fullstack", "DevOps", "QA", "Member"]}
		}
	}
}`

const ProjectSuggestionsSchema = `{
	"type": "array",
	"minItems": 3,
	"maxItems": 3,
	"items": {
		"type": "object",
		"required": ["title", "description", "requiredSkills"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"requiredSkills": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

const LearningRecommendationsSchema = `{
	"type": "array",
	"minItems": 3,
	"maxItems": 3,
	"items": {
		"type": "object",
		"required": ["title", "channel", "videoId"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"channel": {"type": "string", "minLength": 1},
			"videoId": {"type": "string", "minLength": 1}
		}
	}
}`
