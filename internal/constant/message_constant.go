package constant

const (
	MsgPasswordsMismatch   = "Passwords don't match"
	MsgIdentityExists      = "User with this email or roll number already exists"
	MsgOTPExpired          = "OTP has expired or is invalid. Please try again."
	MsgOTPInvalid          = "Invalid OTP."
	MsgInvalidCredentials  = "Invalid email or password"
	MsgCredentialsRequired = "Email and password are required"
	MsgRollTaken           = "Roll number is already used by another user"

	MsgNotEnoughCandidates = "Not enough available students to create your team."
	MsgTeamGenerateFailed  = "Failed to generate team using AI."
	MsgTeamFieldsRequired  = "Team name, leader, and members are required."
	MsgTeamCreateFailed    = "Failed to create team."
	MsgNotInTeam           = "You are not part of any team yet."
	MsgTeamNotFound        = "Team not found."
	MsgSuggestionsFailed   = "Failed to generate project suggestions from AI."

	MsgChatNotFound     = "Chat not found"
	MsgPromptRequired   = "Prompt is required"
	MsgChatAIFailed     = "Failed to get response from AI"
	MsgChatConflict     = "This chat was updated by another request. Please try again."
	MsgIdeaRequired     = "Project idea is required."
	MsgLearningAIFailed = "Failed to generate learning recommendations from AI."

	MsgProjectNotFound   = "Project not found"
	MsgProjectForbidden  = "You are not authorized to delete this project"
	MsgTitleRequired     = "Title is required"
	MsgImageRequired     = "Project image is required"
	MsgImageUploadFailed = "Failed to upload image"
	MsgImageDeleteFailed = "Failed to delete project image"

	MsgOTPSent         = "OTP sent to your email successfully"
	MsgRegistered      = "User registered successfully! Please login."
	MsgLoginSuccess    = "Login successful"
	MsgLogoutSuccess   = "User logged out successfully"
	MsgProfileFetched  = "Profile fetched successfully"
	MsgProfileUpdated  = "Profile updated successfully"
	MsgUsersFetched    = "Users fetched successfully"
	MsgProjectCreated  = "Project created successfully"
	MsgProjectsFetched = "Projects fetched successfully"
	MsgProjectDeleted  = "Project deleted successfully"
	MsgTeamGenerated   = "Teammates generated successfully"
	MsgTeamCreated     = "Team created successfully with AI-assigned roles!"
	MsgTeamFetched     = "Team fetched successfully"
	MsgSuggestionsOK   = "Project suggestions generated successfully"
	MsgChatsFetched    = "Chats fetched successfully"
	MsgChatFetched     = "Chat fetched successfully"
	MsgChatReplied     = "Response generated successfully"
	MsgLearningOK      = "Learning recommendations generated successfully"
)
