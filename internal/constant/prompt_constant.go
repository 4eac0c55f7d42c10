package constant

// Prompt templates for the AI adapter. Placeholders are filled with fmt.Sprintf
// in the order they appear.

const TeamCandidatesPromptV1 = `You are an expert at building project teams for college students. Your task is to select the 4 best teammates for a given student from a list of available candidates. Build a well-rounded team with complementary skills.

My Profile:
%s

Available Candidates (JSON format):
%s

Your Task:
Respond with ONLY a JSON array containing the exact "id" strings of the 4 best candidates you have selected. Do not add any other text, explanation, or formatting like ` + "```json" + `.

Example Response:
["3f0c2a8e-8d1b-4b8e-9a43-0a6c1f7e2b11", "7b9d1c44-2e6f-4d0a-8f6b-5c2e9a1d3f22", "a1e4f6b2-9c3d-4e8f-b7a5-6d2c1e0f9a33", "d6c2b8a4-1f3e-4a7d-9b5c-8e0f2a6d4c44"]`

const RoleAssignmentPromptV1 = `You are an expert project manager. Given a list of team members with their skills, assign a suitable role to each member.
Available roles: %s.
The user with id %s must be assigned the 'Leader' role. No other member may be 'Leader'.
Ensure the roles are diverse and complement each other based on their skills.

Team Members (JSON):
%s

Designated Leader ID: "%s"

Your Task:
Respond with ONLY a JSON array of objects, where each object has the member's "id" and their assigned "role". Do not add any explanation or formatting.

Example Response:
[ {"id": "%s", "role": "Leader"}, {"id": "some_other_id", "role": "Frontend"} ]`

const ProjectSuggestionsPromptV1 = `You are a mentor for student hackathon teams. Suggest 3 project ideas that this team could build, based on the combined skills of its members.

Team Name: %s
Member Skills (JSON):
%s

Your Task:
Respond with ONLY a JSON array of 3 objects. Each object must have the keys "title", "description" (one or two sentences) and "requiredSkills" (array of strings). Do not add any other text or formatting.`

const LearningRecommendationsPromptV1 = `You are an expert tech education curator. Your task is to recommend 3 relevant and popular YouTube video tutorials for a student.

Student's Existing Skills:
%s

Student's Project Idea:
"%s"

Your Task:
Find real, popular, and currently available YouTube videos. Respond with ONLY a valid JSON array of 3 objects. Each object must have these keys: "title", "channel", and a "videoId" that is currently working on YouTube. Do not add any extra text, explanations, or markdown formatting like ` + "```json" + `.

Example Response:
[
  {
    "title": "React JS Crash Course",
    "channel": "Traversy Media",
    "videoId": "w7ejDZ8o_Q8"
  }
]`
