package gemini

import "fmt"

// BuildPrompt embeds both texts verbatim into the analysis instruction.
func BuildPrompt(cvText, jdText string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) consultant and Senior Technical Recruiter.
Analyze the following Candidate CV against the Job Description.

Perform a deep semantic analysis (e.g., understand that "Led a team" implies "Management").
Be strict but fair. Focus on actionable insights.

Task:
1. Extract 8-12 core requirements (Technical, Soft Skills, Experience, Education, Domain).
2. Rate each requirement match from 1-5.
3. Identify missing keywords that an ATS would scan for.
4. Provide specific actions to improve the CV.

Candidate CV:
%s

Job Description:
%s`, cvText, jdText)
}
