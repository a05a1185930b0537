package analysis

// JSON schema returned by the model:
// {
//   "overallScore": "integer (0-100)",
//   "summary": "string",
//   "strengths": ["string"],
//   "requirements": [
//     {
//       "requirement": "string",
//       "evidence": "string",
//       "rating": "integer (1-5)",
//       "gapNotes": "string",
//       "actionToImprove": "string"
//     }
//   ],
//   "missingKeywords": ["string"],
//   "nextSteps": ["string"]
// }

// Requirement scores one extracted job requirement against the CV.
type Requirement struct {
	Requirement     string `json:"requirement"`
	Evidence        string `json:"evidence"`
	Rating          int    `json:"rating"`
	GapNotes        string `json:"gapNotes"`
	ActionToImprove string `json:"actionToImprove"`
}

// Result is the structured match report. All six fields are required;
// expected cardinalities (3-5 strengths, 8-12 requirements, 3-5 next steps)
// are prompt guidance only and not enforced.
type Result struct {
	OverallScore    int           `json:"overallScore"`
	Summary         string        `json:"summary"`
	Strengths       []string      `json:"strengths"`
	Requirements    []Requirement `json:"requirements"`
	MissingKeywords []string      `json:"missingKeywords"`
	NextSteps       []string      `json:"nextSteps"`
}
