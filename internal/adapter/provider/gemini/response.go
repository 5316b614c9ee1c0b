package gemini

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content      *content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// firstText returns the text of the first part of the first candidate.
// ok is false when any level of the nesting is missing.
func (r generateResponse) firstText() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return "", false
	}
	return c.Parts[0].Text, true
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
