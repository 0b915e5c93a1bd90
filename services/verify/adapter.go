package verify

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// Result is the only thing the core consumes from the verification
// collaborator. Confidence is recorded but not threshold-gated by the award
// path.
type Result struct {
	IsVerified      bool    `json:"isVerified"`
	Confidence      float64 `json:"confidence"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
	Analysis        string  `json:"analysis"`
}

// Adapter classifies submitted evidence through one AI call. Any collaborator
// failure is absorbed as a zero-confidence rejection; the enclosing request
// never aborts on it.
type Adapter struct {
	Chat utils.ChatFunc
}

func NewAdapter() *Adapter {
	return &Adapter{Chat: utils.CallOpenAI}
}

const verifySystemPrompt = `You are verifying evidence that a home-safety task was completed.
Respond with a JSON object only: {"isVerified": bool, "confidence": number 0-1, "rejectionReason": string, "analysis": string}.
Reject evidence that does not plausibly show the described task being done.`

// Verify judges the submitted evidence against the task's description.
func (a *Adapter) Verify(task *models.Task, evidenceURLs []string) Result {
	prompt := fmt.Sprintf(
		"Task: %s\nDescription: %s\nExpected evidence type: %s\nSubmitted evidence URLs:\n%s",
		task.Name, task.Description, task.VerificationType, strings.Join(evidenceURLs, "\n"))

	raw, err := a.Chat([]utils.ChatMessage{{Role: "user", Content: prompt}}, verifySystemPrompt)
	if err != nil {
		log.Printf("[verify] verification call failed for task %d: %v", task.ID, err)
		return Result{IsVerified: false, Confidence: 0, RejectionReason: "verification service unavailable"}
	}

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		log.Printf("[verify] malformed verification response for task %d: %v", task.ID, err)
		return Result{IsVerified: false, Confidence: 0, RejectionReason: "verification response unreadable"}
	}

	if res.Confidence < 0 {
		res.Confidence = 0
	}
	if res.Confidence > 1 {
		res.Confidence = 1
	}
	return res
}
