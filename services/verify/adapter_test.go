package verify

import (
	"errors"
	"testing"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

func chatReturning(raw string, err error) utils.ChatFunc {
	return func(messages []utils.ChatMessage, systemPrompt string) (string, error) {
		return raw, err
	}
}

func sampleTask() *models.Task {
	return &models.Task{
		ID:               7,
		Name:             "Test smoke detectors",
		Description:      "Press the test button on every detector",
		VerificationType: catalog.VerificationPhoto,
	}
}

func TestVerifyRejectsOnCallError(t *testing.T) {
	a := &Adapter{Chat: chatReturning("", errors.New("timeout"))}
	res := a.Verify(sampleTask(), []string{"https://example.com/photo.jpg"})
	if res.IsVerified {
		t.Fatal("expected rejection on collaborator error")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", res.Confidence)
	}
	if res.RejectionReason == "" {
		t.Error("expected a rejection reason")
	}
}

func TestVerifyRejectsOnMalformedResponse(t *testing.T) {
	a := &Adapter{Chat: chatReturning("yes it looks fine", nil)}
	res := a.Verify(sampleTask(), []string{"https://example.com/photo.jpg"})
	if res.IsVerified || res.Confidence != 0 {
		t.Fatalf("got %+v, want zero-confidence rejection", res)
	}
}

func TestVerifyParsesResult(t *testing.T) {
	a := &Adapter{Chat: chatReturning(`{"isVerified": true, "confidence": 0.93, "analysis": "detector visible"}`, nil)}
	res := a.Verify(sampleTask(), []string{"https://example.com/photo.jpg"})
	if !res.IsVerified {
		t.Fatal("expected verified")
	}
	if res.Confidence != 0.93 {
		t.Errorf("confidence = %v, want 0.93", res.Confidence)
	}
	if res.Analysis != "detector visible" {
		t.Errorf("analysis = %q", res.Analysis)
	}
}

func TestVerifyClampsConfidence(t *testing.T) {
	a := &Adapter{Chat: chatReturning(`{"isVerified": true, "confidence": 3.5}`, nil)}
	if res := a.Verify(sampleTask(), nil); res.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", res.Confidence)
	}
	a = &Adapter{Chat: chatReturning(`{"isVerified": false, "confidence": -2}`, nil)}
	if res := a.Verify(sampleTask(), nil); res.Confidence != 0 {
		t.Errorf("confidence = %v, want clamped to 0", res.Confidence)
	}
}
