package content

import "testing"

func TestCatalogShape(t *testing.T) {
	stages := Stages()
	if len(stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(stages))
	}

	for _, s := range stages {
		if len(s.Questions) != 3 {
			t.Errorf("stage %d: expected 3 questions, got %d", s.ID, len(s.Questions))
		}
		for qi, q := range s.Questions {
			if len(q.Choices) != 3 {
				t.Errorf("stage %d question %d: expected 3 choices, got %d", s.ID, qi, len(q.Choices))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
				t.Errorf("stage %d question %d: correct index %d out of range", s.ID, qi, q.CorrectIndex)
			}
			if q.Monster.Name == "" {
				t.Errorf("stage %d question %d: missing monster", s.ID, qi)
			}
			if q.Hint == "" || q.Explain == "" {
				t.Errorf("stage %d question %d: missing hint or explanation", s.ID, qi)
			}
		}
	}
}

func TestStage1HasGuidedMaterial(t *testing.T) {
	s := Stage1()
	for qi, q := range s.Questions {
		if q.CopySample == "" {
			t.Errorf("question %d: missing copy sample", qi)
		}
		if q.RewritePrompt == "" || q.RewriteAnswer == "" {
			t.Errorf("question %d: missing rewrite material", qi)
		}
		if q.LessonIntro == "" {
			t.Errorf("question %d: missing lesson intro", qi)
		}
	}
}

func TestStageByID(t *testing.T) {
	s, ok := StageByID(2)
	if !ok || s.Name != "Slumberwood Path" {
		t.Errorf("StageByID(2) = %q, %v", s.Name, ok)
	}
	if _, ok := StageByID(9); ok {
		t.Error("StageByID(9) should report not found")
	}
}
