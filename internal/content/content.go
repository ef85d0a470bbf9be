// Package content holds the static lesson catalog: the three stages of
// the Cocomoa Kingdom, their questions, and the bug monsters attached
// to each question.
package content

// Monster is the bug monster featured alongside a question.
type Monster struct {
	Name  string
	Emoji string
	Desc  string
}

// Question is one exercise within a stage. Stage 1 questions carry the
// full copy/choose/rewrite material; stages 2 and 3 use only the
// multiple-choice fields.
type Question struct {
	LessonIntro   string
	CopySample    string
	Text          string
	Choices       []string
	CorrectIndex  int
	RewritePrompt string
	RewriteAnswer string
	Hint          string
	Explain       string
	Monster       Monster
}

// Stage groups a themed set of questions.
type Stage struct {
	ID        int
	Name      string
	Emoji     string
	Intro     string
	ClearLine string
	Questions []Question
}

// Stages returns the full catalog in play order.
func Stages() []Stage {
	return []Stage{Stage1(), Stage2(), Stage3()}
}

// StageByID returns the stage with the given ID, or false.
func StageByID(id int) (Stage, bool) {
	for _, s := range Stages() {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}
