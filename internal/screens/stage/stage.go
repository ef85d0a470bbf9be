// Package stage runs one stage of the quest: the three-step healing
// flow of the meadow, and the choice battles of the later stages.
package stage

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/router"
	"github.com/Maho1100/minaria-quest/internal/screen"
	"github.com/Maho1100/minaria-quest/internal/session"
	"github.com/Maho1100/minaria-quest/internal/ui/components"
	"github.com/Maho1100/minaria-quest/internal/ui/layout"
)

type phase int

const (
	phaseStageIntro phase = iota
	phaseReviewOffer
	phaseLesson
	phaseCopy
	phaseCopyResult
	phaseChoice
	phaseChoiceResult
	phaseRewrite
	phaseRewriteResult
	phaseStageClear
)

type voiceDoneMsg struct{}

type saveResultMsg struct {
	err error
}

const saveWarning = "Couldn't save your progress just now; your XP is safe for this session."

// StageScreen drives one stage from intro to clear.
type StageScreen struct {
	sess    *session.Session
	stage   content.Stage
	phase   phase
	code    components.CodeInput
	mc      components.MultiChoice
	result  quest.Result
	preview quest.Preview
	// feedback is the inline nudge shown under the input on a wrong
	// or empty submission.
	feedback string
	// notice warns about a failed save; progress stays in memory.
	notice string
}

var _ screen.Screen = (*StageScreen)(nil)
var _ screen.KeyHintProvider = (*StageScreen)(nil)

// New creates a StageScreen for the given stage.
func New(sess *session.Session, stageID int) *StageScreen {
	st, _ := content.StageByID(stageID)
	s := &StageScreen{
		sess:  sess,
		stage: st,
		code:  components.NewCodeInput("", 200),
	}
	if sess.State.Stage(stageID).Cleared {
		s.phase = phaseReviewOffer
	}
	return s
}

func (s *StageScreen) Init() tea.Cmd {
	return s.code.Init()
}

func (s *StageScreen) Title() string {
	return s.stage.Emoji + " " + s.stage.Name
}

func (s *StageScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseCopy, phaseRewrite:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Cast the line"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseChoice:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Choose"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseStageClear:
		return []layout.KeyHint{
			{Key: "R", Description: "Review the stage"},
			{Key: "Enter", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *StageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case voiceDoneMsg:
		return s, nil
	case saveResultMsg:
		if msg.err != nil {
			s.notice = saveWarning
		} else {
			s.notice = ""
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseCopy || s.phase == phaseRewrite {
		var cmd tea.Cmd
		s.code, cmd = s.code.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StageScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseStageIntro:
		if msg.String() == "enter" {
			s.enterQuestion()
		}
		return s, nil

	case phaseReviewOffer:
		if msg.String() == "enter" {
			s.startReview()
			s.phase = phaseStageIntro
		}
		return s, nil

	case phaseLesson:
		if msg.String() == "enter" {
			if s.stage.ID == 1 {
				s.sess.State.Stage1Begin()
				s.code.Reset()
				s.feedback = ""
				s.phase = phaseCopy
			} else {
				s.openChoice()
			}
		}
		return s, nil

	case phaseCopy:
		if msg.String() == "enter" {
			return s, s.submitCopy()
		}
		var cmd tea.Cmd
		s.code, cmd = s.code.Update(msg)
		return s, cmd

	case phaseCopyResult:
		if msg.String() == "enter" {
			s.sess.State.Stage1ToChoice()
			s.openChoice()
		}
		return s, nil

	case phaseChoice:
		return s, s.handleChoiceKey(msg)

	case phaseChoiceResult:
		if msg.String() == "enter" {
			s.advanceFromChoice()
		}
		return s, nil

	case phaseRewrite:
		if msg.String() == "enter" {
			return s, s.submitRewrite()
		}
		var cmd tea.Cmd
		s.code, cmd = s.code.Update(msg)
		return s, cmd

	case phaseRewriteResult:
		if msg.String() == "enter" {
			s.sess.State.Stage1NextQuestion()
			if _, ok := s.sess.State.Stage1Question(); ok {
				s.phase = phaseLesson
			} else {
				return s, s.enterStageClear()
			}
		}
		return s, nil

	case phaseStageClear:
		switch msg.String() {
		case "r":
			s.startReview()
			s.phase = phaseStageIntro
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

// enterQuestion opens the current question, or the clear view when the
// run is already finished.
func (s *StageScreen) enterQuestion() {
	if _, ok := s.question(); !ok {
		s.phase = phaseStageClear
		return
	}
	s.phase = phaseLesson
}

func (s *StageScreen) question() (content.Question, bool) {
	if s.stage.ID == 1 {
		return s.sess.State.Stage1Question()
	}
	return s.sess.State.FlatQuestion(s.stage.ID)
}

func (s *StageScreen) startReview() {
	if s.stage.ID == 1 {
		s.sess.State.Stage1StartReview()
	} else {
		s.sess.State.FlatStartReview(s.stage.ID)
	}
}

func (s *StageScreen) openChoice() {
	q, ok := s.question()
	if !ok {
		s.phase = phaseStageClear
		return
	}
	s.mc = components.NewMultiChoice(q.Text, q.Choices, q.CorrectIndex)
	s.feedback = ""
	s.phase = phaseChoice
}

func (s *StageScreen) handleChoiceKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch {
	case key >= "1" && key <= "9":
		idx := int(key[0] - '1')
		if idx < len(s.mc.Options) {
			s.mc.Choose(idx)
			return s.gradeChoice()
		}
	case key == "enter":
		s.mc.Choose(s.mc.Selected)
		return s.gradeChoice()
	default:
		s.mc, _ = s.mc.Update(msg)
	}
	return nil
}

func (s *StageScreen) gradeChoice() tea.Cmd {
	state := s.sess.State
	questionIdx := state.Stage(s.stage.ID).Index

	var res quest.Result
	if s.stage.ID == 1 {
		res = state.SubmitStage1Choice(s.mc.ChosenIndex)
	} else {
		res = state.SubmitFlatChoice(s.stage.ID, s.mc.ChosenIndex)
	}
	s.result = res
	s.phase = phaseChoiceResult

	step := quest.StepChoice
	if s.stage.ID != 1 {
		step = quest.Step(0)
	}
	return s.recordCmd(questionIdx, step, s.mc.Options[s.mc.ChosenIndex], res)
}

func (s *StageScreen) advanceFromChoice() {
	if !s.result.Correct {
		// Retry the same question with a fresh selector.
		s.openChoice()
		return
	}

	if s.stage.ID == 1 {
		s.sess.State.Stage1ToRewrite()
		s.code.Reset()
		s.feedback = ""
		s.phase = phaseRewrite
		return
	}

	// Choice-only stages advance on their own.
	if _, ok := s.question(); ok {
		s.phase = phaseLesson
	} else {
		s.phase = phaseStageClear
	}
}

func (s *StageScreen) submitCopy() tea.Cmd {
	state := s.sess.State
	questionIdx := state.Stage(1).Index
	submitted := s.code.Value()

	res := state.SubmitCopy(submitted)
	if !res.Correct {
		s.feedback = res.Message
		return nil
	}

	s.result = res
	s.preview = quest.RenderPreview(submitted)
	s.phase = phaseCopyResult
	return s.recordCmd(questionIdx, quest.StepCopy, submitted, res)
}

func (s *StageScreen) submitRewrite() tea.Cmd {
	state := s.sess.State
	questionIdx := state.Stage(1).Index
	submitted := s.code.Value()

	res := state.SubmitRewrite(submitted)
	if !res.Correct {
		s.feedback = res.Message
		return nil
	}

	s.result = res
	s.preview = quest.RenderPreview(submitted)
	s.phase = phaseRewriteResult
	return s.recordCmd(questionIdx, quest.StepRewrite, submitted, res)
}

func (s *StageScreen) enterStageClear() tea.Cmd {
	s.phase = phaseStageClear
	return s.speakCmd(s.stage.ClearLine)
}

// recordCmd persists the graded answer off the update loop.
func (s *StageScreen) recordCmd(question int, step quest.Step, submitted string, res quest.Result) tea.Cmd {
	stageID := s.stage.ID

	cmds := []tea.Cmd{s.persistCmd(stageID, question, step, submitted, res)}

	// A flat stage finishing its last question lands on the clear view
	// without passing through advanceFromChoice.
	if stageID != 1 && res.Correct {
		if _, ok := s.question(); !ok {
			cmds = append(cmds, s.speakCmd(s.stage.ClearLine))
		}
	}
	return tea.Batch(cmds...)
}

// persistCmd writes the answer and reports how the save went.
func (s *StageScreen) persistCmd(stageID, question int, step quest.Step, submitted string, res quest.Result) tea.Cmd {
	sess := s.sess
	return func() tea.Msg {
		err := sess.RecordAnswer(context.Background(), stageID, question, step, submitted, res)
		return saveResultMsg{err: err}
	}
}

// speakCmd reads a line aloud in the background when voice is wired.
func (s *StageScreen) speakCmd(line string) tea.Cmd {
	if s.sess.Voice == nil {
		return nil
	}
	sess := s.sess
	return func() tea.Msg {
		_, _ = sess.Voice.SpeakToFile(context.Background(), line, sess.VoiceDir)
		return voiceDoneMsg{}
	}
}
