package stage

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/ui/components"
	"github.com/Maho1100/minaria-quest/internal/ui/theme"
)

func (s *StageScreen) View(width, height int) string {
	var body string

	switch s.phase {
	case phaseStageIntro:
		body = s.viewStageIntro()
	case phaseReviewOffer:
		body = s.viewReviewOffer()
	case phaseLesson:
		body = s.viewLesson()
	case phaseCopy:
		body = s.viewCopy()
	case phaseCopyResult:
		body = s.viewRunResult("Run the spell and see:")
	case phaseChoice:
		body = s.viewChoice()
	case phaseChoiceResult:
		body = s.viewChoiceResult()
	case phaseRewrite:
		body = s.viewRewrite()
	case phaseRewriteResult:
		body = s.viewRunResult("Your very own spell:")
	case phaseStageClear:
		body = s.viewStageClear()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *StageScreen) viewStageIntro() string {
	return strings.Join([]string{
		theme.Title.Render(s.stage.Emoji + " " + s.stage.Name),
		"",
		theme.Card.Render(theme.Body.Render(s.stage.Intro)),
		"",
		theme.Hint.Render("press enter to set off"),
	}, "\n")
}

func (s *StageScreen) viewReviewOffer() string {
	return strings.Join([]string{
		theme.Title.Render(s.stage.Emoji + " " + s.stage.Name),
		"",
		theme.Correct.Render("You've already cleared this stage. ✅"),
		theme.Body.Render("A review run is open, for practice, no extra XP."),
		"",
		theme.Hint.Render("enter to review  ·  esc to go back"),
	}, "\n")
}

// header shows the stage name and question progress above a question.
func (s *StageScreen) header() string {
	done, total := s.sess.State.StageDone(s.stage.ID)
	bar := components.NewProgressBar(
		fmt.Sprintf("%s %s", s.stage.Emoji, s.stage.Name),
		float64(done)/float64(total), false, 44)

	line := bar.View() + theme.Hint.Render(fmt.Sprintf("  %d/%d", done, total))
	if s.sess.State.Stage(s.stage.ID).Review {
		line += theme.Hint.Render("  (review)")
	}
	if s.notice != "" {
		line += "\n" + theme.Incorrect.Render(s.notice)
	}
	return line
}

func (s *StageScreen) monsterCard() string {
	q, ok := s.question()
	if !ok {
		return ""
	}
	m := q.Monster
	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(m.Emoji+" "+m.Name) +
			"\n" + theme.Hint.Render(m.Desc))
}

func codeCard(label, code string) string {
	return theme.Card.Render(
		theme.Hint.Render(label) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(">>> "+code))
}

func (s *StageScreen) viewLesson() string {
	q, ok := s.question()
	if !ok {
		return ""
	}

	sections := []string{s.header(), "", s.monsterCard(), "",
		theme.Card.Render(theme.Body.Render(q.LessonIntro))}

	if s.stage.ID == 1 {
		sections = append(sections, "", codeCard("Minaria's sample", q.CopySample))
	}
	sections = append(sections, "", theme.Hint.Render("press enter when you're ready"))
	return strings.Join(sections, "\n")
}

func (s *StageScreen) viewCopy() string {
	q, ok := s.question()
	if !ok {
		return ""
	}

	sections := []string{
		s.header(),
		"",
		s.monsterCard(),
		"",
		codeCard("Copy this line exactly", q.CopySample),
		"",
		s.code.View(),
	}
	if s.feedback != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.feedback))
	}
	return strings.Join(sections, "\n")
}

// viewRunResult shows the simulated run of the learner's line plus the
// grading message.
func (s *StageScreen) viewRunResult(label string) string {
	sections := []string{s.header(), ""}

	output := s.preview.Output
	if s.preview.Kind == quest.PreviewSilent {
		output = "(nothing appears, and that's exactly right)"
	}
	run := theme.Hint.Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(">>> "+s.code.Value())
	if output != "" {
		run += "\n" + theme.Body.Render(output)
	}
	sections = append(sections, theme.Card.Render(run))

	if s.preview.Note != "" {
		sections = append(sections, theme.Hint.Render(s.preview.Note))
	}
	sections = append(sections, "", s.resultLines(), "", theme.Hint.Render("enter to continue"))
	return strings.Join(sections, "\n")
}

func (s *StageScreen) viewChoice() string {
	return strings.Join([]string{
		s.header(),
		"",
		s.monsterCard(),
		"",
		s.mc.View(),
	}, "\n")
}

func (s *StageScreen) viewChoiceResult() string {
	sections := []string{s.header(), "", s.mc.View(), s.resultLines()}

	if s.result.Correct {
		sections = append(sections, "", theme.Hint.Render("enter to continue"))
	} else {
		sections = append(sections, "", theme.Hint.Render("enter to try again"))
	}
	return strings.Join(sections, "\n")
}

func (s *StageScreen) viewRewrite() string {
	q, ok := s.question()
	if !ok {
		return ""
	}

	sections := []string{
		s.header(),
		"",
		theme.Card.Render(theme.Body.Render(q.RewritePrompt)),
		"",
		s.code.View(),
	}
	if s.feedback != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.feedback))
	}
	return strings.Join(sections, "\n")
}

func (s *StageScreen) viewStageClear() string {
	done, total := s.sess.State.StageDone(s.stage.ID)

	sections := []string{
		theme.Title.Render("🎉 Stage clear!"),
		"",
		theme.Card.Render(theme.Body.Render(s.stage.ClearLine)),
		"",
		theme.Body.Render(fmt.Sprintf("Bug monsters healed: %d / %d", done, total)),
	}
	if s.result.NewTitle != "" {
		sections = append(sections, theme.Correct.Render("✨ New title: "+s.result.NewTitle))
	}
	sections = append(sections, "", theme.Hint.Render("r to review  ·  enter to head home"))
	return strings.Join(sections, "\n")
}

// resultLines renders the grading message, XP, hint, and any new title.
func (s *StageScreen) resultLines() string {
	var lines []string

	if s.result.Correct {
		msg := theme.Correct.Render(s.result.Message)
		if s.result.FirstClear {
			msg += lipgloss.NewStyle().Foreground(theme.Accent).Render(
				fmt.Sprintf("  +%d XP", s.result.XPGained))
		}
		lines = append(lines, msg)
	} else {
		lines = append(lines, theme.Incorrect.Render(s.result.Message))
	}

	if s.result.Hint != "" {
		lines = append(lines, theme.Hint.Render(s.result.Hint))
	}
	if s.result.NewTitle != "" {
		lines = append(lines, theme.Correct.Render("✨ New title: "+s.result.NewTitle))
	}
	return strings.Join(lines, "\n")
}
