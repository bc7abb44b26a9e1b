package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/parser"
	"github.com/aretw0/notoo/pkg/study"
)

var studyCmd = &cobra.Command{
	Use:   "study [id]",
	Short: "Study the flashcards of a note",
	Long: `Study walks through the flashcards of a note.

  space/enter  flip the card
  k / →        I knew it
  u / ←        still learning
  t            swap the asked side
  r            restart when the session is complete
  q            quit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(true)
		note := findNote(ctx, svc, args[0])

		session := study.ForNote(note, svc.Languages())
		if err := session.Start(parser.Generate(note)); err != nil {
			if errors.Is(err, core.ErrInsufficientStructure) {
				fmt.Println("Not enough structure found to build flashcards.")
				return
			}
			fatal("Error starting session", err)
		}

		if _, err := tea.NewProgram(newStudyModel(note, session)).Run(); err != nil {
			fatal("Error running session", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
}

var (
	studyTitleStyle = lipgloss.NewStyle().Bold(true).MarginLeft(2)
	studyHintStyle  = lipgloss.NewStyle().Faint(true).MarginLeft(2)
	studyLangStyle  = lipgloss.NewStyle().Faint(true)
	studyDoneStyle  = lipgloss.NewStyle().Margin(1, 0, 1, 2)
)

// studyModel adapts a study.Session to Bubble Tea.
type studyModel struct {
	note    core.Note
	session *study.Session
	card    lipgloss.Style
}

func newStudyModel(note core.Note, session *study.Session) studyModel {
	return studyModel{
		note:    note,
		session: session,
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(note.Anchor.Color)).
			Padding(1, 4).
			Margin(1, 2).
			Width(50).
			Align(lipgloss.Center),
	}
}

func (m studyModel) Init() tea.Cmd {
	return nil
}

func (m studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case " ", "enter":
		_ = m.session.Flip()
	case "k", "right":
		_ = m.session.Next(true)
	case "u", "left":
		_ = m.session.Next(false)
	case "t":
		m.session.ToggleDirection()
	case "r":
		if m.session.State() == study.StateComplete {
			_ = m.session.Start(parser.Generate(m.note))
		}
	}
	return m, nil
}

func (m studyModel) View() string {
	if m.session.State() == study.StateComplete {
		known, unknown := m.session.Tally()
		return studyDoneStyle.Render(fmt.Sprintf(
			"Session complete! %d known, %d still learning.\n\nr restart • q quit", known, unknown)) + "\n"
	}

	front, err := m.session.Front()
	if err != nil {
		return err.Error() + "\n"
	}

	title := fmt.Sprintf("%s %s  %d/%d", m.note.Anchor.Emoji, m.note.Folder, m.session.Index()+1, m.session.Len())
	body := front.Text + "\n" + studyLangStyle.Render(core.SpeechLanguage(front.Lang))
	hint := "space flip • t swap side • q quit"

	if m.session.Flipped() {
		back, _ := m.session.Back()
		body += "\n\n" + back.Text + "\n" + studyLangStyle.Render(core.SpeechLanguage(back.Lang))
		hint = "k knew it • u still learning • t swap side • q quit"
	} else {
		hint = "answer in " + m.session.ExpectedResponseLanguage() + " • " + hint
	}

	return studyTitleStyle.Render(title) + "\n" + m.card.Render(body) + "\n" + studyHintStyle.Render(hint) + "\n"
}
