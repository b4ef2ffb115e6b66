// cmd/meal-balance/play.go
package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/evaluation"
	"mcp-meal-balance/internal/models"
	"mcp-meal-balance/internal/output"
	"mcp-meal-balance/internal/session"
)

type actionKind int

const (
	actionAdd actionKind = iota
	actionRemove
	actionReset
	actionEvaluate
	actionQuit
)

type action struct {
	kind   actionKind
	foodID string
	index  int
}

// prompter asks the player for each decision in a game.
type prompter interface {
	Difficulty() (models.Difficulty, error)
	Profile() (models.ProfileID, error)
	Next(s *session.Session) (action, error)
	PlayAgain() (bool, error)
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the meal balance game interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter, err := output.NewFormatter(cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return playGame(huhPrompter{}, cmd.OutOrStdout(), formatter)
		},
	}
}

func playGame(p prompter, out io.Writer, formatter output.Formatter) error {
	for {
		difficulty, err := p.Difficulty()
		if err != nil {
			return err
		}

		var profile models.ProfileID
		if difficulty != models.DifficultyChef {
			if profile, err = p.Profile(); err != nil {
				return err
			}
		}

		sess, err := session.New(difficulty, profile)
		if err != nil {
			return err
		}
		announce(out, sess)

		quit, err := playRound(p, out, formatter, sess)
		if err != nil || quit {
			return err
		}

		again, err := p.PlayAgain()
		if err != nil || !again {
			return err
		}
	}
}

// playRound runs the add/remove loop until the meal is evaluated or the player
// quits.
func playRound(p prompter, out io.Writer, formatter output.Formatter, sess *session.Session) (bool, error) {
	for {
		act, err := p.Next(sess)
		if err != nil {
			return false, err
		}

		switch act.kind {
		case actionAdd:
			if err := sess.Add(act.foodID); err != nil {
				fmt.Fprintf(out, "Cannot add %s: %v\n", act.foodID, err)
			}
		case actionRemove:
			if err := sess.Remove(act.index); err != nil {
				fmt.Fprintf(out, "Cannot remove item: %v\n", err)
			}
		case actionReset:
			sess.Reset()
		case actionEvaluate:
			result, err := sess.Evaluate()
			if errors.Is(err, evaluation.ErrEmptySelection) {
				fmt.Fprintln(out, "Pick at least one food before evaluating.")
				continue
			}
			if err != nil {
				return false, err
			}
			return false, formatter.Format(result)
		case actionQuit:
			return true, nil
		}
	}
}

func announce(out io.Writer, sess *session.Session) {
	if sess.Difficulty() == models.DifficultyChef {
		targets := make([]string, 0, len(sess.DisplayTargets()))
		for _, t := range sess.DisplayTargets() {
			targets = append(targets, string(t))
		}
		fmt.Fprintf(out, "Targets (chef mode): %s (difficulty: %s)\n", strings.Join(targets, ", "), sess.Difficulty())
		fmt.Fprintf(out, "Build one meal for all of them. It is scored against %s.\n", sess.Profile())
		return
	}
	fmt.Fprintf(out, "Target: %s (difficulty: %s)\n", sess.Profile(), sess.Difficulty())
}

type huhPrompter struct{}

func (huhPrompter) Difficulty() (models.Difficulty, error) {
	var d string
	err := huh.NewSelect[string]().
		Title("Difficulty").
		Options(
			huh.NewOption("Easy (finished dishes only)", string(models.DifficultyEasy)),
			huh.NewOption("Medium (a few ingredients)", string(models.DifficultyMedium)),
			huh.NewOption("Hard (all foods)", string(models.DifficultyHard)),
			huh.NewOption("Chef (several targets at once)", string(models.DifficultyChef)),
		).
		Value(&d).
		Run()
	return models.Difficulty(d), err
}

func (huhPrompter) Profile() (models.ProfileID, error) {
	var opts []huh.Option[string]
	for _, p := range catalog.Profiles() {
		opts = append(opts, huh.NewOption(p.Name, string(p.ID)))
	}

	var id string
	err := huh.NewSelect[string]().
		Title("Who is the meal for?").
		Options(opts...).
		Value(&id).
		Run()
	return models.ProfileID(id), err
}

func (huhPrompter) Next(s *session.Session) (action, error) {
	selection := s.Selection()

	var opts []huh.Option[string]
	for _, f := range s.Offered() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Add %s (%s)", f.Name, f.Category), "add:"+f.ID))
	}
	if len(selection) > 0 {
		opts = append(opts,
			huh.NewOption("Remove an item", "remove"),
			huh.NewOption("Clear the meal", "reset"),
		)
	}
	opts = append(opts,
		huh.NewOption("Evaluate meal", "evaluate"),
		huh.NewOption("Quit", "quit"),
	)

	title := "Your meal is empty"
	if len(selection) > 0 {
		title = "Your meal: " + strings.Join(selection, ", ")
	}

	var choice string
	if err := huh.NewSelect[string]().Title(title).Options(opts...).Value(&choice).Run(); err != nil {
		return action{}, err
	}

	switch {
	case strings.HasPrefix(choice, "add:"):
		return action{kind: actionAdd, foodID: strings.TrimPrefix(choice, "add:")}, nil
	case choice == "remove":
		var idxOpts []huh.Option[int]
		for i, id := range selection {
			idxOpts = append(idxOpts, huh.NewOption(fmt.Sprintf("%d. %s", i+1, id), i))
		}
		var idx int
		if err := huh.NewSelect[int]().Title("Remove which item?").Options(idxOpts...).Value(&idx).Run(); err != nil {
			return action{}, err
		}
		return action{kind: actionRemove, index: idx}, nil
	case choice == "reset":
		return action{kind: actionReset}, nil
	case choice == "evaluate":
		return action{kind: actionEvaluate}, nil
	default:
		return action{kind: actionQuit}, nil
	}
}

func (huhPrompter) PlayAgain() (bool, error) {
	again := false
	err := huh.NewConfirm().
		Title("Play again?").
		Value(&again).
		Run()
	return again, err
}
