// Package menu drives the interactive selection of a starting value.
package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/manifoldco/promptui"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/bigdec"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/ui"
)

// Presets offered in the selection menu, in display order.
var Presets = []string{
	"9999999967",
	"999999999999991",
	"9999999999999999983",
	"9999999999999999997",
}

const (
	itemManual = "Enter a value manually"
	itemQuit   = "Quit"
)

// PresetLabel labels a preset with its digit count.
func PresetLabel(v string) string {
	return fmt.Sprintf("%d digits  (%s)", len(v), v)
}

// Items builds the menu entries for a store at path.
func Items(path string) []string {
	out := []string{fmt.Sprintf("Load last value from %s", path)}
	for _, p := range Presets {
		out = append(out, PresetLabel(p))
	}
	return append(out, itemManual, itemQuit)
}

// Choose prompts until a starting value is selected. ok is false when the
// user quits; a cancelled prompt counts as quitting.
func Choose(store *sequence.Store) (string, bool) {
	items := Items(store.Path())

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	for {
		selectPrompt := promptui.Select{
			Label:     "Choose a starting value",
			Items:     items,
			Templates: templates,
			Size:      len(items),
			Stdout:    &bellSkipper{},
		}

		index, _, err := selectPrompt.Run()
		if err != nil {
			fmt.Println("\nSelection cancelled")
			return "", false
		}

		switch {
		case index == 0:
			v, err := store.Load()
			if err != nil {
				ui.PrintError(err.Error())
				continue
			}
			if v == "" {
				ui.PrintWarn("Could not load sequence. Please choose another option.")
				continue
			}
			ui.PrintOK("Loaded " + v)
			return v, true

		case index <= len(Presets):
			v := Presets[index-1]
			ui.PrintOK("Value selected: " + v)
			return v, true

		case index == len(Presets)+1:
			v, err := askManual()
			if err != nil {
				// cancelled entry returns to the menu
				continue
			}
			ui.PrintOK("Value selected: " + v)
			return v, true

		default:
			return "", false
		}
	}
}

// askManual reads a value of arbitrary length, re-prompting until it is
// all digits.
func askManual() (string, error) {
	var v string
	prompt := &survey.Input{
		Message: "Enter your value (arbitrary length):",
	}
	if err := survey.AskOne(prompt, &v, survey.WithValidator(DigitsValidator)); err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// DigitsValidator rejects anything but a plain digit string.
func DigitsValidator(ans interface{}) error {
	s, _ := ans.(string)
	if err := bigdec.Check(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter digits only")
	}
	return nil
}

// bellSkipper suppresses the terminal bell promptui rings on navigation.
type bellSkipper struct{}

func (bs *bellSkipper) Write(b []byte) (int, error) {
	if len(b) == 1 && b[0] == 7 {
		return 0, nil
	}
	return os.Stderr.Write(b)
}

func (bs *bellSkipper) Close() error {
	return os.Stderr.Close()
}
