package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"Recipe-Publisher/domain"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter asks the operator questions. Interrupting any prompt yields
// domain.ErrPromptCancelled.
type Prompter interface {
	Input(message string, validate func(string) error) (string, error)
	Select(message string, options []string) (int, error)
	Confirm(message string, def bool) (bool, error)
	Printf(format string, args ...interface{})
}

type surveyPrompter struct {
	out io.Writer
}

// NewSurveyPrompter returns a terminal prompter; plain text goes to stdout.
func NewSurveyPrompter() Prompter {
	return &surveyPrompter{out: os.Stdout}
}

func (p *surveyPrompter) Input(message string, validate func(string) error) (string, error) {
	var answer string
	opts := []survey.AskOpt{}
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, opts...); err != nil {
		return "", mapErr(err)
	}
	return answer, nil
}

func (p *surveyPrompter) Select(message string, options []string) (int, error) {
	var idx int
	if err := survey.AskOne(&survey.Select{Message: message, Options: options, PageSize: 12}, &idx); err != nil {
		return 0, mapErr(err)
	}
	return idx, nil
}

func (p *surveyPrompter) Confirm(message string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, mapErr(err)
	}
	return answer, nil
}

func (p *surveyPrompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func mapErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return domain.ErrPromptCancelled
	}
	return err
}
