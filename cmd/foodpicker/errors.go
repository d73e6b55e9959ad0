package main

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/anlythree/foodpicker/internal/logging"
	"github.com/anlythree/foodpicker/internal/ui"
)

// commandError is a failure with a headline and hints for fixing it.
type commandError struct {
	Title           string
	Err             error
	Troubleshooting []string
}

// Error implements the error interface
func (e *commandError) Error() string {
	return e.Title + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for error chain inspection
func (e *commandError) Unwrap() error {
	return e.Err
}

func configError(err error) error {
	return &commandError{
		Title: "Could not load configuration",
		Err:   err,
		Troubleshooting: []string{
			"Run 'foodpicker config path' to see which file is read",
			"Pass --config to use a different file",
			"Run 'foodpicker config init --config <new path>' to write a fresh default",
		},
	}
}

func catalogError(err error) error {
	return &commandError{
		Title: "Could not load catalog",
		Err:   err,
		Troubleshooting: []string{
			"Check --catalog or the catalog key in the config file",
			"Run 'foodpicker list --format yaml' to see the expected format",
			"Names must be unique and nutrition values finite and not negative",
		},
	}
}

// reportError prints err as an error box, with hints when it carries any.
func reportError(w io.Writer, err error) {
	title := "foodpicker"
	cause := err
	var tips []string

	var ce *commandError
	if errors.As(err, &ce) {
		title = ce.Title
		cause = ce.Err
		tips = ce.Troubleshooting
	}

	logging.Error("Command failed", zap.String("title", title), zap.Error(cause))
	ui.NewPrinter(w).PrintError(title, cause, tips)
}
