//go:build !ebiten

package ui

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Subodh07301/game-of-life/model"
)

// ErrWindowUnavailable is returned by Run in builds without the ebiten tag
var ErrWindowUnavailable = errors.New("window rendering requires building with the 'ebiten' tag")

// Available reports whether this build can open a window
func Available() bool { return false }

// Run always fails in the headless build
func Run(context.Context, *model.Grid, Stepper, Options) error {
	return errors.Wrap(ErrWindowUnavailable, "[ui.Run]")
}
