package commands

import (
	"errors"

	"github.com/doeshing/cpy-helpers/internal/app"
)

// Runtime is filled in by the root command's PersistentPreRunE, once global
// flags are parsed and before any subcommand runs.
type Runtime struct {
	Container *app.Container
	Debug     bool
}

func (rt *Runtime) container() (*app.Container, error) {
	if rt == nil || rt.Container == nil {
		return nil, errors.New(ErrContainerUnavailable)
	}
	return rt.Container, nil
}

// validContainer is container for commands that act on the configuration
// and so cannot run with a rejected one.
func (rt *Runtime) validContainer() (*app.Container, error) {
	container, err := rt.container()
	if err != nil {
		return nil, err
	}
	if container.ConfigErr != nil {
		return nil, container.ConfigErr
	}
	return container, nil
}
