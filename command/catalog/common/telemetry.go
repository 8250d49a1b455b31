package common

import (
	"context"

	"go.scnd.dev/open/catalog/command/catalog/index"
	"go.scnd.dev/open/catalog/package/telemetry"
)

// Telemetry exports spans to the diagnostic stream in verbose mode. The
// returned func flushes and must always be called.
func Telemetry(app index.App) (func(), error) {
	if !*app.Verbose() {
		return func() {}, nil
	}

	t, err := telemetry.New(app.Logger().Writer())
	if err != nil {
		return nil, err
	}

	return func() {
		if err := t.Shutdown(context.Background()); err != nil {
			app.Logger().Printf("%v", err)
		}
	}, nil
}
