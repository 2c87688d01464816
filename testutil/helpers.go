package testutil

import (
	"context"
	"testing"

	"github.com/kbukum/fetchkit/component"
)

// CleanupFunc is a function that performs cleanup, typically stopping a component.
type CleanupFunc func() error

// Setup starts a component and returns a cleanup function. The cleanup
// function should be called (typically with defer) to stop the component.
//
//	cleanup, err := testutil.Setup(fetchComponent)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer cleanup()
func Setup(c component.Component) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), c)
}

// SetupWithContext starts a component with a custom context and returns a
// cleanup function.
func SetupWithContext(ctx context.Context, c component.Component) (CleanupFunc, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}
	return func() error {
		return c.Stop(ctx)
	}, nil
}

// Start starts a component and registers its Stop with t.Cleanup, failing
// the test on either error.
func Start(t *testing.T, c component.Component) {
	t.Helper()
	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("start %s: %v", c.Name(), err)
	}
	t.Cleanup(func() {
		if err := c.Stop(ctx); err != nil {
			t.Errorf("stop %s: %v", c.Name(), err)
		}
	})
}
