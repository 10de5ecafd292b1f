package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bibliotheque/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("fields flow into the context logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithOperation(ctx, "add")
		ctx = logging.WithPath(ctx, "bibliotheque.json")
		ctx = logging.WithBook(ctx, "Dune", "978-0441013593")

		logging.FromContext(ctx).Info().Msg("book added")

		assert.True(t, tl.ContainsAll(
			`"operation":"add"`,
			`"path":"bibliotheque.json"`,
			`"title":"Dune"`,
			`"isbn":"978-0441013593"`,
			"book added",
		), tl.Output())
	})

	t.Run("WithError", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)

		assert.Equal(t, ctx, logging.WithError(ctx, nil))

		ctx = logging.WithError(ctx, errors.New("disk full"))
		logging.Ctx(ctx).Warn().Msg("flush failed")
		tl.AssertContains(t, "disk full")
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Same(t, logging.Default(), logging.FromContext(ctx))
	})
}
