package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

func TestEnginesAgree(t *testing.T) {
	t.Parallel()

	for _, kind := range tally.Kinds() {
		assert.NoError(t, enginesAgree(kind)(context.Background()), kind)
	}

	assert.ErrorIs(t, enginesAgree("bogus")(context.Background()), tally.ErrUnknownKind)
}
