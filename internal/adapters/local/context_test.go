package local_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scriptjob/internal/adapters/local"
	"go.trai.ch/scriptjob/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestContext_RuntimeArgumentsIsolated(t *testing.T) {
	args := map[string]string{"k": "v"}
	ctx := local.NewContext(args, nil, "starlark")

	// Mutating the caller's map after construction changes nothing.
	args["k"] = "changed"
	got := ctx.RuntimeArguments()
	assert.Equal(t, "v", got["k"])

	// Mutating the returned map changes nothing either.
	got["k"] = "changed again"
	assert.Equal(t, "v", ctx.RuntimeArguments()["k"])
}

func TestContext_NewInterpreter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	interp := mocks.NewMockInterpreter(ctrl)
	factory := mocks.NewMockInterpreterFactory(ctrl)
	factory.EXPECT().New().Return(interp, nil)

	ctx := local.NewContext(nil, factory, "starlark")
	got, err := ctx.NewInterpreter()
	require.NoError(t, err)
	assert.Same(t, interp, got)
}

func TestContext_Engine(t *testing.T) {
	ctx := local.NewContext(nil, nil, "starlark")
	engine := ctx.Engine()
	require.NotNil(t, engine)
	assert.Equal(t, "starlark", engine.EngineName())
}

func TestContext_NoEngine(t *testing.T) {
	ctx := local.NewContext(nil, nil, "")
	assert.Nil(t, ctx.Engine())
}
