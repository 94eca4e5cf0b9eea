package launch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports/mocks"
	"go.trai.ch/scriptjob/internal/engine/launch"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type launcherFixture struct {
	stager  *mocks.MockStager
	factory *mocks.MockInterpreterFactory
	logger  *mocks.MockLogger
	tracer  *mocks.MockTracer
	span    *mocks.MockSpan
}

func newLauncherFixture(ctrl *gomock.Controller) (*launch.Launcher, *launcherFixture) {
	f := &launcherFixture{
		stager:  mocks.NewMockStager(ctrl),
		factory: mocks.NewMockInterpreterFactory(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		tracer:  mocks.NewMockTracer(ctrl),
		span:    mocks.NewMockSpan(ctrl),
	}

	// Spans are incidental to these tests; accept any lifecycle.
	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), f.span).AnyTimes()
	f.span.EXPECT().End().AnyTimes()
	f.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	f.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return launch.New(f.stager, f.factory, f.logger, f.tracer), f
}

func runnableSpec(deps string) domain.JobSpec {
	return domain.JobSpec{
		Source:       domain.NewField("x = 1"),
		EntryPoint:   domain.NewField("job"),
		Dependencies: domain.NewField(deps),
	}
}

func TestLauncher_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	prog := &mainOnly{}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)
	bundle := mocks.NewMockBundle(ctrl)
	execCtx := mocks.NewMockExecutionContext(ctrl)

	execCtx.EXPECT().NewInterpreter().Return(interp, nil)
	execCtx.EXPECT().RuntimeArguments().Return(map[string]string{"k": "v"})
	bundle.EXPECT().Dir().Return("/tmp/deps").AnyTimes()
	bundle.EXPECT().Files().Return([]string{"lib.star"}).AnyTimes()
	loader.EXPECT().Load("job").Return(prog, nil)

	// Staging precedes compilation; the interpreter is released before the
	// bundle is removed.
	gomock.InOrder(
		f.stager.EXPECT().Stage("libs").Return(bundle, nil),
		interp.EXPECT().AddSearchPath([]string{"/tmp/deps"}).Return(nil),
		interp.EXPECT().Compile(gomock.Any(), "x = 1").Return(nil),
		interp.EXPECT().Loader().Return(loader),
		interp.EXPECT().Close().Return(nil),
		bundle.EXPECT().Remove().Return(nil),
	)

	err := launcher.Run(context.Background(), runnableSpec("libs"), execCtx)
	require.NoError(t, err)
	require.Equal(t, 1, prog.calls)
	require.Equal(t, []string{"--k=v"}, prog.args)
}

func TestLauncher_Run_NoDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, _ := newLauncherFixture(ctrl)

	prog := &mainOnly{}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)
	execCtx := mocks.NewMockExecutionContext(ctrl)

	execCtx.EXPECT().NewInterpreter().Return(interp, nil)
	execCtx.EXPECT().RuntimeArguments().Return(nil)
	interp.EXPECT().Compile(gomock.Any(), "x = 1").Return(nil)
	interp.EXPECT().Loader().Return(loader)
	interp.EXPECT().Close().Return(nil)
	loader.EXPECT().Load("job").Return(prog, nil)

	// No dependency spec: the stager is never touched and no bundle exists.
	err := launcher.Run(context.Background(), runnableSpec(""), execCtx)
	require.NoError(t, err)
	require.Equal(t, 1, prog.calls)
}

func TestLauncher_Run_CompileFailureReleasesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	interp := mocks.NewMockInterpreter(ctrl)
	bundle := mocks.NewMockBundle(ctrl)
	execCtx := mocks.NewMockExecutionContext(ctrl)

	compileErr := zerr.Wrap(domain.ErrCompilation, "syntax error")

	execCtx.EXPECT().NewInterpreter().Return(interp, nil)
	bundle.EXPECT().Dir().Return("/tmp/deps").AnyTimes()
	bundle.EXPECT().Files().Return(nil).AnyTimes()

	gomock.InOrder(
		f.stager.EXPECT().Stage("libs").Return(bundle, nil),
		interp.EXPECT().AddSearchPath(gomock.Any()).Return(nil),
		interp.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(compileErr),
		interp.EXPECT().Close().Return(nil),
		bundle.EXPECT().Remove().Return(nil),
	)

	err := launcher.Run(context.Background(), runnableSpec("libs"), execCtx)
	require.ErrorIs(t, err, domain.ErrCompilation)
}

func TestLauncher_Run_UserErrorUnwrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, _ := newLauncherFixture(ctrl)

	userErr := zerr.New("job exploded")
	prog := &mainOnly{err: userErr}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)
	execCtx := mocks.NewMockExecutionContext(ctrl)

	execCtx.EXPECT().NewInterpreter().Return(interp, nil)
	execCtx.EXPECT().RuntimeArguments().Return(nil)
	interp.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil)
	interp.EXPECT().Loader().Return(loader)
	interp.EXPECT().Close().Return(nil)
	loader.EXPECT().Load("job").Return(prog, nil)

	err := launcher.Run(context.Background(), runnableSpec(""), execCtx)
	require.Same(t, userErr, err)
}

func TestLauncher_Run_CleanupFailureDoesNotMask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	userErr := zerr.New("job exploded")
	prog := &mainOnly{err: userErr}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)
	bundle := mocks.NewMockBundle(ctrl)
	execCtx := mocks.NewMockExecutionContext(ctrl)

	execCtx.EXPECT().NewInterpreter().Return(interp, nil)
	execCtx.EXPECT().RuntimeArguments().Return(nil)
	bundle.EXPECT().Dir().Return("/tmp/deps").AnyTimes()
	bundle.EXPECT().Files().Return(nil).AnyTimes()
	f.stager.EXPECT().Stage("libs").Return(bundle, nil)
	interp.EXPECT().AddSearchPath(gomock.Any()).Return(nil)
	interp.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil)
	interp.EXPECT().Loader().Return(loader)
	loader.EXPECT().Load("job").Return(prog, nil)

	// Both cleanups fail; the failures are logged and the user error wins.
	interp.EXPECT().Close().Return(zerr.New("close failed"))
	bundle.EXPECT().Remove().Return(zerr.New("remove failed"))
	f.logger.EXPECT().Error(gomock.Any()).Times(2)

	err := launcher.Run(context.Background(), runnableSpec("libs"), execCtx)
	require.Same(t, userErr, err)
}

func TestLauncher_Run_StageFailureStopsBeforeInterpreter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	// Staging fails before any interpreter exists; nothing else is touched.
	execCtx := mocks.NewMockExecutionContext(ctrl)
	f.stager.EXPECT().Stage("libs").Return(nil, zerr.Wrap(domain.ErrStaging, "missing file"))

	err := launcher.Run(context.Background(), runnableSpec("libs"), execCtx)
	require.ErrorIs(t, err, domain.ErrStaging)
}

func TestLauncher_Run_RequiresResolvedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, _ := newLauncherFixture(ctrl)

	spec := domain.JobSpec{
		Source:     domain.NewField("${source}"),
		EntryPoint: domain.NewField("job"),
	}

	err := launcher.Run(context.Background(), spec, mocks.NewMockExecutionContext(ctrl))
	require.ErrorIs(t, err, domain.ErrInvalidJobSpec)
}

func checkableSpec(deps string) domain.JobSpec {
	spec := runnableSpec(deps)
	spec.CheckAtDeploy = true
	return spec
}

func TestLauncher_Check_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	prog := &mainOnly{}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)
	bundle := mocks.NewMockBundle(ctrl)

	bundle.EXPECT().Dir().Return("/tmp/deps").AnyTimes()
	bundle.EXPECT().Files().Return(nil).AnyTimes()
	loader.EXPECT().Load("job").Return(prog, nil)

	// Check acquires the interpreter before the bundle, so the bundle is
	// removed before the interpreter closes.
	gomock.InOrder(
		f.factory.EXPECT().New().Return(interp, nil),
		f.stager.EXPECT().Stage("libs").Return(bundle, nil),
		interp.EXPECT().AddSearchPath([]string{"/tmp/deps"}).Return(nil),
		interp.EXPECT().Compile(gomock.Any(), "x = 1").Return(nil),
		interp.EXPECT().Loader().Return(loader),
		bundle.EXPECT().Remove().Return(nil),
		interp.EXPECT().Close().Return(nil),
	)

	require.NoError(t, launcher.Check(context.Background(), checkableSpec("libs")))

	// Dry validation never runs the entry point.
	require.Equal(t, 0, prog.calls)
}

func TestLauncher_Check_DisabledIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, _ := newLauncherFixture(ctrl)

	require.NoError(t, launcher.Check(context.Background(), runnableSpec("libs")))
}

func TestLauncher_Check_SkipsDeferredSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, _ := newLauncherFixture(ctrl)

	spec := domain.JobSpec{
		Source:        domain.NewField("${source}"),
		EntryPoint:    domain.NewField("job"),
		CheckAtDeploy: true,
	}

	require.NoError(t, launcher.Check(context.Background(), spec))
}

func TestLauncher_Check_SkipsDeferredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, _ := newLauncherFixture(ctrl)

	spec := checkableSpec("${libs}")
	require.NoError(t, launcher.Check(context.Background(), spec))
}

func TestLauncher_Check_SkipsWhenInterpreterUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	f.factory.EXPECT().New().Return(nil, domain.ErrInterpreterUnavailable)

	require.NoError(t, launcher.Check(context.Background(), checkableSpec("")))
}

func TestLauncher_Check_CompileFailureBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	interp := mocks.NewMockInterpreter(ctrl)

	f.factory.EXPECT().New().Return(interp, nil)
	interp.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(zerr.Wrap(domain.ErrCompilation, "syntax error"))
	interp.EXPECT().Close().Return(nil)

	err := launcher.Check(context.Background(), checkableSpec(""))
	require.ErrorIs(t, err, domain.ErrCompilation)
}

func TestLauncher_Check_MissingEntryPointBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launcher, f := newLauncherFixture(ctrl)

	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)

	f.factory.EXPECT().New().Return(interp, nil)
	interp.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil)
	interp.EXPECT().Loader().Return(loader)
	interp.EXPECT().Close().Return(nil)
	loader.EXPECT().Load("job").Return(nil, domain.ErrEntryPointNotFound)

	err := launcher.Check(context.Background(), checkableSpec(""))
	require.ErrorIs(t, err, domain.ErrEntryPointNotFound)
}
