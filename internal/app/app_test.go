package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/scriptjob/internal/app"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports/mocks"
	"go.trai.ch/scriptjob/internal/engine/launch"
	"go.uber.org/mock/gomock"
)

// fakeMain records invocations of the static main convention.
type fakeMain struct {
	calls int
	args  []string
	err   error
}

func (p *fakeMain) Main(args []string) error {
	p.calls++
	p.args = args
	return p.err
}

type appFixture struct {
	jobLoader *mocks.MockJobLoader
	stager    *mocks.MockStager
	factory   *mocks.MockInterpreterFactory
	logger    *mocks.MockLogger
}

func newAppFixture(ctrl *gomock.Controller) (*app.App, *appFixture) {
	f := &appFixture{
		jobLoader: mocks.NewMockJobLoader(ctrl),
		stager:    mocks.NewMockStager(ctrl),
		factory:   mocks.NewMockInterpreterFactory(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), span).AnyTimes()
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	launcher := launch.New(f.stager, f.factory, f.logger, tracer)
	return app.New(f.jobLoader, launcher, f.factory, f.logger), f
}

func simpleSpec() domain.JobSpec {
	return domain.JobSpec{
		Source:     domain.NewField("x = 1"),
		EntryPoint: domain.NewField("job"),
	}
}

func TestApp_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newAppFixture(ctrl)

	prog := &fakeMain{}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)

	f.jobLoader.EXPECT().Load("job.yaml").Return(simpleSpec(), nil)
	f.factory.EXPECT().New().Return(interp, nil)
	interp.EXPECT().Compile(gomock.Any(), "x = 1").Return(nil)
	interp.EXPECT().Loader().Return(loader)
	interp.EXPECT().Close().Return(nil)
	loader.EXPECT().Load("job").Return(prog, nil)

	err := a.Run(context.Background(), []string{"job.yaml"}, app.RunOptions{
		Args: map[string]string{"name": "world"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, prog.calls)
	require.Equal(t, []string{"--name=world"}, prog.args)
}

func TestApp_Run_ResolvesDeferredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newAppFixture(ctrl)

	prog := &fakeMain{}
	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)

	spec := domain.JobSpec{
		Source:     domain.NewField("${source}"),
		EntryPoint: domain.NewField("${entry}"),
	}
	f.jobLoader.EXPECT().Load("job.yaml").Return(spec, nil)
	f.factory.EXPECT().New().Return(interp, nil)
	interp.EXPECT().Compile(gomock.Any(), "y = 2").Return(nil)
	interp.EXPECT().Loader().Return(loader)
	interp.EXPECT().Close().Return(nil)
	loader.EXPECT().Load("start").Return(prog, nil)

	err := a.Run(context.Background(), []string{"job.yaml"}, app.RunOptions{
		Args: map[string]string{"source": "y = 2", "entry": "start"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, prog.calls)
}

func TestApp_Run_UnresolvedPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newAppFixture(ctrl)

	spec := domain.JobSpec{
		Source:     domain.NewField("${source}"),
		EntryPoint: domain.NewField("main"),
	}
	f.jobLoader.EXPECT().Load("job.yaml").Return(spec, nil)

	err := a.Run(context.Background(), []string{"job.yaml"}, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrUnresolvedPlaceholder)
}

func TestApp_Run_NoJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newAppFixture(ctrl)

	err := a.Run(context.Background(), nil, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrNoJobsSpecified)
}

func TestApp_Run_Parallel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newAppFixture(ctrl)

	jobs := []string{"a.yaml", "b.yaml", "c.yaml"}
	for _, path := range jobs {
		prog := &fakeMain{}
		loader := mocks.NewMockLoader(ctrl)
		interp := mocks.NewMockInterpreter(ctrl)

		f.jobLoader.EXPECT().Load(path).Return(simpleSpec(), nil)
		f.factory.EXPECT().New().Return(interp, nil)
		interp.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(nil)
		interp.EXPECT().Loader().Return(loader)
		interp.EXPECT().Close().Return(nil)
		loader.EXPECT().Load("job").Return(prog, nil)
	}

	err := a.Run(context.Background(), jobs, app.RunOptions{Parallel: 3})
	require.NoError(t, err)
}

func TestApp_Check_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newAppFixture(ctrl)

	spec := simpleSpec()
	spec.CheckAtDeploy = true

	loader := mocks.NewMockLoader(ctrl)
	interp := mocks.NewMockInterpreter(ctrl)

	f.jobLoader.EXPECT().Load("job.yaml").Return(spec, nil)
	f.factory.EXPECT().New().Return(interp, nil)
	interp.EXPECT().Compile(gomock.Any(), "x = 1").Return(nil)
	interp.EXPECT().Loader().Return(loader)
	interp.EXPECT().Close().Return(nil)
	loader.EXPECT().Load("job").Return(&fakeMain{}, nil)

	require.NoError(t, a.Check(context.Background(), []string{"job.yaml"}))
}

func TestApp_Check_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newAppFixture(ctrl)

	f.jobLoader.EXPECT().Load("job.yaml").Return(domain.JobSpec{}, domain.ErrInvalidJobSpec)

	err := a.Check(context.Background(), []string{"job.yaml"})
	require.ErrorIs(t, err, domain.ErrInvalidJobSpec)
}
