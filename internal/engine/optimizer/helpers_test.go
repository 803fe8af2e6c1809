package optimizer_test

import (
	"context"
	"iter"
	"path"
	"strings"
	"testing"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/optic/internal/core/ports/mocks"
	"go.trai.ch/optic/internal/engine/optimizer"
	"go.uber.org/mock/gomock"
)

// entry is one node below a root of a fakeTree.
type entry struct {
	rel string
	dir bool
}

func file(rel string) entry { return entry{rel: rel} }
func dir(rel string) entry  { return entry{rel: rel, dir: true} }

// fakeTree answers Finder queries from an in-memory listing, root by root and in
// declaration order.
type fakeTree map[string][]entry

func (tr fakeTree) find(roots []string, q domain.FindQuery) iter.Seq[domain.Match] {
	return func(yield func(domain.Match) bool) {
		for _, root := range roots {
			for _, e := range tr[root] {
				if e.dir != (q.Type == domain.EntryDir) {
					continue
				}
				if q.MaxDepth == 0 && strings.Contains(e.rel, "/") {
					continue
				}
				if q.Suffix != "" {
					base := path.Base(e.rel)
					if !strings.HasSuffix(strings.TrimSuffix(base, path.Ext(base)), q.Suffix) {
						continue
					}
				}
				if !yield(domain.Match{Root: root, Rel: e.rel}) {
					return
				}
			}
		}
	}
}

type testMocks struct {
	finder *mocks.MockFinder
	fs     *mocks.MockFileSystem
	store  *mocks.MockArtifactStore
	logger *mocks.MockLogger
	tracer *mocks.MockTracer
	config *mocks.MockProjectConfiguration
	cache  *mocks.MockConfigCache
}

// setupOptimizer creates an optimizer over tree. The configuration mock answers
// the directory conventions of a project rooted at /p with one plugin.
func setupOptimizer(t *testing.T, tree fakeTree) (*optimizer.Optimizer, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		finder: mocks.NewMockFinder(ctrl),
		fs:     mocks.NewMockFileSystem(ctrl),
		store:  mocks.NewMockArtifactStore(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		config: mocks.NewMockProjectConfiguration(ctrl),
		cache:  mocks.NewMockConfigCache(ctrl),
	}

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	m.finder.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(tree.find).AnyTimes()

	m.config.EXPECT().ModuleDir().Return("/p/apps/frontend/modules").AnyTimes()
	m.config.EXPECT().CoreModuleDir().Return("/p/lib/framework/controller").AnyTimes()
	m.config.EXPECT().PluginPaths().Return([]string{"/p/plugins/sfGuardPlugin"}).AnyTimes()
	m.config.EXPECT().PluginSubPaths("modules").Return([]string{"/p/plugins/sfGuardPlugin/modules"}).AnyTimes()
	m.config.EXPECT().EnabledModules().Return([]string{"default", "sfGuardAuth"}).AnyTimes()
	m.config.EXPECT().HelperSuffix().Return("Helper").AnyTimes()
	m.config.EXPECT().TemplateDirs(gomock.Any()).DoAndReturn(func(module string) []string {
		return []string{
			"/p/apps/frontend/modules/" + module + "/templates",
			"/p/plugins/sfGuardPlugin/modules/" + module + "/templates",
			"/p/lib/framework/controller/" + module + "/templates",
		}
	}).AnyTimes()
	m.config.EXPECT().ControllerDirs(gomock.Any()).DoAndReturn(func(module string) []string {
		return []string{
			"/p/apps/frontend/modules/" + module + "/actions",
			"/p/plugins/sfGuardPlugin/modules/" + module + "/actions",
			"/p/lib/framework/controller/" + module + "/actions",
		}
	}).AnyTimes()
	m.config.EXPECT().HelperDirs(gomock.Any()).DoAndReturn(func(module string) []string {
		global := []string{"/p/apps/frontend/lib/helper", "/p/lib/helper", "/p/lib/framework/helper"}
		if module == "" {
			return global
		}
		return append([]string{
			"/p/apps/frontend/modules/" + module + "/lib/helper",
			"/p/plugins/sfGuardPlugin/modules/" + module + "/lib/helper",
		}, global...)
	}).AnyTimes()
	// The first template root containing the file wins.
	m.config.EXPECT().TemplateDir(gomock.Any(), gomock.Any()).DoAndReturn(func(module, template string) (string, bool) {
		roots := []string{
			"/p/apps/frontend/modules/" + module + "/templates",
			"/p/plugins/sfGuardPlugin/modules/" + module + "/templates",
			"/p/lib/framework/controller/" + module + "/templates",
		}
		for _, root := range roots {
			for _, e := range tree[root] {
				if !e.dir && e.rel == template {
					return root, true
				}
			}
		}
		return "", false
	}).AnyTimes()

	o := optimizer.New(m.finder, m.fs, m.store, m.logger, m.tracer)
	return o, m
}

// projectTree is a small project with an application module, a plugin module, a
// disabled plugin module and framework modules.
func projectTree() fakeTree {
	return fakeTree{
		"/p/apps/frontend/modules": {dir("default"), dir("user")},
		"/p/plugins/sfGuardPlugin/modules": {
			dir("sfGuardAuth"), dir("sfGuardUser"),
		},
		"/p/lib/framework/controller": {dir("default")},

		"/p/apps/frontend/modules/default/templates": {file("indexSuccess.php"), file("_menu.php")},
		"/p/lib/framework/controller/default/templates": {
			file("indexSuccess.php"), file("error404Success.php"), file("partials/_footer.php"),
		},
		"/p/plugins/sfGuardPlugin/modules/sfGuardAuth/templates": {file("signinSuccess.php")},
		"/p/apps/frontend/modules/sfGuardAuth/templates":         {file("signinSuccess.php")},

		"/p/apps/frontend/modules/user/lib/helper": {file("ProfileHelper.php"), file("notAHelperFile.php")},
		"/p/plugins/sfGuardPlugin/modules/user/lib/helper": {file("IgnoredHelper.php")},
		"/p/apps/frontend/lib/helper":                      {file("UrlHelper.php")},
		"/p/lib/framework/helper": {
			file("UrlHelper.php"), file("TagHelper.php"), file("Helper.php"),
		},
	}
}
