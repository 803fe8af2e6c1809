package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/optic/internal/engine/optimizer"
)

func TestReduceTemplates_Precedence(t *testing.T) {
	_, m := setupOptimizer(t, projectTree())

	reduced := optimizer.ReduceTemplates(m.config, optimizer.TemplateCandidates{
		"default": {
			"indexSuccess.php": {
				"/p/apps/frontend/modules/default/templates",
				"/p/lib/framework/controller/default/templates",
			},
			"error404Success.php": {"/p/lib/framework/controller/default/templates"},
			// Listed by the scan but unknown to the configuration.
			"vanished.php": {"/p/apps/frontend/modules/default/templates"},
		},
		"user": {},
	})

	assert.Equal(t, map[string]map[string]string{
		"default": {
			"indexSuccess.php":    "/p/apps/frontend/modules/default/templates",
			"error404Success.php": "/p/lib/framework/controller/default/templates",
		},
		"user": {},
	}, reduced)
}

func TestReduceModuleHelpers_LastWins(t *testing.T) {
	reduced := optimizer.ReduceModuleHelpers(map[string][]optimizer.HelperFile{
		"user": {
			{Name: "Profile", Path: "/h/ProfileHelper.php"},
			{Name: "Profile", Path: "/h/sub/ProfileHelper.php"},
		},
		"empty": nil,
	})

	assert.Equal(t, map[string]map[string]string{
		"user": {"Profile": "/h/sub/ProfileHelper.php"},
	}, reduced)
}

func TestReduceGlobalHelpers_FirstWins(t *testing.T) {
	reduced := optimizer.ReduceGlobalHelpers([]optimizer.HelperFile{
		{Name: "Url", Path: "/app/UrlHelper.php"},
		{Name: "Tag", Path: "/fw/TagHelper.php"},
		{Name: "Url", Path: "/fw/UrlHelper.php"},
	})

	assert.Equal(t, map[string]string{
		"Url": "/app/UrlHelper.php",
		"Tag": "/fw/TagHelper.php",
	}, reduced)
}

func TestCompile(t *testing.T) {
	_, m := setupOptimizer(t, fakeTree{})

	table := optimizer.Compile(m.config,
		[]string{"default", "user"},
		map[string]map[string]string{"default": {"indexSuccess.php": "/t"}},
		map[string][]string{"default": {"/a"}},
		map[string]map[string]string{"user": {"Profile": "/h/ProfileHelper.php"}},
		map[string]string{},
	)

	assert.Equal(t, map[string]map[string]string{
		"default": {"indexSuccess.php": "/t"},
		"user":    {},
	}, table.TemplateDirs)
	assert.Equal(t, map[string][]string{
		"default": {"/a"},
		"user":    {},
	}, table.ControllerDirs)
	assert.Equal(t, []string{"/p/plugins/sfGuardPlugin"}, table.PluginPaths)

	// No global helpers means no global entry.
	assert.Equal(t, map[string]map[string]string{
		"user": {"Profile": "/h/ProfileHelper.php"},
	}, table.Helpers)

	file, ok := table.Helper("user", "Profile")
	assert.True(t, ok)
	assert.Equal(t, "/h/ProfileHelper.php", file)
}
