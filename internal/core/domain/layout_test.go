package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/zerr"
)

func testProject() *domain.Project {
	return &domain.Project{
		Root:         "/srv/shop",
		CacheDir:     "/srv/shop/cache",
		FrameworkDir: "/srv/shop/lib/framework",
		Plugins: []domain.Plugin{
			{Name: "guard", Path: "/srv/shop/plugins/guard"},
			{Name: "forms", Path: "/srv/shop/vendor/forms"},
		},
		Applications: map[string]domain.Application{
			"frontend": {Name: "frontend", EnabledModules: []string{"default", "auth"}},
			"backend":  {Name: "backend"},
		},
	}
}

func TestProject_Layout(t *testing.T) {
	l, err := testProject().Layout("frontend", "dev")
	require.NoError(t, err)

	assert.Equal(t, "/srv/shop/apps/frontend", l.AppDir)
	assert.Equal(t, "/srv/shop/apps/frontend/modules", l.AppModuleDir)
	assert.Equal(t, "/srv/shop/cache/frontend/dev/config", l.ConfigCacheDir)
	assert.Equal(t, "/srv/shop/cache/frontend/dev/modules", l.ModuleCacheDir)
	assert.Equal(t, "/srv/shop/cache/frontend/dev/config/configuration.json", l.ArtifactPath())
	assert.Equal(t, "/srv/shop/lib/framework/controller", l.CoreModuleDir())
	assert.Equal(t, domain.DefaultHelperSuffix, l.HelperSuffix)
	assert.Equal(t, []string{"default", "auth"}, l.EnabledModules)
	assert.Equal(t, []string{"/srv/shop/plugins/guard", "/srv/shop/vendor/forms"}, l.PluginPaths())
	assert.Equal(t,
		[]string{"/srv/shop/plugins/guard/modules", "/srv/shop/vendor/forms/modules"},
		l.PluginSubPaths("modules"))
}

func TestProject_Layout_Defaults(t *testing.T) {
	l, err := testProject().Layout("backend", "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultEnvironment, l.Environment)
	assert.Equal(t, []string{domain.DefaultModule}, l.EnabledModules)
}

func TestProject_Layout_Errors(t *testing.T) {
	tests := []struct {
		name        string
		application string
		environment string
		want        error
	}{
		{"missing application", "", "prod", domain.ErrMissingApplication},
		{"invalid application", "front end", "prod", domain.ErrInvalidApplicationName},
		{"invalid environment", "frontend", "../prod", domain.ErrInvalidEnvironmentName},
		{"unknown application", "admin", "prod", domain.ErrApplicationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testProject().Layout(tt.application, tt.environment)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestProject_Layout_UnknownApplicationMetadata(t *testing.T) {
	_, err := testProject().Layout("admin", "prod")
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "admin", zErr.Metadata()["application"])
}

func TestLayout_Overlays(t *testing.T) {
	l, err := testProject().Layout("frontend", "prod")
	require.NoError(t, err)

	overlays := l.Overlays()
	require.Len(t, overlays, 5)

	kinds := make([]domain.OverlayKind, len(overlays))
	for i, o := range overlays {
		assert.Equal(t, i, o.Rank)
		kinds[i] = o.Kind
	}
	assert.Equal(t, []domain.OverlayKind{
		domain.OverlayApplication,
		domain.OverlayPlugin,
		domain.OverlayPlugin,
		domain.OverlayFramework,
		domain.OverlayGenerated,
	}, kinds)
	assert.Equal(t, "guard", overlays[1].Name)
	assert.Equal(t, "/srv/shop/vendor/forms/modules", overlays[2].Path)
}

func TestLayout_ModuleSubDirs(t *testing.T) {
	l, err := testProject().Layout("frontend", "prod")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/srv/shop/apps/frontend/modules/user/templates",
		"/srv/shop/plugins/guard/modules/user/templates",
		"/srv/shop/vendor/forms/modules/user/templates",
		"/srv/shop/lib/framework/controller/user/templates",
		"/srv/shop/cache/frontend/prod/modules/autoUser/templates",
	}, l.ModuleSubDirs("user", "templates"))
}

func TestLayout_GeneratorThemeDirs(t *testing.T) {
	l, err := testProject().Layout("frontend", "prod")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("/srv/shop/data/generator", "admin"),
		filepath.Join("/srv/shop/lib/framework/generator", "admin"),
	}, l.GeneratorThemeDirs("admin"))
	assert.Equal(t, "/srv/shop/cache/frontend/prod/modules/autoUser", l.GeneratedModuleDir("user"))
}

func TestGeneratedModuleName(t *testing.T) {
	assert.Equal(t, "autoUser", domain.GeneratedModuleName("user"))
	assert.Equal(t, "autoSfGuardAuth", domain.GeneratedModuleName("sfGuardAuth"))
	assert.Equal(t, "auto", domain.GeneratedModuleName(""))
}

func TestHelperName(t *testing.T) {
	tests := []struct {
		file   string
		want   string
		wantOK bool
	}{
		{"UrlHelper.php", "Url", true},
		{"sub/dir/TagHelper.php", "Tag", true},
		{"Helper.php", "", false},
		{"Url.php", "", false},
		{"UrlHelperExtra.php", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			name, ok := domain.HelperName(tt.file, "Helper")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}
