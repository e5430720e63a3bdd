package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppWithUniqueLabel(t *testing.T) {
	camera := App{Label: "Camera", PackageName: "a", ActivityName: "a.Main"}
	cameraPro := App{Label: "Camera Pro", PackageName: "b", ActivityName: "b.Main"}
	apps := []App{camera, cameraPro}

	t.Run("exact match wins over substring", func(t *testing.T) {
		res := AppWithUniqueLabel(apps, "camera")
		intent, ok := res.Unique()
		assert.True(t, ok)
		assert.Equal(t, ComponentName{Package: "a", Class: "a.Main"}, intent.Component)
		assert.Equal(t, []App{camera}, res.Exact)
		assert.Equal(t, []App{cameraPro}, res.Potential)
	})

	t.Run("only potential matches", func(t *testing.T) {
		res := AppWithUniqueLabel(apps, "cam")
		_, ok := res.Unique()
		assert.False(t, ok)
		assert.Equal(t, ResolutionAmbiguous, res.Status)
		assert.Empty(t, res.Exact)
		assert.Equal(t, []App{camera, cameraPro}, res.Potential)
	})

	t.Run("several exact matches are ambiguous", func(t *testing.T) {
		twin := App{Label: "CAMERA", PackageName: "c", ActivityName: "c.Main"}
		res := AppWithUniqueLabel([]App{camera, twin}, "Camera")
		assert.Equal(t, ResolutionAmbiguous, res.Status)
		assert.Len(t, res.Exact, 2)
		assert.Equal(t, Intent{}, res.Intent)
	})

	t.Run("nothing matches", func(t *testing.T) {
		res := AppWithUniqueLabel(apps, "maps")
		assert.Equal(t, ResolutionNone, res.Status)
		assert.Empty(t, res.Candidates())
	})
}

func TestAppGivenPackageName(t *testing.T) {
	foo := App{Label: "Foo", PackageName: "com.foo", ActivityName: "com.foo.Main"}
	foobar := App{Label: "Foobar", PackageName: "com.foobar", ActivityName: "com.foobar.Main"}
	apps := []App{foobar, foo}

	t.Run("exact match", func(t *testing.T) {
		res := AppGivenPackageName(apps, "com.foo")
		intent, ok := res.Unique()
		assert.True(t, ok)
		assert.Equal(t, "com.foo", intent.Package())
		assert.Equal(t, "com.foo.Main", intent.Component.Class)
	})

	t.Run("case insensitive", func(t *testing.T) {
		res := AppGivenPackageName(apps, "COM.FOOBAR")
		intent, ok := res.Unique()
		assert.True(t, ok)
		assert.Equal(t, "com.foobar", intent.Package())
	})

	t.Run("substring reports candidates", func(t *testing.T) {
		res := AppGivenPackageName(apps, "foo")
		_, ok := res.Unique()
		assert.False(t, ok)
		assert.Equal(t, ResolutionAmbiguous, res.Status)
		assert.ElementsMatch(t, []App{foo, foobar}, res.Potential)
	})

	t.Run("no match", func(t *testing.T) {
		res := AppGivenPackageName(apps, "org.other")
		assert.Equal(t, ResolutionNone, res.Status)
	})
}

func TestLabel(t *testing.T) {
	apps := []App{
		{Label: "Clock", PackageName: "com.android.deskclock"},
		{Label: "Clock 2", PackageName: "com.android.deskclock"},
	}

	label, ok := Label(apps, "com.android.deskclock")
	assert.True(t, ok)
	assert.Equal(t, "Clock", label)

	_, ok = Label(apps, "com.android")
	assert.False(t, ok)
}

func TestResolutionStatusString(t *testing.T) {
	assert.Equal(t, "unique", ResolutionUnique.String())
	assert.Equal(t, "ambiguous", ResolutionAmbiguous.String())
	assert.Equal(t, "none", ResolutionNone.String())
}

func TestBuildAppListMessage(t *testing.T) {
	msg := buildAppListMessage(potentialHeader(1), []App{{Label: "Maps", PackageName: "com.maps"}})
	assert.Equal(t, "Found 1 potential match:\n    - Maps [com.maps]", msg)
	assert.Equal(t, "Found 3 potential matches:", potentialHeader(3))
}
