package assets

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCacheEmptyPath(t *testing.T) {
	c := NewCache()

	_, ok := c.Texture("")
	testutil.AssertEqual(t, "texture", ok, false)

	_, ok = c.Sound("")
	testutil.AssertEqual(t, "sound", ok, false)

	testutil.AssertEqual(t, "loaded", c.Loaded(), 0)
}

func TestCacheRemembersFailures(t *testing.T) {
	c := NewCache()
	c.failed["missing.png"] = true

	_, ok := c.Texture("missing.png")
	testutil.AssertEqual(t, "skipped", ok, false)

	c.Unload()
	testutil.AssertEqual(t, "failures cleared", len(c.failed), 0)
}
