package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		names     []string
		absolute  bool
		directory bool
		glob      bool
		regex     bool
	}{
		{"", nil, false, false, false, false},
		{"/", nil, true, true, false, false},
		{"root_file1.png", []string{"root_file1.png"}, false, false, false, false},
		{"/dir/file.ext", []string{"dir", "file.ext"}, true, false, false, false},
		{"dir/sub/", []string{"dir", "sub"}, false, true, false, false},
		{"a//./b", []string{"a", "b"}, false, false, false, false},
		{"../bar/file.ext", []string{"..", "bar", "file.ext"}, false, false, false, false},
		{"dir/file?.png", []string{"dir", "file?.png"}, false, false, true, false},
		{"/^dir\\/.+$/", []string{"/^dir\\/.+$/"}, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := Parse(tt.in)
			if tt.names == nil {
				assert.Empty(t, p.Names())
			} else {
				assert.Equal(t, tt.names, p.Names())
			}
			assert.Equal(t, tt.absolute, p.IsAbsolute(), "absolute")
			assert.Equal(t, tt.directory, p.IsDirectory(), "directory")
			assert.Equal(t, tt.glob, p.IsGlob(), "glob")
			assert.Equal(t, tt.regex, p.IsRegex(), "regex")
			assert.Equal(t, tt.in, p.String())
		})
	}
}

func TestParse_ParentRefNeverPattern(t *testing.T) {
	p := Parse("../*.png")
	elements := p.Elements()
	require.Len(t, elements, 2)
	assert.True(t, elements[0].IsParent())
	assert.False(t, elements[0].IsGlob())
	assert.False(t, elements[0].IsRegex())
	assert.True(t, elements[1].IsGlob())
}

func TestRebuild(t *testing.T) {
	tests := map[string]string{
		"a//b":     "a/b",
		"./a/./b/": "a/b/",
		"/x/y":     "/x/y",
		"//":       "/",
		"/":        "/",
		"":         "",
		"/~^a~":    "/~^a~",
	}
	for in, want := range tests {
		assert.Equal(t, want, Parse(in).Rebuild(), in)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{"", "/", "a", "/a/b", "a/b/", "/a/b/", "../x", "*.png", "a/{b,c}/d", "/#^x#"}
	for _, in := range inputs {
		once := Parse(in).String()
		assert.Equal(t, once, Parse(once).String(), in)
	}
}

func TestAppendPath(t *testing.T) {
	base := Parse("/blog/")
	child := Parse("post/images/")

	joined := base.AppendPath(child)
	assert.Equal(t, "/blog/post/images/", joined.String())
	assert.True(t, joined.IsDirectory())

	joined = base.AppendPath(Parse("post/cover.png"))
	assert.Equal(t, "/blog/post/cover.png", joined.String())
	assert.False(t, joined.IsDirectory())

	assert.Equal(t, "/blog/", base.String(), "receiver unchanged")
}

func TestDirectoryAndFile(t *testing.T) {
	p := Parse("a/b/c.png")

	dir := p.Directory()
	assert.Equal(t, "a/b/", dir.String())
	assert.Equal(t, "a/b/c.png", p.String(), "Directory must not mutate the receiver")

	file, ok := p.File()
	require.True(t, ok)
	assert.Equal(t, "c.png", file.String())
	assert.False(t, file.IsAbsolute())

	_, ok = dir.File()
	assert.False(t, ok, "directory has no file part")
	_, ok = Parse("").File()
	assert.False(t, ok, "empty path has no file part")

	assert.Equal(t, "a/b/", dir.Directory().String(), "directory of a directory is itself")
}

func TestDropLastElement(t *testing.T) {
	p := Parse("a/b/c.png")
	p.DropLastElement()
	assert.Equal(t, "a/b/", p.String())
	assert.True(t, p.IsDirectory())

	p.DropLastElement()
	p.DropLastElement()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, "", p.String())
}

func TestCopiesAreIndependent(t *testing.T) {
	p := Parse("a/b")
	q := p
	q.AppendElement(NewElement("c"))
	p.AppendElement(NewElement("d"))

	assert.Equal(t, "a/b/c", q.String())
	assert.Equal(t, "a/b/d", p.String())
}

func TestRegexp(t *testing.T) {
	re := Parse("/^img\\/.+\\.png$/").Regexp()
	require.NotNil(t, re)
	assert.True(t, re.MatchString("img/a.png"))
	assert.Nil(t, Parse("img/a.png").Regexp())
}
