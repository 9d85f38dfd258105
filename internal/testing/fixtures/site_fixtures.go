package fixtures

import (
	"path"

	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/pkg/contree"
)

// SiteFixtureBuilder provides a fluent API for building in-memory content
// directories for resolver and scanner tests.
//
// Example usage:
//
//	fs := NewSiteFixtureBuilder("/site").
//	    AddFile("logo.png", "png").
//	    AddPage("blog", func(p *PageBuilder) {
//	        p.Settings("title: Blog")
//	        p.AddFile("cover.jpg", "jpg")
//	        p.AddPage("first", func(p *PageBuilder) { p.Content("Hello") })
//	    }).
//	    Build()
type SiteFixtureBuilder struct {
	root  string
	files map[string]string // path -> content
}

// NewSiteFixtureBuilder creates an empty fixture rooted at root.
func NewSiteFixtureBuilder(root string) *SiteFixtureBuilder {
	return &SiteFixtureBuilder{root: root, files: map[string]string{}}
}

// AddFile adds an arbitrary file at the specified path.
func (b *SiteFixtureBuilder) AddFile(filePath, content string) *SiteFixtureBuilder {
	b.files[filePath] = content
	return b
}

// AddMetadata adds the sidecar metadata document of filePath.
func (b *SiteFixtureBuilder) AddMetadata(filePath, yaml string) *SiteFixtureBuilder {
	b.files[filePath+contree.DefaultMetadataSuffix] = yaml
	return b
}

// AddPage adds a page directory configured by builderFunc.
func (b *SiteFixtureBuilder) AddPage(name string, builderFunc func(*PageBuilder)) *SiteFixtureBuilder {
	builderFunc(&PageBuilder{dir: name, files: b.files})
	return b
}

// Build generates the in-memory filesystem from the accumulated files.
func (b *SiteFixtureBuilder) Build() *filesystem.MemoryFileSystem {
	fs := filesystem.NewMemoryFileSystem(b.root)
	for filePath, content := range b.files {
		fs.AddFile(filePath, content)
	}
	return fs
}

// PageBuilder adds files to one page directory.
type PageBuilder struct {
	dir   string
	files map[string]string
}

// Settings writes the page settings document.
func (p *PageBuilder) Settings(yaml string) {
	p.files[path.Join(p.dir, contree.PageSettingsFile)] = yaml
}

// Content writes the page content document.
func (p *PageBuilder) Content(content string) {
	p.files[path.Join(p.dir, contree.PageContentFile)] = content
}

// AddFile attaches a file to the page.
func (p *PageBuilder) AddFile(name, content string) {
	p.files[path.Join(p.dir, name)] = content
}

// AddMetadata adds the sidecar metadata document of a page file.
func (p *PageBuilder) AddMetadata(name, yaml string) {
	p.files[path.Join(p.dir, name)+contree.DefaultMetadataSuffix] = yaml
}

// AddPage adds a child page.
func (p *PageBuilder) AddPage(name string, builderFunc func(*PageBuilder)) {
	builderFunc(&PageBuilder{dir: path.Join(p.dir, name), files: p.files})
}

// StandardSite returns a two-level site used across resolver tests:
//
//	root_file1.png, root_file2.png (+ sidecar), file1.png, file2.png, file10.png
//	images/a.png, images/b.jpg, images/nested/c.png
//	blog/page.yaml, blog/content.md, blog/cover.jpg, blog/gallery/1.png
//	blog/first/content.md, blog/first/attachment.pdf
func StandardSite() *filesystem.MemoryFileSystem {
	return NewSiteFixtureBuilder("/site").
		AddFile("root_file1.png", "png1").
		AddFile("root_file2.png", "png2").
		AddMetadata("root_file2.png", "alt: Second\n").
		AddFile("file1.png", "f1").
		AddFile("file2.png", "f2").
		AddFile("file10.png", "f10").
		AddFile("images/a.png", "a").
		AddFile("images/b.jpg", "b").
		AddFile("images/nested/c.png", "c").
		AddPage("blog", func(p *PageBuilder) {
			p.Settings("title: Blog\ntaxonomy:\n  tag: [news]\n")
			p.Content("# Blog")
			p.AddFile("cover.jpg", "jpg")
			p.AddFile("gallery/1.png", "g1")
			p.AddPage("first", func(p *PageBuilder) {
				p.Content("First post")
				p.AddFile("attachment.pdf", "pdf")
			})
		}).
		Build()
}
