package tree

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/contree/internal/files/factory"
	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/pkg/contree"
)

// ManifestPage is one page of a YAML tree manifest.
//
//	settings:
//	  title: Home
//	content: Welcome
//	files:
//	  - name: logo.png
//	children:
//	  - name: blog
//	    settings: {title: Blog, taxonomy: {tag: [news]}}
type ManifestPage struct {
	Name     string         `yaml:"name"`
	Settings yaml.Node      `yaml:"settings"`
	Content  string         `yaml:"content"`
	Modified time.Time      `yaml:"modified"`
	Files    []ManifestFile `yaml:"files"`
	Children []ManifestPage `yaml:"children"`
}

// ManifestFile describes a file attached to a manifest page.
// Type defaults to the tag derived from the file extension.
type ManifestFile struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Metadata map[string]any `yaml:"metadata"`
}

// LoadManifest builds a Tree from a YAML manifest whose top level is the root page.
// Errors wrap contree.ErrTreeLoad.
func LoadManifest(r io.Reader) (*Tree, error) {
	var root ManifestPage
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: invalid manifest: %w", contree.ErrTreeLoad, err)
	}

	t := New()
	if err := t.fill(t.Get(t.Root()), root); err != nil {
		return nil, fmt.Errorf("%w: %w", contree.ErrTreeLoad, err)
	}
	return t, nil
}

// LoadManifestFile reads and parses the manifest at manifestPath.
func LoadManifestFile(provider filesystem.FileSystemProvider, manifestPath string) (*Tree, error) {
	content, err := provider.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read manifest %s: %w", contree.ErrTreeLoad, manifestPath, err)
	}
	return LoadManifest(bytes.NewReader(content))
}

func (t *Tree) fill(n *Node, page ManifestPage) error {
	if !page.Settings.IsZero() {
		if err := page.Settings.Decode(&n.Settings); err != nil {
			return fmt.Errorf("page %s: invalid settings (line %d): %w", n.Path, page.Settings.Line, err)
		}
	}
	n.RawContent = page.Content
	n.Modified = page.Modified

	for _, f := range page.Files {
		if f.Name == "" {
			return fmt.Errorf("page %s: file without a name", n.Path)
		}
		fileType := f.Type
		if fileType == "" {
			fileType = factory.TypeOf(f.Name)
		}
		n.AddFile(f.Name, contree.File{
			Pathname: childPath(n.Path, f.Name),
			Type:     fileType,
			Metadata: f.Metadata,
		})
	}

	for _, child := range page.Children {
		c, err := t.Add(n.ID, child.Name)
		if err != nil {
			return err
		}
		if err := t.fill(c, child); err != nil {
			return err
		}
	}
	return nil
}
