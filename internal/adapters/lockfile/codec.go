// Package lockfile decodes and encodes conda-lock style lock documents.
package lockfile

import (
	"bytes"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	packageKey  = "package"
	nameKey     = "name"
	versionKey  = "version"
	platformKey = "platform"

	// indent gives 2-space mappings and sequences with the dash at offset 2.
	indent = 2
)

// Codec implements ports.LockCodec using YAML.
//
// Passthrough values decoded by Parse are kept as *yaml.Node so that they are
// re-emitted with their original key order and scalar styles, in block style.
// Values of any other type are encoded with yaml.v3 defaults, which sort
// mapping keys.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse decodes a lock document.
func (c *Codec) Parse(data []byte) (*domain.LockDocument, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, zerr.With(domain.ErrLockfileParseFailed, "reason", "empty document")
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrLockfileParseFailed, "reason", "top level must be a mapping")
	}

	doc := &domain.LockDocument{}
	foundPackages := false
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if key.Value != packageKey {
			doc.Header = append(doc.Header, domain.Field{Key: key.Value, Value: value})
			continue
		}

		if value.Kind != yaml.SequenceNode {
			err := zerr.With(domain.ErrLockfileParseFailed, "reason", "package must be a list")
			return nil, zerr.With(err, "line", value.Line)
		}
		foundPackages = true

		doc.Packages = make([]domain.PackageRecord, 0, len(value.Content))
		for _, item := range value.Content {
			rec, err := parseRecord(item)
			if err != nil {
				return nil, err
			}
			doc.Packages = append(doc.Packages, rec)
		}
	}

	if !foundPackages {
		return nil, zerr.With(domain.ErrLockfileParseFailed, "reason", "missing package key")
	}
	return doc, nil
}

func parseRecord(n *yaml.Node) (domain.PackageRecord, error) {
	if n.Kind != yaml.MappingNode {
		err := zerr.With(domain.ErrLockfileParseFailed, "reason", "package record must be a mapping")
		return domain.PackageRecord{}, zerr.With(err, "line", n.Line)
	}

	var rec domain.PackageRecord
	var hasName, hasVersion, hasPlatform bool
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case nameKey:
			rec.Name, hasName = scalar(value)
		case versionKey:
			rec.Version, hasVersion = scalar(value)
		case platformKey:
			rec.Platform, hasPlatform = scalar(value)
		default:
			rec.Extra = append(rec.Extra, domain.Field{Key: key.Value, Value: value})
		}
	}

	for _, required := range []struct {
		key     string
		present bool
	}{{nameKey, hasName}, {versionKey, hasVersion}, {platformKey, hasPlatform}} {
		if !required.present {
			err := zerr.With(domain.ErrLockfileParseFailed, "reason", "package record is missing "+required.key)
			return domain.PackageRecord{}, zerr.With(err, "line", n.Line)
		}
	}
	return rec, nil
}

// scalar returns the value of a non-null scalar node.
func scalar(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", false
	}
	return n.Value, true
}

// Serialize encodes doc in canonical form: header fields in order, then the
// package records sorted by (name, platform), no trailing whitespace and a
// single trailing newline.
func (c *Codec) Serialize(doc *domain.LockDocument) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range doc.Header {
		value, err := valueNode(f.Value)
		if err != nil {
			return nil, zerr.With(err, "key", f.Key)
		}
		top.Content = append(top.Content, strNode(f.Key), value)
	}

	packages := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range doc.SortedPackages() {
		recNode, err := recordNode(rec)
		if err != nil {
			return nil, err
		}
		packages.Content = append(packages.Content, recNode)
	}
	top.Content = append(top.Content, strNode(packageKey), packages)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(top); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileSerializeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileSerializeFailed.Error())
	}

	return normalize(buf.Bytes()), nil
}

func recordNode(rec domain.PackageRecord) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content,
		strNode(nameKey), strNode(rec.Name),
		strNode(versionKey), strNode(rec.Version),
		strNode(platformKey), strNode(rec.Platform),
	)
	for _, f := range rec.Extra {
		value, err := valueNode(f.Value)
		if err != nil {
			err = zerr.With(err, "package", rec.Name)
			return nil, zerr.With(err, "key", f.Key)
		}
		n.Content = append(n.Content, strNode(f.Key), value)
	}
	return n, nil
}

func valueNode(v any) (*yaml.Node, error) {
	if n, ok := v.(*yaml.Node); ok {
		return blockStyle(n), nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileSerializeFailed.Error())
	}
	return n, nil
}

// blockStyle returns a deep copy of n with flow style cleared on every
// collection, so passthrough values are always emitted in block style.
func blockStyle(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Style &^= yaml.FlowStyle
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = blockStyle(child)
		}
	}
	return &c
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// normalize strips trailing whitespace from every line and ends the text with
// exactly one newline.
func normalize(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	return []byte(out + "\n")
}
