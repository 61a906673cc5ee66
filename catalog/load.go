package catalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/internal/ctxlog"
	"github.com/vk/geoscript/internal/fsutil"
)

// manifestFile is the top-level structure of one kind manifest.
type manifestFile struct {
	Nodes []*nodeBlock `hcl:"node,block"`
	Body  hcl.Body     `hcl:",remain"`
}

// nodeBlock is a `node "<kind>" {}` block.
type nodeBlock struct {
	Kind        string       `hcl:"kind,label"`
	Description string       `hcl:"description,optional"`
	Subgraph    bool         `hcl:"subgraph,optional"`
	Boundary    string       `hcl:"boundary,optional"`
	Width       *float64     `hcl:"width,optional"`
	Height      *float64     `hcl:"height,optional"`
	Inputs      []*slotBlock `hcl:"input,block"`
	Outputs     []*slotBlock `hcl:"output,block"`
	Attrs       []*attrBlock `hcl:"attr,block"`
}

// slotBlock is an `input "<name>" {}` or `output "<name>" {}` block.
// The type attribute stays an expression; slot types are keywords, not
// values, so they are resolved by typeKeyword rather than evaluated.
type slotBlock struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type"`
	Default *cty.Value     `hcl:"default,optional"`
}

// attrBlock is an `attr "<name>" {}` block.
type attrBlock struct {
	Name    string     `hcl:"name,label"`
	Options []string   `hcl:"options,optional"`
	Default *cty.Value `hcl:"default,optional"`
}

// LoadDir builds a catalog from every .hcl manifest under path.
func LoadDir(ctx context.Context, path string) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("walking manifest directory %s: %w", path, err)
	}
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no .hcl manifests found in %s", path)
	}
	logger.Debug("Found kind manifests.", "path", path, "count", len(filePaths))

	cat := New()
	parser := hclparse.NewParser()
	for _, filePath := range filePaths {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing manifest %s: %w", filePath, diags)
		}
		if err := loadFile(ctx, cat, file, filePath); err != nil {
			return nil, err
		}
	}
	logger.Info("Kind catalog loaded.", "kinds", len(cat.kinds))
	return cat, nil
}

// Load builds a catalog from in-memory manifest sources keyed by a
// display name used in error messages.
func Load(ctx context.Context, sources map[string][]byte) (*Catalog, error) {
	cat := New()
	parser := hclparse.NewParser()
	for name, src := range sources {
		file, diags := parser.ParseHCL(src, name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing manifest %s: %w", name, diags)
		}
		if err := loadFile(ctx, cat, file, name); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func loadFile(ctx context.Context, cat *Catalog, file *hcl.File, name string) error {
	logger := ctxlog.FromContext(ctx)

	var manifest manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &manifest); diags.HasErrors() {
		return fmt.Errorf("decoding manifest %s: %w", name, diags)
	}

	for _, block := range manifest.Nodes {
		spec, err := kindFromBlock(block)
		if err != nil {
			return fmt.Errorf("manifest %s: %w", name, err)
		}
		if err := cat.Add(spec); err != nil {
			return fmt.Errorf("manifest %s: %w", name, err)
		}
		logger.Debug("Registered node kind.", "kind", spec.Kind,
			"inputs", len(spec.Inputs), "outputs", len(spec.Outputs))
	}
	return nil
}

func kindFromBlock(block *nodeBlock) (*KindSpec, error) {
	spec := &KindSpec{
		Kind:        block.Kind,
		Description: block.Description,
		Subgraph:    block.Subgraph,
		Boundary:    block.Boundary,
	}
	if block.Boundary != "" && block.Boundary != "input" && block.Boundary != "output" {
		return nil, fmt.Errorf("kind %q: boundary must be \"input\" or \"output\", got %q", block.Kind, block.Boundary)
	}
	if block.Width != nil {
		spec.Width = *block.Width
	}
	if block.Height != nil {
		spec.Height = *block.Height
	}

	for _, in := range block.Inputs {
		tag, literal, err := typeKeyword(in.Type)
		if err != nil {
			return nil, fmt.Errorf("kind %q, input %q: %w", block.Kind, in.Name, err)
		}
		slot := SlotSpec{Name: in.Name, Tag: tag, Literal: literal}
		if in.Default != nil {
			slot.Default = *in.Default
		}
		spec.Inputs = append(spec.Inputs, slot)
	}
	for _, out := range block.Outputs {
		tag, _, err := typeKeyword(out.Type)
		if err != nil {
			return nil, fmt.Errorf("kind %q, output %q: %w", block.Kind, out.Name, err)
		}
		// Output slots never carry literal defaults.
		spec.Outputs = append(spec.Outputs, SlotSpec{Name: out.Name, Tag: tag, Literal: engine.LiteralNone})
	}
	for _, attr := range block.Attrs {
		aspec := AttrSpec{Name: attr.Name, Options: attr.Options}
		if attr.Default != nil {
			aspec.Default = *attr.Default
		}
		spec.Attrs = append(spec.Attrs, aspec)
	}
	return spec, nil
}

// typeKeyword resolves a slot type expression into its tag and literal
// kind. Slot types are bare keywords (`float`, `geometry`, ...), so the
// expression must be a single-identifier traversal.
func typeKeyword(expr hcl.Expression) (engine.TypeTag, engine.LiteralKind, error) {
	traversal, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return "", engine.LiteralNone, fmt.Errorf("unsupported type expression %T; slot types are bare keywords", expr)
	}
	if len(traversal.Traversal) != 1 {
		return "", engine.LiteralNone, fmt.Errorf("slot types must be single identifiers")
	}
	switch keyword := traversal.Traversal.RootName(); keyword {
	case "float":
		return engine.TagValue, engine.LiteralFloat, nil
	case "int":
		return engine.TagInt, engine.LiteralInt, nil
	case "bool":
		return engine.TagBoolean, engine.LiteralBool, nil
	case "string":
		return engine.TagString, engine.LiteralString, nil
	case "vector":
		return engine.TagVector, engine.LiteralVector, nil
	case "geometry":
		return engine.TagGeometry, engine.LiteralNone, nil
	case "object":
		return engine.TagObject, engine.LiteralNone, nil
	case "color":
		return engine.TagColor, engine.LiteralNone, nil
	default:
		return "", engine.LiteralNone, fmt.Errorf("unknown slot type keyword %q", keyword)
	}
}
