package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
)

//go:embed manifests/*.hcl
var standardManifests embed.FS

// Standard loads the embedded standard kind set: scalar and vector
// math, comparisons, boolean logic, geometry operations, random
// distributions, raycasting, and the subgraph/boundary kinds.
func Standard(ctx context.Context) (*Catalog, error) {
	sources := make(map[string][]byte)
	err := fs.WalkDir(standardManifests, "manifests", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		src, readErr := standardManifests.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		sources[path] = src
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading embedded manifests: %w", err)
	}
	return Load(ctx, sources)
}
