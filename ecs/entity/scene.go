package entity

import (
	"fmt"
	"maps"

	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
	"github.com/milk9111/spritelab/levels"
	"github.com/milk9111/spritelab/prefabs"
)

// BuildScene creates every entity a layout places and returns them by name.
// On error the entities already built are destroyed.
func BuildScene(w *ecs.World, layout *levels.Layout) (map[string]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}
	if layout == nil {
		return nil, fmt.Errorf("build scene: layout is nil")
	}

	built := make(map[string]ecs.Entity, len(layout.Entities))
	var order []ecs.Entity
	fail := func(err error) (map[string]ecs.Entity, error) {
		for _, e := range order {
			ecs.DestroyEntity(w, e)
		}
		return nil, err
	}

	for i, placement := range layout.Entities {
		spec, err := prefabs.LoadEntityBuildSpec(placement.Prefab)
		if err != nil {
			return fail(fmt.Errorf("build scene %s: entity %d: %w", layout.Name, i, err))
		}
		spec = applyPlacement(spec, placement)

		e, err := BuildEntityFromSpec(w, placement.Prefab, spec)
		if err != nil {
			return fail(fmt.Errorf("build scene %s: %w", layout.Name, err))
		}
		order = append(order, e)

		key := spec.Name
		if name, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && name.Value != "" {
			key = name.Value
		}
		if key == "" {
			key = fmt.Sprintf("%s#%d", placement.Prefab, i)
		}
		if _, dup := built[key]; dup {
			return fail(fmt.Errorf("build scene %s: duplicate entity name %q", layout.Name, key))
		}
		built[key] = e
	}

	return built, nil
}

// applyPlacement overlays a placement on its prefab. Map components are
// merged key by key; anything else replaces the prefab's value.
func applyPlacement(spec prefabs.EntityBuildSpec, placement levels.Placement) prefabs.EntityBuildSpec {
	components := make(map[string]any, len(spec.Components)+len(placement.Components))
	maps.Copy(components, spec.Components)

	for key, override := range placement.Components {
		base, baseIsMap := components[key].(map[string]any)
		over, overIsMap := override.(map[string]any)
		if baseIsMap && overIsMap {
			merged := maps.Clone(base)
			maps.Copy(merged, over)
			components[key] = merged
			continue
		}
		components[key] = override
	}

	if placement.Name != "" {
		spec.Name = placement.Name
		components["name"] = placement.Name
	}
	spec.Components = components
	return spec
}
