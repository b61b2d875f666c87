package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// StorageStats summarizes the contents of an EntityHolder.
type StorageStats struct {
	EntityCount        int
	DeletedCount       int
	ComponentCount     int
	ComponentBreakdown []ComponentStats
	TotalPurged        int64
	Collections        int64
}

// ComponentStats counts the entities holding one component type.
type ComponentStats struct {
	Type        reflect.Type
	EntityCount int
}

// CollectStats walks the whole population and returns a snapshot of it.
// The breakdown is sorted by type name.
func (h *EntityHolder) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalPurged: h.purged,
		Collections: h.collections,
	}

	counts := intmap.New[typeKey, *ComponentStats](16)
	for entity := range h.All() {
		stats.EntityCount++
		if entity.deleted {
			stats.DeletedCount++
		}

		entity.components.ForEach(func(key typeKey, c iComponent) bool {
			stats.ComponentCount++
			entry, ok := counts.Get(key)
			if !ok {
				entry = &ComponentStats{Type: c.Type()}
				counts.Put(key, entry)
			}
			entry.EntityCount++
			return true
		})
	}

	stats.ComponentBreakdown = make([]ComponentStats, 0, counts.Len())
	counts.ForEach(func(_ typeKey, entry *ComponentStats) bool {
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, *entry)
		return true
	})
	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		return stats.ComponentBreakdown[i].Type.String() < stats.ComponentBreakdown[j].Type.String()
	})

	return stats
}
