package ecs

// StorageStats is a point-in-time summary of what a Storage holds.
type StorageStats struct {
	TotalEntityCount   int
	ComponentCount     int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats describes one component storage.
type ComponentStats struct {
	ID          ComponentId
	Name        string
	EntityCount int
}

// CollectStats walks every registered component type and singleton.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.entities.count,
		ComponentCount:   s.registry.Len(),
		SingletonTypes:   s.singletonNames(),
	}
	stats.SingletonCount = len(stats.SingletonTypes)

	for i := 0; i < s.registry.Len(); i++ {
		compId := ComponentId(i)
		count := 0
		if i < len(s.stores) && s.stores[i] != nil {
			count = s.stores[i].len()
		}
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			ID:          compId,
			Name:        s.registry.Name(compId),
			EntityCount: count,
		})
	}

	return stats
}
