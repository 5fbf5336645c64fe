package config

const (
	// Configuration file paths
	ConfigPathLootTable    = "configs/loot_table.json"
	ConfigPathBoosts       = "configs/boosts.json"
	ConfigPathAchievements = "configs/achievements.json"
	ConfigPathSeedMemories = "configs/memories/seed.json"
)

const (
	// DefaultServiceName identifies the service in logs
	DefaultServiceName = "permafrost-dig"

	// DefaultDataDir is where the local save store lives
	DefaultDataDir = "data"

	// DefaultCacheSize is the storage decode cache capacity
	DefaultCacheSize = 64

	// DefaultCacheTTLSeconds is the storage decode cache entry lifetime
	DefaultCacheTTLSeconds = 300
)
