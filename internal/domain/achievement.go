package domain

// AchievementType selects which counter drives an achievement's progress
type AchievementType string

const (
	AchievementDigCount       AchievementType = "dig_count"
	AchievementGemCount       AchievementType = "gem_count"
	AchievementBarrelCount    AchievementType = "barrel_count"
	AchievementBottleCount    AchievementType = "bottle_count"
	AchievementGlassCount     AchievementType = "glass_count"
	AchievementMemoryCount    AchievementType = "memory_count"
	AchievementLegendaryCount AchievementType = "legendary_count"
)

// Achievement tracks progress toward a collection milestone.
// Progress and Completed are derived values, recomputed from the
// inventory and dig counter after every discovery.
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Requirement int             `json:"requirement"`
	Progress    int             `json:"progress"`
	Completed   bool            `json:"completed"`
	Type        AchievementType `json:"type"`
}
