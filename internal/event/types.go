// internal/event/types.go
package event

const (
	EnemySpawned      EventType = "EnemySpawned"      // Data: *component.Enemy
	EnemyKilled       EventType = "EnemyKilled"       // Data: EnemyKilledData
	DefenderPlaced    EventType = "DefenderPlaced"    // Data: *component.Defender
	DefenderDestroyed EventType = "DefenderDestroyed" // Data: *component.Defender
	ProjectileFired   EventType = "ProjectileFired"   // Data: *component.Projectile
	ResourceSpawned   EventType = "ResourceSpawned"   // Data: *component.ResourceBlock
	ResourceCollected EventType = "ResourceCollected" // Data: ResourceCollectedData
	GameOver          EventType = "GameOver"          // Data: frame number (int)
)

// AllTypes lists every event type, in declaration order.
var AllTypes = []EventType{
	EnemySpawned,
	EnemyKilled,
	DefenderPlaced,
	DefenderDestroyed,
	ProjectileFired,
	ResourceSpawned,
	ResourceCollected,
	GameOver,
}

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	MaxHealth float64
	Reward    float64 // granted to both resources and score
}

// ResourceCollectedData is the payload of ResourceCollected.
type ResourceCollectedData struct {
	Value     int
	ByPointer bool // false when an enemy trampled the block
}
