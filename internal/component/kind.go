// internal/component/kind.go
package component

import "go-lane-defense/pkg/geom"

// Kind identifies what an entity is, for rendering and events.
type Kind int

const (
	KindCell Kind = iota
	KindDefender
	KindEnemy
	KindProjectile
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindDefender:
		return "defender"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindResource:
		return "resource"
	}
	return "unknown"
}

// Entity is the capability set shared by every kind on the field.
type Entity interface {
	geom.Boxed
	Kind() Kind
	Sprite() Sprite
}
