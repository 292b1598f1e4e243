package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnemyKind is returned for enemy type tags outside the closed set.
var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

// EnemyKind tags an enemy variant. The set is closed; see ParseEnemyKind.
type EnemyKind int

const (
	Sphere EnemyKind = iota
	Triangle
)

var enemyKindNames = map[EnemyKind]string{
	Sphere:   "sphere",
	Triangle: "triangle",
}

func (k EnemyKind) String() string {
	if name, ok := enemyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// ParseEnemyKind maps a level/config tag to its kind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range enemyKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, unknownKind(s)
}

// EnemyKinds lists every variant in a stable order.
func EnemyKinds() []EnemyKind {
	return []EnemyKind{Sphere, Triangle}
}

func unknownKind(s string) error {
	return fmt.Errorf("%w: %q", ErrUnknownEnemyKind, s)
}

// Validate rejects profiles whose rules fall outside the known tables.
func (t EnemyTypeConfig) Validate() error {
	if t.Movement < 0 || t.Movement >= movementRuleCount {
		return fmt.Errorf("enemy %s: movement rule %d out of range", t.Kind, t.Movement)
	}
	if t.Fire < 0 || t.Fire >= fireRuleCount {
		return fmt.Errorf("enemy %s: fire rule %d out of range", t.Kind, t.Fire)
	}
	if t.CollisionWidth <= 0 || t.CollisionHeight <= 0 {
		return fmt.Errorf("enemy %s: empty collision box", t.Kind)
	}
	return nil
}
