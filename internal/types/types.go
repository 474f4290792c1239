package types

// EntityID identifies an entity in the ECS. Zero is never assigned.
type EntityID uint64
