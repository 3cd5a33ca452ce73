// Package aquarium contains core domain types for the aquarium simulation.
//
// It defines Aquarium (a capacity-bounded tank with water clearness and
// temperature) and Fish (a creature with hunger, health and age that belongs
// to exactly one aquarium through AquariumID). Mutators keep every score inside
// its valid range and Clone helpers avoid leaking internal references.
package aquarium
