// Package aquarium implements the aquarium business logic.
//
// Service orchestrates the repository for CRUD operations, capacity-checked
// fish insertion, feeding and cleaning, and runs the two periodic simulation
// passes (stats and aging). Every mutation of an aquarium, including its fish,
// happens while holding that aquarium's lock so concurrent callers never lose
// each other's updates.
package aquarium
