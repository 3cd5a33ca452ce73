// Package config defines the aquarium server settings and provides helpers to
// load, validate and save them in YAML format.
//
// Values come from the YAML file first and are then overridden by AQUARIUM_*
// environment variables, optionally seeded from a .env file.
package config
