// Package catalog loads the set of levels shipped with a game.
//
// A catalog directory holds a manifest listing level IDs in play order and
// one document per level, named after its ID:
//
//	manifest.toml    levels = ["intro", "lists", "modifiers"]
//	intro.toml
//	lists.yaml
//	modifiers.toml
//
// A level that fails to load is logged and skipped; the rest still load.
// Only a missing or unreadable manifest fails Load.
package catalog
