// Package parser extracts a creature.Model from stat block markdown.
//
// Each field extractor reads the whole text and returns its fragment
// or ok=false when the governing line is missing. Extractors are independent
// of each other and of the order they run in. Block parsers segment traits,
// actions, legendary actions and spell lists, and run every ability body
// through the attack sub-parser.
package parser
