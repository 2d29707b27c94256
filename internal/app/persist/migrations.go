package persist

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"hugoland/internal/domain/player"
)

// Documents written before schema_version existed are treated as version 1.
const legacyVersion = 1

type migration struct {
	from  int
	name  string
	apply func(raw []byte) ([]byte, error)
}

// migrations upgrade the raw document one version at a time. Each step
// reads with gjson and rewrites with sjson, so unknown fields survive.
var migrations = []migration{
	{from: 1, name: "nest_currencies", apply: nestCurrencies},
	{from: 2, name: "garden_checkpoint", apply: gardenCheckpoint},
}

// SchemaVersion reports the version stamped on raw.
func SchemaVersion(raw []byte) int {
	v := gjson.GetBytes(raw, "schema_version")
	if !v.Exists() || v.Int() <= 0 {
		return legacyVersion
	}
	return int(v.Int())
}

// Migrate brings raw up to the current schema and returns the steps applied.
func Migrate(raw []byte) ([]byte, []string, error) {
	if !gjson.ValidBytes(raw) {
		return nil, nil, fmt.Errorf("document is not valid json")
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, nil, fmt.Errorf("document is not a json object")
	}
	version := SchemaVersion(raw)
	var applied []string
	for _, m := range migrations {
		if m.from < version {
			continue
		}
		out, err := m.apply(raw)
		if err != nil {
			return nil, applied, fmt.Errorf("migration %s: %w", m.name, err)
		}
		raw = out
		version = m.from + 1
		applied = append(applied, m.name)
	}
	out, err := sjson.SetBytes(raw, "schema_version", max(version, player.CurrentSchemaVersion))
	if err != nil {
		return nil, applied, fmt.Errorf("stamp schema version: %w", err)
	}
	return out, applied, nil
}

// nestCurrencies moves the flat balances of version 1 into the currencies object.
func nestCurrencies(raw []byte) ([]byte, error) {
	var err error
	for _, field := range []string{"coins", "gems", "shiny_gems"} {
		v := gjson.GetBytes(raw, field)
		if !v.Exists() {
			continue
		}
		if !gjson.GetBytes(raw, "currencies."+field).Exists() {
			if raw, err = sjson.SetBytes(raw, "currencies."+field, v.Int()); err != nil {
				return nil, err
			}
		}
		if raw, err = sjson.DeleteBytes(raw, field); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// gardenCheckpoint seeds last_tended_at from the last watering so growth
// already counted by a version 2 client is not counted again.
func gardenCheckpoint(raw []byte) ([]byte, error) {
	if !gjson.GetBytes(raw, "garden.planted").Bool() || gjson.GetBytes(raw, "garden.last_tended_at").Exists() {
		return raw, nil
	}
	from := gjson.GetBytes(raw, "garden.last_watered")
	if !from.Exists() || from.Type == gjson.Null {
		from = gjson.GetBytes(raw, "garden.planted_at")
	}
	if !from.Exists() || from.Type == gjson.Null {
		return raw, nil
	}
	return sjson.SetBytes(raw, "garden.last_tended_at", from.String())
}
