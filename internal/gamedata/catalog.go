package gamedata

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
)

// Catalog is a read-only lookup table of known block and item types.
type Catalog struct {
	blocks map[Block]string
	items  map[Item]string
}

var defaultCatalog = &Catalog{blocks: blockNames, items: itemNames}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// LookupBlock reports the block type for a raw ID in the block range.
func (c *Catalog) LookupBlock(raw int16) (Block, bool) {
	_, ok := c.blocks[Block(raw)]
	return Block(raw), ok
}

// LookupItem reports the item type for a table index (wire ID minus ItemBias).
func (c *Catalog) LookupItem(index int16) (Item, bool) {
	_, ok := c.items[Item(index)]
	return Item(index), ok
}

// FromID maps a wire ID onto the catalog. IDs the catalog does not know
// resolve to Unknown rather than an error so decoding can carry on.
func (c *Catalog) FromID(raw int16) Identifier {
	if raw <= ItemBias {
		if b, ok := c.LookupBlock(raw); ok {
			return BlockIdentifier(b)
		}
		return Unknown
	}
	if it, ok := c.LookupItem(raw - ItemBias); ok {
		return ItemIdentifier(it)
	}
	return Unknown
}

// Name returns the catalog name of id, or "unknown".
func (c *Catalog) Name(id Identifier) string {
	if b, ok := id.Block(); ok {
		if name, ok := c.blocks[b]; ok {
			return name
		}
	}
	if it, ok := id.Item(); ok {
		if name, ok := c.items[it]; ok {
			return name
		}
	}
	return "unknown"
}

// Len returns the number of known block and item types.
func (c *Catalog) Len() (blocks, items int) {
	return len(c.blocks), len(c.items)
}

type catalogEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LoadCatalog overlays a minecraft-data style directory (blocks.json and
// items.json, as fetched by cmd/dmd) on top of the compiled-in tables.
// Entries outside the legacy numeric ranges are skipped.
func LoadCatalog(dir string) (*Catalog, error) {
	c := &Catalog{
		blocks: maps.Clone(blockNames),
		items:  maps.Clone(itemNames),
	}

	blocks, err := readEntries(filepath.Join(dir, "blocks.json"))
	if err != nil {
		return nil, err
	}
	for _, e := range blocks {
		if e.ID < 0 || e.ID > ItemBias {
			continue
		}
		c.blocks[Block(e.ID)] = e.Name
	}

	items, err := readEntries(filepath.Join(dir, "items.json"))
	if err != nil {
		return nil, err
	}
	for _, e := range items {
		if e.ID <= ItemBias || e.ID > math.MaxInt16 {
			continue
		}
		c.items[Item(e.ID-ItemBias)] = e.Name
	}

	return c, nil
}

func readEntries(path string) ([]catalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return entries, nil
}
