package prefs

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// CompanyColorsKey is the storage key holding the company color mapping.
const CompanyColorsKey = "companyColors"

// CompanyColors reads and writes the JSON mapping of company id to
// display color stored under CompanyColorsKey.
type CompanyColors struct {
	storage Storage
}

func NewCompanyColors(storage Storage) *CompanyColors {
	return &CompanyColors{storage: storage}
}

// All returns every stored color keyed by company id. Entries whose key
// is not a company id are ignored.
func (c *CompanyColors) All() (map[uint]string, error) {
	raw, err := c.load()
	if err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(raw))
	for k, v := range raw {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		out[uint(id)] = v
	}
	return out, nil
}

func (c *CompanyColors) Get(id uint) (string, bool, error) {
	raw, err := c.load()
	if err != nil {
		return "", false, err
	}
	v, ok := raw[key(id)]
	return v, ok, nil
}

func (c *CompanyColors) Set(id uint, color string) error {
	raw, err := c.load()
	if err != nil {
		return err
	}
	raw[key(id)] = color
	return c.save(raw)
}

// Delete removes the entry for id. Missing entries are not an error.
func (c *CompanyColors) Delete(id uint) error {
	raw, err := c.load()
	if err != nil {
		return err
	}
	if _, ok := raw[key(id)]; !ok {
		return nil
	}
	delete(raw, key(id))
	return c.save(raw)
}

// Retain drops every entry whose id is not in keep and returns the
// dropped ids in ascending order.
func (c *CompanyColors) Retain(keep []uint) ([]uint, error) {
	all, err := c.All()
	if err != nil {
		return nil, err
	}
	live := make(map[uint]bool, len(keep))
	for _, id := range keep {
		live[id] = true
	}

	var dropped []uint
	for id := range all {
		if !live[id] {
			dropped = append(dropped, id)
		}
	}
	if len(dropped) == 0 {
		return nil, nil
	}
	slices.Sort(dropped)

	raw, err := c.load()
	if err != nil {
		return nil, err
	}
	for _, id := range dropped {
		delete(raw, key(id))
	}
	return dropped, c.save(raw)
}

func (c *CompanyColors) load() (map[string]string, error) {
	raw := make(map[string]string)
	blob, ok, err := c.storage.GetItem(CompanyColorsKey)
	if err != nil || !ok || blob == "" {
		return raw, err
	}
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", CompanyColorsKey, err)
	}
	return raw, nil
}

func (c *CompanyColors) save(raw map[string]string) error {
	blob, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return c.storage.SetItem(CompanyColorsKey, string(blob))
}

func key(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
