package dataset

import (
	"tainan-restaurant/internal/model"
)

// Table is the immutable in-memory restaurant table. It is built once and
// is safe for concurrent reads without locking.
type Table struct {
	records     []model.Restaurant
	districts   []string
	districtSet map[string]struct{}
}

// NewTable copies records into a new table and records the distinct
// districts in order of first appearance.
func NewTable(records []model.Restaurant) *Table {
	t := &Table{
		records:     make([]model.Restaurant, len(records)),
		districtSet: make(map[string]struct{}),
	}
	copy(t.records, records)

	for _, r := range t.records {
		if _, seen := t.districtSet[r.District]; seen {
			continue
		}
		t.districtSet[r.District] = struct{}{}
		t.districts = append(t.districts, r.District)
	}

	return t
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of every record in table order.
func (t *Table) Records() []model.Restaurant {
	out := make([]model.Restaurant, len(t.records))
	copy(out, t.records)
	return out
}

// Districts returns the distinct districts in order of first appearance.
func (t *Table) Districts() []string {
	out := make([]string, len(t.districts))
	copy(out, t.districts)
	return out
}

// HasDistrict reports whether any record belongs to district.
func (t *Table) HasDistrict(district string) bool {
	_, ok := t.districtSet[district]
	return ok
}

// ByDistrict returns the records of district in table order.
func (t *Table) ByDistrict(district string) []model.Restaurant {
	return t.filter(func(r *model.Restaurant) bool { return r.District == district })
}

// ByName returns every record whose name equals name exactly.
func (t *Table) ByName(name string) []model.Restaurant {
	return t.filter(func(r *model.Restaurant) bool { return r.Name == name })
}

func (t *Table) filter(match func(r *model.Restaurant) bool) []model.Restaurant {
	var out []model.Restaurant
	for i := range t.records {
		if match(&t.records[i]) {
			out = append(out, t.records[i])
		}
	}
	return out
}
