package charts

import "fmt"

// Row is one record of the data snapshot a chart is compiled against.
// Field selectors (DataKey, NameKey) are row keys.
type Row map[string]any

// Rows is the ordered data snapshot for one compile pass.
type Rows []Row

// Labels extracts the string form of the given field from every row, in
// order. Missing fields produce empty strings so label positions stay
// aligned with the data.
func (r Rows) Labels(key string) []string {
	labels := make([]string, len(r))
	for i, row := range r {
		if v, ok := row[key]; ok && v != nil {
			labels[i] = fmt.Sprint(v)
		}
	}
	return labels
}

// Values extracts the raw values of the given field from every row, in
// order. Missing fields produce nil entries.
func (r Rows) Values(key string) []any {
	values := make([]any, len(r))
	for i, row := range r {
		values[i] = row[key]
	}
	return values
}

// Pairs extracts [x, y] coordinate pairs using two field selectors. Used by
// scatter series, whose points derive from the axis bindings.
func (r Rows) Pairs(xKey, yKey string) []any {
	pairs := make([]any, len(r))
	for i, row := range r {
		pairs[i] = []any{row[xKey], row[yKey]}
	}
	return pairs
}
