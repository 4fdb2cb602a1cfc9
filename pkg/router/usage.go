package router

import "strings"

// UsageRow is one line of the usage table: a canonical flag name with all of
// its tokens.
type UsageRow struct {
	Name        string
	Flags       []string
	Options     []string
	Description string
}

// UsageRows groups registry tokens by canonical name, in the order names are
// first seen. Options and Description come from the first definition of each
// name.
func UsageRows(registry *Registry) []UsageRow {
	var rows []UsageRow
	index := make(map[string]int)

	for _, token := range registry.Tokens() {
		def, _ := registry.Lookup(token)
		if i, ok := index[def.Name]; ok {
			rows[i].Flags = append(rows[i].Flags, token)
			continue
		}
		index[def.Name] = len(rows)
		rows = append(rows, UsageRow{
			Name:        def.Name,
			Flags:       []string{token},
			Options:     append([]string{}, def.AllowedOptions...),
			Description: def.Description,
		})
	}

	return rows
}

var usageHeaders = []string{"Name", "Flags", "Options", "Description"}

func usageTable(rows []UsageRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Name,
			strings.Join(row.Flags, ", "),
			strings.Join(row.Options, ", "),
			row.Description,
		})
	}
	return cells
}

// OutputSupportedUsage prints the tool name as a heading followed by the
// usage table.
func (r *Router) OutputSupportedUsage() {
	r.presenter.Heading(r.toolName)
	r.presenter.PrintTable(usageHeaders, usageTable(UsageRows(r.registry)))
}
